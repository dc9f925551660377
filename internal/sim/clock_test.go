package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/neon-dash/internal/config"
)

func testClock() *Clock {
	return NewClock(config.DefaultDashConfig().Clock)
}

func TestClockAdvanceClampsDelta(t *testing.T) {
	tests := []struct {
		name     string
		raw      float64
		expected float64
	}{
		{"nominal", 0.016, 0.016},
		{"short", 0.004, 0.004},
		{"stalled tab", 2.5, 0.033},
		{"at limit", 0.033, 0.033},
		{"zero", 0, 0.016},
		{"negative", -0.5, 0.016},
		{"nan", math.NaN(), 0.016},
		{"inf", math.Inf(1), 0.016},
		{"negative inf", math.Inf(-1), 0.016},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := testClock()
			got := c.Advance(tc.raw)
			if math.Abs(got-tc.expected) > 1e-12 {
				t.Errorf("Advance(%v) = %v, expected %v", tc.raw, got, tc.expected)
			}
		})
	}
}

func TestClockEasesTowardTarget(t *testing.T) {
	c := testClock()
	c.SetTarget(0.25)

	dt := c.Advance(0.016)
	if want := 0.016 * 0.94; math.Abs(dt-want) > 1e-12 {
		t.Errorf("first dilated step = %v, expected %v", dt, want)
	}

	prev := c.Dilation()
	for i := 0; i < 300; i++ {
		c.Advance(0.016)
		d := c.Dilation()
		if d > prev {
			t.Fatalf("dilation rose from %v to %v while easing down", prev, d)
		}
		if d < 0.25-1e-12 {
			t.Fatalf("dilation %v overshot target", d)
		}
		prev = d
	}
	if math.Abs(prev-0.25) > 1e-6 {
		t.Errorf("dilation = %v after 300 steps, expected ~0.25", prev)
	}
}

func TestClockReset(t *testing.T) {
	c := testClock()
	c.SetTarget(0.25)
	for i := 0; i < 10; i++ {
		c.Advance(0.016)
	}

	c.Reset()
	if c.Dilation() != 1 || c.Target() != 1 {
		t.Errorf("after Reset dilation=%v target=%v", c.Dilation(), c.Target())
	}
	if dt := c.Advance(0.02); dt != 0.02 {
		t.Errorf("Advance after Reset = %v, expected undilated 0.02", dt)
	}
}

func TestClockSetTargetRejectsNegative(t *testing.T) {
	c := testClock()
	c.SetTarget(math.NaN())
	if c.Target() != 0 {
		t.Errorf("NaN target should become 0, got %v", c.Target())
	}
	c.SetTarget(-3)
	if c.Target() != 0 {
		t.Errorf("negative target should become 0, got %v", c.Target())
	}
	for i := 0; i < 1000; i++ {
		if dt := c.Advance(0.016); dt < 0 || math.IsNaN(dt) {
			t.Fatalf("Advance returned %v", dt)
		}
	}
}
