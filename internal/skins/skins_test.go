package skins

import (
	"errors"
	"testing"
)

func TestCatalogOrder(t *testing.T) {
	all := Catalog()
	if len(all) != 6 {
		t.Fatalf("catalog has %d skins, expected 6", len(all))
	}
	if all[0].ID != DefaultID || all[0].Price != 0 {
		t.Errorf("first skin = %+v, expected free default", all[0])
	}
	for i := 1; i < len(all); i++ {
		if all[i].Price <= all[i-1].Price {
			t.Errorf("%s (%d) not pricier than %s (%d)", all[i].ID, all[i].Price, all[i-1].ID, all[i-1].Price)
		}
	}

	// Callers get a copy.
	all[0].Price = 999
	if Catalog()[0].Price != 0 {
		t.Error("Catalog() exposed internal state")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		id    string
		price int
		err   error
	}{
		{"classic", 0, nil},
		{"violet", 35, nil},
		{"neon", 60, nil},
		{"rose", 90, nil},
		{"mint", 120, nil},
		{"gold", 160, nil},
		{"plaid", 0, ErrUnknownSkin},
		{"", 0, ErrUnknownSkin},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			s, err := Lookup(tc.id)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Lookup(%q) error = %v, expected %v", tc.id, err, tc.err)
			}
			if err == nil && s.Price != tc.price {
				t.Errorf("price = %d, expected %d", s.Price, tc.price)
			}
		})
	}
}

func TestResolveFallsBack(t *testing.T) {
	if got := Resolve("gold"); got.ID != "gold" {
		t.Errorf("Resolve(gold) = %s", got.ID)
	}
	if got := Resolve("missing"); got.ID != DefaultID {
		t.Errorf("Resolve(missing) = %s, expected %s", got.ID, DefaultID)
	}
}
