package format

import "testing"

func TestPHP(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₱0"},
		{579.15, "₱579"},
		{2600, "₱2,600"},
		{51840, "₱51,840"},
		{1234567, "₱1,234,567"},
		{-4500, "-₱4,500"},
	}
	for _, c := range cases {
		if got := PHP(c.amount); got != c.want {
			t.Errorf("PHP(%v) = %q, want %q", c.amount, got, c.want)
		}
	}
}

func TestArea(t *testing.T) {
	if got := Area(5.184); got != "5.1840 sqm" {
		t.Errorf("Area(5.184) = %q, want %q", got, "5.1840 sqm")
	}
	if got := Area(0.5); got != "0.5000 sqm" {
		t.Errorf("Area(0.5) = %q, want %q", got, "0.5000 sqm")
	}
}
