package domain

import "testing"

func TestMoneyRoundsHalfUpOnConstruction(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"100.456", "100.46"},
		{"5.125", "5.13"},
		{"0.005", "0.01"},
		{"100", "100.00"},
		{"19.9999", "20.00"},
	}

	for _, tc := range cases {
		m, err := MoneyFromString(tc.in)
		if err != nil {
			t.Fatalf("MoneyFromString(%q): unexpected error %v", tc.in, err)
		}
		if got := m.String(); got != tc.want {
			t.Fatalf("MoneyFromString(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestMoneyFromStringRejectsNonNumeric(t *testing.T) {
	if _, err := MoneyFromString("12x.00"); err == nil {
		t.Fatal("expected error for non-numeric input")
	}
	if _, err := MoneyFromString(""); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestMoneyArithmeticStaysAtTwoDigits(t *testing.T) {
	a, _ := MoneyFromString("0.10")
	b, _ := MoneyFromString("0.25")

	if got := a.Add(b).String(); got != "0.35" {
		t.Fatalf("add = %s, want 0.35", got)
	}
	if got := b.Sub(a).String(); got != "0.15" {
		t.Fatalf("sub = %s, want 0.15", got)
	}
	if !b.GreaterThanOrEqual(a) {
		t.Fatal("expected 0.25 >= 0.10")
	}
}
