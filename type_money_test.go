package pescados

import (
	"errors"
	"testing"
)

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{M(0), "R$0,00"},
		{M(50), "R$50,00"},
		{M(1234.5), "R$1.234,50"},
		{M(-90), "-R$90,00"},
		{M(0.125), "R$0,13"},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("%v.String() = %q, want %q", tc.m.Decimal(), got, tc.want)
		}
	}
	if got := M(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want %q", got, "-")
	}
	if got := M(10).SignedString(); got != "+R$10,00" {
		t.Errorf("SignedString(10) = %q, want %q", got, "+R$10,00")
	}
}

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{in: "12.5", want: M(12.5)},
		{in: "12,5", want: M(12.5)},
		{in: " 40 ", want: M(40)},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMoney(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Errorf("ParseMoney(%q) error = %v, want ErrInvalid", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMoney(%q) unexpected error: %v", tc.in, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseMoney(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseWeight(t *testing.T) {
	w, err := ParseWeight("2,5")
	if err != nil {
		t.Fatalf("ParseWeight() unexpected error: %v", err)
	}
	if !w.Equal(Kg(2.5)) {
		t.Errorf("ParseWeight(2,5) = %v, want 2.5 kg", w)
	}
	if w.String() != "2.5 kg" {
		t.Errorf("String() = %q, want %q", w.String(), "2.5 kg")
	}
	if _, err := ParseWeight("two"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParseWeight(two) error = %v, want ErrInvalid", err)
	}
}
