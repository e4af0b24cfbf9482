package pescados

import (
	"errors"
	"strings"
	"testing"

	"github.com/etnz/pescados/date"
)

func TestNewTransaction(t *testing.T) {
	tx := NewTransaction(date.MustParse("2025-08-01"), shrimp.ID, Sale, Kg(5), M(10), "  feira  ")
	if !tx.Total.Equal(M(50)) {
		t.Errorf("Total = %v, want 50", tx.Total)
	}
	if tx.Memo != "feira" {
		t.Errorf("Memo = %q, want %q", tx.Memo, "feira")
	}
	if err := tx.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
	if !tx.Signed().Equal(M(50)) {
		t.Errorf("Signed() = %v, want 50", tx.Signed())
	}

	// exact arithmetic, no float drift.
	tx = NewTransaction(date.MustParse("2025-08-01"), shrimp.ID, Purchase, Kg(0.1), M(0.3), "")
	if !tx.Total.Equal(M(0.03)) {
		t.Errorf("Total = %v, want 0.03", tx.Total.Decimal())
	}
	if !tx.Signed().Equal(M(-0.03)) {
		t.Errorf("Signed() = %v, want -0.03", tx.Signed().Decimal())
	}
}

func TestNewTransaction_FreshIDs(t *testing.T) {
	a := NewTransaction(date.MustParse("2025-08-01"), shrimp.ID, Sale, Kg(1), M(1), "")
	b := NewTransaction(date.MustParse("2025-08-01"), shrimp.ID, Sale, Kg(1), M(1), "")
	if a.ID == b.ID {
		t.Errorf("two transactions share id %q", a.ID)
	}
	if strings.Compare(string(a.ID), string(b.ID)) > 0 {
		t.Errorf("ids are not creation ordered: %q > %q", a.ID, b.ID)
	}
}

func TestParseKind(t *testing.T) {
	testCases := []struct {
		in   string
		want Kind
	}{
		{"purchase", Purchase},
		{"buy", Purchase},
		{"Compra", Purchase},
		{"sale", Sale},
		{"sell", Sale},
		{"VENDA", Sale},
	}
	for _, tc := range testCases {
		got, err := ParseKind(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseKind(%q) = %q, %v, want %q", tc.in, got, err, tc.want)
		}
	}
	if _, err := ParseKind("gift"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParseKind(gift) error = %v, want ErrInvalid", err)
	}
}
