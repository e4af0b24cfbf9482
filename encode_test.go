package pescados

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/pescados/date"
	"github.com/google/go-cmp/cmp"
)

func TestEncodeCatalog(t *testing.T) {
	c := NewCatalog(shrimp, hake)
	var buf bytes.Buffer
	if err := EncodeCatalog(&buf, c); err != nil {
		t.Fatalf("EncodeCatalog() unexpected error: %v", err)
	}
	want := `[
  {
    "id": "p-shrimp",
    "name": "Camarão Regional",
    "defaultBuyPrice": 25,
    "defaultSellPrice": 40
  },
  {
    "id": "p-hake",
    "name": "Pescada Amarela",
    "defaultBuyPrice": 18,
    "defaultSellPrice": 30
  }
]
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("EncodeCatalog() mismatch (-want +got):\n%s", diff)
	}

	got, err := DecodeCatalog(&buf)
	if err != nil {
		t.Fatalf("DecodeCatalog() unexpected error: %v", err)
	}
	if diff := cmp.Diff(c.products, got.products, cmpOpts); diff != "" {
		t.Errorf("DecodeCatalog() mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeLedger(t *testing.T) {
	withMemo := sale("t3", "2025-08-03", crabLeg.ID, 1.5, 50)
	withMemo.Memo = "restaurante"
	l := NewLedger(
		withMemo,
		sale("t2", "2025-08-02", shrimp.ID, 4, 40),
		purchase("t1", "2025-08-01", shrimp.ID, 10, 25),
	)
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"totalValue": 75`) {
		t.Errorf("EncodeLedger() does not persist the total value:\n%s", buf.String())
	}

	got, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() unexpected error: %v", err)
	}
	if diff := cmp.Diff(l.transactions, got.transactions, cmpOpts, cmp.AllowUnexported(date.Date{})); diff != "" {
		t.Errorf("DecodeLedger() mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, NewLedger()); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("EncodeLedger(empty) = %q, want []", got)
	}
}

func TestDecodeLedger_KeepsStoredTotal(t *testing.T) {
	in := `[{"id":"t1","productId":"p","kind":"purchase","weightKg":3,"unitPrice":10,"totalValue":31,"date":"2025-08-01"}]`
	l, err := DecodeLedger(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeLedger() unexpected error: %v", err)
	}
	if got := l.transactions[0].Total; !got.Equal(M(31)) {
		t.Errorf("Total = %v, want 31", got)
	}
}
