package pescados

import (
	"testing"

	"github.com/etnz/pescados/date"
	"github.com/google/go-cmp/cmp"
)

func TestBars(t *testing.T) {
	catalog := NewCatalog(shrimp, hake, crabLeg)
	ledger := NewLedger(
		sale("t3", "2025-08-03", crabLeg.ID, 1, 50),
		sale("t2", "2025-08-02", shrimp.ID, 4, 40),
		purchase("t1", "2025-08-01", shrimp.ID, 10, 25),
	)
	report := Aggregate(catalog, ledger, window("2025-08-01", "2025-08-31"), SkipOrphans)

	want := []Bar{
		{Label: "Camarão", Invested: M(250), Sold: M(160)},
		{Label: "Pata", Invested: M(0), Sold: M(50)},
	}
	if diff := cmp.Diff(want, Bars(report), cmpOpts); diff != "" {
		t.Errorf("Bars() mismatch (-want +got):\n%s", diff)
	}
}

func TestCumulativeLine(t *testing.T) {
	ledger := NewLedger(
		sale("t2", "2025-08-02", shrimp.ID, 4, 40),
		purchase("t1", "2025-08-01", shrimp.ID, 10, 25),
	)
	want := []Point{
		{Date: date.MustParse("2025-08-01"), Label: "01/08/2025", Value: M(-250)},
		{Date: date.MustParse("2025-08-02"), Label: "02/08/2025", Value: M(-90)},
	}
	got := CumulativeLine(ledger, window("2025-08-01", "2025-08-31"))
	if diff := cmp.Diff(want, got, cmpOpts, cmp.AllowUnexported(date.Date{})); diff != "" {
		t.Errorf("CumulativeLine() mismatch (-want +got):\n%s", diff)
	}
}

func TestCumulativeLine_SameDay(t *testing.T) {
	// registered in this order: t1, t2, t3. Orphans count too.
	ledger := NewLedger(
		purchase("t3", "2025-08-01", "p-deleted", 1, 10),
		sale("t2", "2025-08-03", shrimp.ID, 1, 40),
		sale("t1", "2025-08-01", shrimp.ID, 2, 40),
	)
	got := CumulativeLine(ledger, window("2025-08-01", "2025-08-31"))
	if len(got) != 2 {
		t.Fatalf("got %d points, want 2: %v", len(got), got)
	}
	if !got[0].Value.Equal(M(70)) {
		t.Errorf("first point = %v, want 70", got[0].Value)
	}
	if !got[1].Value.Equal(M(110)) {
		t.Errorf("last point = %v, want 110", got[1].Value)
	}
}

func TestPie(t *testing.T) {
	var products []Product
	var txs []Transaction
	for i := range 10 {
		p := Product{ID: ID("p" + string(rune('a'+i))), Name: "Peixe " + string(rune('A'+i))}
		products = append(products, p)
		if i == 1 {
			continue // no sales: no slice
		}
		txs = append(txs, sale(ID("t"+string(rune('a'+i))), "2025-08-01", p.ID, 1, float64(i+1)))
	}
	report := Aggregate(NewCatalog(products...), NewLedger(txs...), window("2025-08-01", "2025-08-01"), SkipOrphans)

	slices := Pie(report)
	if len(slices) != 9 {
		t.Fatalf("got %d slices, want 9", len(slices))
	}
	if slices[1].Name != "Peixe C" {
		t.Errorf("second slice = %q, want %q", slices[1].Name, "Peixe C")
	}
	for i, s := range slices {
		if want := Palette[i%len(Palette)]; s.Color != want {
			t.Errorf("slice %d color = %q, want %q", i, s.Color, want)
		}
	}
	if slices[8].Color != Palette[0] {
		t.Errorf("palette does not cycle: %q", slices[8].Color)
	}
}

func TestProjections_Empty(t *testing.T) {
	report := Aggregate(NewCatalog(shrimp), NewLedger(), window("2025-08-01", "2025-08-31"), SkipOrphans)
	if got := Bars(report); len(got) != 0 {
		t.Errorf("Bars() = %v, want empty", got)
	}
	if got := Pie(report); len(got) != 0 {
		t.Errorf("Pie() = %v, want empty", got)
	}
	if got := CumulativeLine(NewLedger(), window("2025-08-01", "2025-08-31")); len(got) != 0 {
		t.Errorf("CumulativeLine() = %v, want empty", got)
	}
}

func TestPie_PurchasesOnly(t *testing.T) {
	ledger := NewLedger(
		purchase("t2", "2025-08-02", hake.ID, 5, 18),
		purchase("t1", "2025-08-01", shrimp.ID, 10, 25),
		sale("t0", "2025-07-15", shrimp.ID, 4, 40), // out of the window
	)
	report := Aggregate(NewCatalog(shrimp, hake), ledger, window("2025-08-01", "2025-08-31"), SkipOrphans)

	if got := Bars(report); len(got) != 2 {
		t.Errorf("Bars() = %v, want the 2 products bought", got)
	}
	if got := Pie(report); len(got) != 0 {
		t.Errorf("Pie() = %v, want empty without sales in the window", got)
	}
}
