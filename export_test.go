package pescados

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestExport(t *testing.T) {
	catalog := NewCatalog(shrimp, hake)
	ledger := NewLedger(
		sale("t2", "2025-08-02", shrimp.ID, 4, 40),
		purchase("t1", "2025-08-01", shrimp.ID, 10, 25),
	)
	data, err := json.Marshal(NewExport(catalog, ledger, window("2025-08-01", "2025-08-31")))
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	got := string(data)

	wantPrefix := `{"window":{"from":"2025-08-01","to":"2025-08-31"},"rows":[`
	if !strings.HasPrefix(got, wantPrefix) {
		t.Errorf("export = %s, want prefix %s", got, wantPrefix)
	}
	for _, want := range []string{
		`"totals":{"name":"Total","weightPurchased":10,"weightSold":4,"invested":250,"sold":160,"profit":-90}`,
		`"bars":[{"label":"Camarão","invested":250,"sold":160}]`,
		`"line":[{"date":"2025-08-01","label":"01/08/2025","value":-250},{"date":"2025-08-02","label":"02/08/2025","value":-90}]`,
		`"pie":[{"name":"Camarão Regional","value":160,"color":"#0088FE"}]`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("export does not contain %s:\n%s", want, got)
		}
	}
}

func TestExport_Empty(t *testing.T) {
	data, err := json.Marshal(NewExport(NewCatalog(), NewLedger(), window("2025-08-01", "2025-08-31")))
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	for _, want := range []string{`"rows":[]`, `"bars":[]`, `"line":[]`, `"pie":[]`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("export does not contain %s: %s", want, data)
		}
	}
}
