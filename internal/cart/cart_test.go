package cart

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/vizcaya-system/internal/model"
)

func testProducts() []model.Product {
	return []model.Product{
		{ID: "1", Name: "Arveja Verde Partida Vizcaya", PriceCents: 4500},
		{ID: "2", Name: "NutriAvena Avena en Hojuelas", PriceCents: 3850},
		{ID: "3", Name: "Caraotas Negras Vizcaya", PriceCents: 4200},
	}
}

func TestLedgerSet_ClampsNegative(t *testing.T) {
	l := NewLedger()

	l.Set("1", -5)
	if got := l.Quantity("1"); got != 0 {
		t.Fatalf("Quantity after negative set = %d, want 0", got)
	}

	l.Set("1", 3)
	if got := l.Quantity("1"); got != 3 {
		t.Fatalf("Quantity = %d, want 3", got)
	}

	l.Set("1", 0)
	if got := l.Quantity("1"); got != 0 {
		t.Fatalf("Quantity after zero set = %d, want 0", got)
	}
}

func TestLedgerQuantity_AbsentIsZero(t *testing.T) {
	l := NewLedger()
	if got := l.Quantity("missing"); got != 0 {
		t.Fatalf("Quantity for absent id = %d, want 0", got)
	}
}

func TestLedgerSet_Idempotent(t *testing.T) {
	l := NewLedger()
	l.Set("1", 2)
	l.Set("1", 2)

	lines := Lines(testProducts(), l)
	totals := Totals(lines, decimal.RequireFromString("36.50"))

	if l.Quantity("1") != 2 {
		t.Fatalf("Quantity = %d, want 2", l.Quantity("1"))
	}
	if totals.TotalItems != 2 || totals.TotalUSDCents != 9000 {
		t.Fatalf("totals changed after repeated set: %+v", totals)
	}
}

func TestLines_CatalogOrderAndFiltering(t *testing.T) {
	l := NewLedger()
	// Порядок добавления обратный порядку каталога
	l.Set("3", 1)
	l.Set("1", 2)
	l.Set("2", 0)

	lines := Lines(testProducts(), l)

	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if lines[0].Product.ID != "1" || lines[0].Quantity != 2 {
		t.Fatalf("lines[0] = %+v, want product 1 x2", lines[0])
	}
	if lines[1].Product.ID != "3" || lines[1].Quantity != 1 {
		t.Fatalf("lines[1] = %+v, want product 3 x1", lines[1])
	}
}

func TestLines_IgnoresUnknownIDs(t *testing.T) {
	l := NewLedger()
	l.Set("99", 5)

	if lines := Lines(testProducts(), l); len(lines) != 0 {
		t.Fatalf("expected no lines for unknown product, got %+v", lines)
	}
}

func TestTotals_EmptyCart(t *testing.T) {
	totals := Totals(nil, decimal.RequireFromString("36.50"))

	if totals.TotalItems != 0 {
		t.Fatalf("TotalItems = %d, want 0", totals.TotalItems)
	}
	if totals.TotalUSDCents != 0 {
		t.Fatalf("TotalUSDCents = %d, want 0", totals.TotalUSDCents)
	}
	if !totals.TotalBs.IsZero() {
		t.Fatalf("TotalBs = %s, want 0", totals.TotalBs)
	}
}

func TestTotals_RoundTripScenario(t *testing.T) {
	l := NewLedger()
	l.Set("1", 2)
	l.Set("3", 1)

	lines := Lines(testProducts(), l)
	totals := Totals(lines, decimal.RequireFromString("36.50"))

	if lines[0].TotalCents() != 9000 {
		t.Fatalf("line 1 total = %d, want 9000", lines[0].TotalCents())
	}
	if lines[1].TotalCents() != 4200 {
		t.Fatalf("line 2 total = %d, want 4200", lines[1].TotalCents())
	}
	if totals.TotalItems != 3 {
		t.Fatalf("TotalItems = %d, want 3", totals.TotalItems)
	}
	if totals.TotalUSDCents != 13200 {
		t.Fatalf("TotalUSDCents = %d, want 13200", totals.TotalUSDCents)
	}

	wantBs := decimal.RequireFromString("4818.00")
	if !totals.TotalBs.Equal(wantBs) {
		t.Fatalf("TotalBs = %s, want %s", totals.TotalBs, wantBs)
	}
}

func TestTotals_NotPreRounded(t *testing.T) {
	// 1 цент по курсу 36.50 — сумма меньше одного сентимо,
	// точность не должна теряться до форматирования
	lines := []model.CartLine{
		{Product: model.Product{ID: "x", PriceCents: 1}, Quantity: 1},
	}

	totals := Totals(lines, decimal.RequireFromString("36.50"))

	want := decimal.RequireFromString("0.365")
	if !totals.TotalBs.Equal(want) {
		t.Fatalf("TotalBs = %s, want %s", totals.TotalBs, want)
	}
}
