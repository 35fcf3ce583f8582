package catalog

import (
	"context"
	"testing"

	"github.com/mmeshcher/vizcaya-system/internal/model"
)

func TestStaticProducts_FullCatalogInOrder(t *testing.T) {
	products, err := NewStatic().Products(context.Background())
	if err != nil {
		t.Fatalf("Products error: %v", err)
	}

	if len(products) != 8 {
		t.Fatalf("len(products) = %d, want 8", len(products))
	}

	for i, p := range products {
		wantID := string(rune('1' + i))
		if p.ID != wantID {
			t.Fatalf("products[%d].ID = %q, want %q", i, p.ID, wantID)
		}
	}

	if products[0].Name != "Arveja Verde Partida Vizcaya" || products[0].PriceCents != 4500 {
		t.Fatalf("unexpected first product: %+v", products[0])
	}
	if products[2].Name != "Caraotas Negras Vizcaya" || products[2].PriceCents != 4200 {
		t.Fatalf("unexpected third product: %+v", products[2])
	}
}

func TestFilter(t *testing.T) {
	products, err := NewStatic().Products(context.Background())
	if err != nil {
		t.Fatalf("Products error: %v", err)
	}

	tests := []struct {
		name     string
		category model.Category
		wantIDs  []string
	}{
		{
			name:     "especiales yields both sacks",
			category: model.CategoryEspeciales,
			wantIDs:  []string{"7", "8"},
		},
		{
			name:     "legumbres",
			category: model.CategoryLegumbres,
			wantIDs:  []string{"1", "3"},
		},
		{
			name:     "all yields full catalog",
			category: model.CategoryAll,
			wantIDs:  []string{"1", "2", "3", "4", "5", "6", "7", "8"},
		},
		{
			name:     "empty category yields full catalog",
			category: "",
			wantIDs:  []string{"1", "2", "3", "4", "5", "6", "7", "8"},
		},
		{
			name:     "unknown category yields nothing",
			category: "carnes",
			wantIDs:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(products, tt.category)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.wantIDs))
			}
			for i, p := range got {
				if p.ID != tt.wantIDs[i] {
					t.Fatalf("got[%d].ID = %q, want %q", i, p.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestProducts_ReturnsCopy(t *testing.T) {
	cat := NewStatic()

	first, _ := cat.Products(context.Background())
	first[0].Name = "mutated"

	second, _ := cat.Products(context.Background())
	if second[0].Name != "Arveja Verde Partida Vizcaya" {
		t.Fatalf("catalog mutated through returned slice: %q", second[0].Name)
	}
}

func TestCategories(t *testing.T) {
	got := Categories()

	if len(got) != 4 {
		t.Fatalf("len(categories) = %d, want 4", len(got))
	}
	if got[0].ID != model.CategoryAll || got[0].Name != "Todos los Productos" {
		t.Fatalf("unexpected first category: %+v", got[0])
	}
	if got[3].ID != model.CategoryEspeciales || got[3].Name != "Presentaciones Especiales" {
		t.Fatalf("unexpected last category: %+v", got[3])
	}
}

func TestPayment(t *testing.T) {
	p := Payment()
	if p.Method != "Pago Móvil" || p.Holder != "Alimentos Vizcaya C.A." {
		t.Fatalf("unexpected payment info: %+v", p)
	}
}
