package product

import (
	"context"
	"testing"

	"go-dashboard/pkg/apperr"
)

func newTestService(seed []Product) ProductService {
	return NewProductService(NewMemoryProductRepository(seed))
}

func validInput() CreateProductInput {
	return CreateProductInput{
		Name:      "USB-C Cable",
		SKU:       "uc-100",
		Category:  "Electronics",
		Price:     9.99,
		CostPrice: 4.50,
		Stock:     40,
		MinStock:  10,
		MaxStock:  200,
		Unit:      "piece",
	}
}

func TestCreateNormalizesSKU(t *testing.T) {
	svc := newTestService(nil)

	p, err := svc.Create(context.Background(), validInput(), "actor-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.SKU != "UC-100" {
		t.Errorf("sku = %q, want UC-100", p.SKU)
	}
	if p.Status != StatusActive {
		t.Errorf("status = %q, want default active", p.Status)
	}
	if p.CreatedBy != "actor-1" {
		t.Errorf("createdBy = %q", p.CreatedBy)
	}
}

func TestCreateDuplicateSKU(t *testing.T) {
	svc := newTestService(FixtureProducts())

	input := validInput()
	input.SKU = "wh-001" // fixture SKU, different case
	_, err := svc.Create(context.Background(), input, "actor-1")
	if apperr.KindOf(err) != apperr.Conflict {
		t.Fatalf("err = %v, want Conflict", err)
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateProductInput)
	}{
		{"missing name", func(in *CreateProductInput) { in.Name = "" }},
		{"missing sku", func(in *CreateProductInput) { in.SKU = "" }},
		{"bad sku characters", func(in *CreateProductInput) { in.SKU = "UC 100!" }},
		{"negative price", func(in *CreateProductInput) { in.Price = -1 }},
		{"min above max", func(in *CreateProductInput) { in.MinStock = 50; in.MaxStock = 10 }},
		{"unknown status", func(in *CreateProductInput) { in.Status = "archived" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(nil)
			input := validInput()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input, "actor-1")
			if apperr.KindOf(err) != apperr.InvalidArgument {
				t.Fatalf("err = %v, want InvalidArgument", err)
			}
		})
	}
}

func TestUpdatePatchesFields(t *testing.T) {
	seed := FixtureProducts()
	svc := newTestService(seed)
	id := seed[0].ID.Hex()

	price := 89.99
	stock := 30
	p, err := svc.Update(context.Background(), id, UpdateProductInput{
		Price: &price,
		Stock: &stock,
	}, "actor-2")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.Price != 89.99 || p.Stock != 30 {
		t.Errorf("patched = %.2f/%d, want 89.99/30", p.Price, p.Stock)
	}
	if p.Name != seed[0].Name {
		t.Errorf("untouched name changed to %q", p.Name)
	}
	if p.UpdatedBy != "actor-2" {
		t.Errorf("updatedBy = %q", p.UpdatedBy)
	}
}

func TestUpdateSKUUniquenessExcludesSelf(t *testing.T) {
	seed := FixtureProducts()
	svc := newTestService(seed)
	id := seed[0].ID.Hex()

	own := seed[0].SKU
	if _, err := svc.Update(context.Background(), id, UpdateProductInput{SKU: &own}, "actor-1"); err != nil {
		t.Fatalf("re-saving own sku: %v", err)
	}

	taken := seed[1].SKU
	_, err := svc.Update(context.Background(), id, UpdateProductInput{SKU: &taken}, "actor-1")
	if apperr.KindOf(err) != apperr.Conflict {
		t.Fatalf("err = %v, want Conflict", err)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	svc := newTestService(FixtureProducts())

	name := "Renamed"
	_, err := svc.Update(context.Background(), "64f000000000000000000000", UpdateProductInput{Name: &name}, "actor-1")
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("err = %v, want NotFound", err)
	}
}

func TestDeleteUnknownID(t *testing.T) {
	svc := newTestService(nil)

	err := svc.Delete(context.Background(), "64f000000000000000000000")
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("err = %v, want NotFound", err)
	}
}

func TestListLowStockFilter(t *testing.T) {
	svc := newTestService(FixtureProducts())

	products, total, err := svc.List(context.Background(), Filter{LowStock: true, Page: 1, Limit: 50})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total == 0 {
		t.Fatal("expected low-stock fixtures")
	}
	for _, p := range products {
		if !p.LowStock() {
			t.Errorf("%s: stock %d above floor %d", p.SKU, p.Stock, p.MinStock)
		}
	}
}

func TestListSearchAndPagination(t *testing.T) {
	svc := newTestService(FixtureProducts())

	products, total, err := svc.List(context.Background(), Filter{Category: "Electronics", Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3 electronics fixtures", total)
	}
	if len(products) != 2 {
		t.Errorf("page size = %d, want 2", len(products))
	}

	rest, _, err := svc.List(context.Background(), Filter{Category: "Electronics", Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if len(rest) != 1 {
		t.Errorf("second page = %d items, want 1", len(rest))
	}
}

func TestSearchSKULookup(t *testing.T) {
	svc := newTestService(FixtureProducts())

	hits, err := svc.Search(context.Background(), "WH-001", "sku_lookup", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hits) == 0 {
		t.Fatal("no hits for known sku")
	}
	if !hits[0].ExactMatch {
		t.Error("expected exact match flag on WH-001")
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := newTestService(FixtureProducts())

	hits, err := svc.Search(context.Background(), "   ", "general", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("blank query returned %d hits", len(hits))
	}
}

func TestBatchUpdateStatus(t *testing.T) {
	seed := FixtureProducts()
	svc := newTestService(seed)

	result, err := svc.Batch(context.Background(), BatchInput{
		Operation:  "bulk_update_status",
		ProductIDs: []string{seed[0].ID.Hex(), seed[1].ID.Hex()},
		UpdateData: map[string]interface{}{"status": StatusInactive},
	}, "actor-1")
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if result.Affected != 2 {
		t.Errorf("affected = %d, want 2", result.Affected)
	}

	p, err := svc.Get(context.Background(), seed[0].ID.Hex())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Status != StatusInactive {
		t.Errorf("status = %q, want inactive", p.Status)
	}
}

func TestBatchUnknownOperation(t *testing.T) {
	seed := FixtureProducts()
	svc := newTestService(seed)

	_, err := svc.Batch(context.Background(), BatchInput{
		Operation:  "bulk_explode",
		ProductIDs: []string{seed[0].ID.Hex()},
	}, "actor-1")
	if apperr.KindOf(err) != apperr.InvalidArgument {
		t.Fatalf("err = %v, want InvalidArgument", err)
	}
}
