package repository

import (
	"context"
	"testing"

	"templates_backend/platform/apperr"
)

func TestMemory_ProductRoundTrip(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	created, err := repo.CreateProduct(ctx, CreateProductParams{Name: "Widget"})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected first id 1, got %d", created.ID)
	}

	byID, err := repo.GetProductByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID != created {
		t.Fatalf("expected %+v, got %+v", created, byID)
	}

	byName, err := repo.GetProductByName(ctx, "Widget")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if byName != created {
		t.Fatalf("expected %+v, got %+v", created, byName)
	}
}

func TestMemory_ProductNotFound(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	if _, err := repo.GetProductByID(ctx, 1); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := repo.GetProductByName(ctx, "Widget"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemory_DuplicateProductConflicts(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	if _, err := repo.CreateProduct(ctx, CreateProductParams{Name: "Widget"}); err != nil {
		t.Fatalf("create product: %v", err)
	}
	if _, err := repo.CreateProduct(ctx, CreateProductParams{Name: "Widget"}); !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestMemory_ModelNaturalKey(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	standard, err := repo.CreateModel(ctx, CreateModelParams{Name: "Widget", Option: "Standard"})
	if err != nil {
		t.Fatalf("create model: %v", err)
	}
	deluxe, err := repo.CreateModel(ctx, CreateModelParams{Name: "Widget", Option: "Deluxe"})
	if err != nil {
		t.Fatalf("create model: %v", err)
	}

	got, err := repo.GetModelByKey(ctx, "Widget", "Deluxe")
	if err != nil {
		t.Fatalf("get by key: %v", err)
	}
	if got != deluxe {
		t.Fatalf("expected %+v, got %+v", deluxe, got)
	}

	got, err = repo.GetModelByKey(ctx, "Widget", "Standard")
	if err != nil {
		t.Fatalf("get by key: %v", err)
	}
	if got != standard {
		t.Fatalf("expected %+v, got %+v", standard, got)
	}

	if _, err := repo.GetModelByKey(ctx, "Widget", "Premium"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemory_RateNaturalKey(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	created, err := repo.CreateRate(ctx, CreateRateParams{Type: "Fixed", ComponentID: 10, Option: "Call"})
	if err != nil {
		t.Fatalf("create rate: %v", err)
	}

	got, err := repo.GetRateByKey(ctx, "Fixed", 10, "Call")
	if err != nil {
		t.Fatalf("get by key: %v", err)
	}
	if got != created {
		t.Fatalf("expected %+v, got %+v", created, got)
	}

	// Every key field participates in the identity.
	if _, err := repo.GetRateByKey(ctx, "Fixed", 11, "Call"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFake_SynthesizesRecords(t *testing.T) {
	fake := NewFake()
	ctx := context.Background()

	product, err := fake.GetProductByID(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Name != "Product_1" {
		t.Fatalf("expected Product_1, got %q", product.Name)
	}

	model, err := fake.GetModelByID(ctx, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if model.Name != "Model_4" || model.Option != "Option_4" {
		t.Fatalf("unexpected model %+v", model)
	}

	rate, err := fake.GetRateByKey(ctx, "Fixed", 10, "Call")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate.ID != 1 || rate.Type != "Fixed" || rate.ComponentID != 10 || rate.Option != "Call" {
		t.Fatalf("unexpected rate %+v", rate)
	}
}
