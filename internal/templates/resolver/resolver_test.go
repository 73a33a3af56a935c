package resolver

import (
	"context"
	"testing"

	"templates_backend/internal/templates/repository"
	"templates_backend/platform/apperr"
)

func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

func TestProductResolver_ByID(t *testing.T) {
	r := NewProduct(repository.NewFake())

	product, err := r.Resolve(context.Background(), ProductInput{ID: int64Ptr(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.ID != 1 || product.Name != "Product_1" {
		t.Fatalf("expected Product{1, Product_1}, got %+v", product)
	}
}

func TestProductResolver_ByName(t *testing.T) {
	r := NewProduct(repository.NewFake())

	product, err := r.Resolve(context.Background(), ProductInput{Name: strPtr("Widget")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.ID != 1 || product.Name != "Widget" {
		t.Fatalf("expected Product{1, Widget}, got %+v", product)
	}
}

func TestProductResolver_IDWinsOverName(t *testing.T) {
	r := NewProduct(repository.NewFake())

	product, err := r.Resolve(context.Background(), ProductInput{ID: int64Ptr(7), Name: strPtr("Widget")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.ID != 7 || product.Name != "Product_7" {
		t.Fatalf("expected by-id lookup to win, got %+v", product)
	}
}

func TestProductResolver_EmptyInput(t *testing.T) {
	r := NewProduct(repository.NewFake())

	_, err := r.Resolve(context.Background(), ProductInput{})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestProductResolver_EmptyNameIsInvalid(t *testing.T) {
	r := NewProduct(repository.NewFake())

	_, err := r.Resolve(context.Background(), ProductInput{Name: strPtr("")})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestModelResolver_ByKey(t *testing.T) {
	r := NewModel(repository.NewFake())

	model, err := r.Resolve(context.Background(), ModelInput{Name: strPtr("Widget"), Option: strPtr("Deluxe")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if model.ID != 1 || model.Name != "Widget" || model.Option != "Deluxe" {
		t.Fatalf("expected Model{1, Widget, Deluxe}, got %+v", model)
	}
}

func TestModelResolver_PartialKeyIsInvalid(t *testing.T) {
	r := NewModel(repository.NewFake())

	// name without option does not satisfy the natural key
	_, err := r.Resolve(context.Background(), ModelInput{Name: strPtr("Widget")})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestModelResolver_EmptyInput(t *testing.T) {
	r := NewModel(repository.NewFake())

	_, err := r.Resolve(context.Background(), ModelInput{})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRateResolver_ByKey(t *testing.T) {
	r := NewRate(repository.NewFake())

	rate, err := r.Resolve(context.Background(), RateInput{
		Type:        strPtr("Fixed"),
		ComponentID: int64Ptr(10),
		Option:      strPtr("Call"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate.ID != 1 || rate.Type != "Fixed" || rate.ComponentID != 10 || rate.Option != "Call" {
		t.Fatalf("expected Rate{1, Fixed, 10, Call}, got %+v", rate)
	}
}

func TestRateResolver_IDWinsOverKey(t *testing.T) {
	r := NewRate(repository.NewFake())

	rate, err := r.Resolve(context.Background(), RateInput{
		ID:          int64Ptr(3),
		Type:        strPtr("Fixed"),
		ComponentID: int64Ptr(10),
		Option:      strPtr("Call"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate.ID != 3 || rate.Type != "Type_3" {
		t.Fatalf("expected by-id lookup to win, got %+v", rate)
	}
}

func TestRateResolver_PartialKeyIsInvalid(t *testing.T) {
	r := NewRate(repository.NewFake())

	_, err := r.Resolve(context.Background(), RateInput{Type: strPtr("Fixed"), Option: strPtr("Call")})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestResolver_Idempotence(t *testing.T) {
	repo := repository.NewMemory()
	seeded, err := repo.CreateProduct(context.Background(), repository.CreateProductParams{Name: "Widget"})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}

	r := NewProduct(repo)
	in := ProductInput{Name: strPtr("Widget")}

	first, err := r.Resolve(context.Background(), in)
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	second, err := r.Resolve(context.Background(), in)
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if first != second || first != seeded {
		t.Fatalf("expected identical records, got %+v and %+v", first, second)
	}
}

func TestResolver_NotFoundPropagates(t *testing.T) {
	r := NewProduct(repository.NewMemory())

	_, err := r.Resolve(context.Background(), ProductInput{ID: int64Ptr(42)})
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
