// Package resolver translates template lookup requests into exactly one
// domain record by delegating to the matching repository port.
package resolver

import (
	"context"

	"templates_backend/internal/templates/repository"
	"templates_backend/platform/apperr"
)

// ProductResolver resolves product templates.
type ProductResolver struct {
	repo repository.ProductReader
}

// NewProduct creates a product resolver backed by the given port.
func NewProduct(repo repository.ProductReader) *ProductResolver {
	return &ProductResolver{repo: repo}
}

// Resolve returns the product matching the input. An id lookup takes
// precedence over the natural key; an input satisfying neither fails
// with a validation error.
func (r *ProductResolver) Resolve(ctx context.Context, in ProductInput) (repository.Product, error) {
	switch q := in.lookup(); q.kind {
	case lookupByID:
		return r.repo.GetProductByID(ctx, q.id)
	case lookupByKey:
		return r.repo.GetProductByName(ctx, q.name)
	default:
		return repository.Product{}, apperr.Validation("either id or name must be provided")
	}
}

// ModelResolver resolves model templates.
type ModelResolver struct {
	repo repository.ModelReader
}

// NewModel creates a model resolver backed by the given port.
func NewModel(repo repository.ModelReader) *ModelResolver {
	return &ModelResolver{repo: repo}
}

// Resolve returns the model matching the input. The natural key is the
// (name, option) pair; both fields must be present for a key lookup.
func (r *ModelResolver) Resolve(ctx context.Context, in ModelInput) (repository.Model, error) {
	switch q := in.lookup(); q.kind {
	case lookupByID:
		return r.repo.GetModelByID(ctx, q.id)
	case lookupByKey:
		return r.repo.GetModelByKey(ctx, q.name, q.option)
	default:
		return repository.Model{}, apperr.Validation("either id or both name and option must be provided")
	}
}

// RateResolver resolves rate templates.
type RateResolver struct {
	repo repository.RateReader
}

// NewRate creates a rate resolver backed by the given port.
func NewRate(repo repository.RateReader) *RateResolver {
	return &RateResolver{repo: repo}
}

// Resolve returns the rate matching the input. The natural key is the
// (type, componentId, option) triple; all three must be present for a
// key lookup.
func (r *RateResolver) Resolve(ctx context.Context, in RateInput) (repository.Rate, error) {
	switch q := in.lookup(); q.kind {
	case lookupByID:
		return r.repo.GetRateByID(ctx, q.id)
	case lookupByKey:
		return r.repo.GetRateByKey(ctx, q.rateType, q.componentID, q.option)
	default:
		return repository.Rate{}, apperr.Validation("either id or type, componentId and option must be provided")
	}
}
