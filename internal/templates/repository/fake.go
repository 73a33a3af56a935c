package repository

import (
	"context"
	"fmt"
)

// Fake is an always-succeeding template repository used in tests. Lookups
// never miss: by-id lookups synthesize descriptive attributes from the id
// (Product_<id> and so on), and natural-key lookups return id 1 carrying the
// requested key fields back.
type Fake struct{}

// NewFake creates a synthesizing fake repository.
func NewFake() *Fake {
	return &Fake{}
}

var _ ProductReader = (*Fake)(nil)
var _ ModelReader = (*Fake)(nil)
var _ RateReader = (*Fake)(nil)

func (f *Fake) GetProductByID(_ context.Context, id int64) (Product, error) {
	return Product{ID: id, Name: fmt.Sprintf("Product_%d", id)}, nil
}

func (f *Fake) GetProductByName(_ context.Context, name string) (Product, error) {
	return Product{ID: 1, Name: name}, nil
}

func (f *Fake) GetModelByID(_ context.Context, id int64) (Model, error) {
	return Model{
		ID:     id,
		Name:   fmt.Sprintf("Model_%d", id),
		Option: fmt.Sprintf("Option_%d", id),
	}, nil
}

func (f *Fake) GetModelByKey(_ context.Context, name, option string) (Model, error) {
	return Model{ID: 1, Name: name, Option: option}, nil
}

func (f *Fake) GetRateByID(_ context.Context, id int64) (Rate, error) {
	return Rate{
		ID:          id,
		Type:        fmt.Sprintf("Type_%d", id),
		ComponentID: id,
		Option:      fmt.Sprintf("Option_%d", id),
	}, nil
}

func (f *Fake) GetRateByKey(_ context.Context, rateType string, componentID int64, option string) (Rate, error) {
	return Rate{ID: 1, Type: rateType, ComponentID: componentID, Option: option}, nil
}
