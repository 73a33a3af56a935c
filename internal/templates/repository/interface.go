package repository

import "context"

// Product is a product template.
type Product struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Model is a model template, qualified by an option.
type Model struct {
	ID     int64  `db:"id"`
	Name   string `db:"name"`
	Option string `db:"option"`
}

// Rate is a rate template referencing a component by ID.
type Rate struct {
	ID          int64  `db:"id"`
	Type        string `db:"type"`
	ComponentID int64  `db:"component_id"`
	Option      string `db:"option"`
}

// CreateProductParams contains data for creating a product template.
type CreateProductParams struct {
	Name string
}

// CreateModelParams contains data for creating a model template.
type CreateModelParams struct {
	Name   string
	Option string
}

// CreateRateParams contains data for creating a rate template.
type CreateRateParams struct {
	Type        string
	ComponentID int64
	Option      string
}

// ProductReader looks up product templates by ID or by natural key (name).
type ProductReader interface {
	GetProductByID(ctx context.Context, id int64) (Product, error)
	GetProductByName(ctx context.Context, name string) (Product, error)
}

// ModelReader looks up model templates by ID or by natural key (name, option).
type ModelReader interface {
	GetModelByID(ctx context.Context, id int64) (Model, error)
	GetModelByKey(ctx context.Context, name, option string) (Model, error)
}

// RateReader looks up rate templates by ID or by natural key
// (type, componentID, option).
type RateReader interface {
	GetRateByID(ctx context.Context, id int64) (Rate, error)
	GetRateByKey(ctx context.Context, rateType string, componentID int64, option string) (Rate, error)
}

// Writer creates template records. Used by admin endpoints and the seeder.
type Writer interface {
	CreateProduct(ctx context.Context, params CreateProductParams) (Product, error)
	CreateModel(ctx context.Context, params CreateModelParams) (Model, error)
	CreateRate(ctx context.Context, params CreateRateParams) (Rate, error)
}

// Repository defines template storage operations.
type Repository interface {
	ProductReader
	ModelReader
	RateReader
	Writer
}
