package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"templates_backend/platform/apperr"
)

const (
	productNotFoundMessage = "product template not found"
	modelNotFoundMessage   = "model template not found"
	rateNotFoundMessage    = "rate template not found"
)

// Postgres implements the template repository against pgx.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new postgres-backed template repository.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Compile-time check that Postgres implements Repository.
var _ Repository = (*Postgres)(nil)

// GetProductByID retrieves a product template by ID.
func (r *Postgres) GetProductByID(ctx context.Context, id int64) (Product, error) {
	query := `SELECT id, name FROM products WHERE id = $1`

	var product Product
	if err := r.pool.QueryRow(ctx, query, id).Scan(&product.ID, &product.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, apperr.NotFound(productNotFoundMessage)
		}
		return Product{}, fmt.Errorf("get product by id: %w", err)
	}
	return product, nil
}

// GetProductByName retrieves a product template by its natural key.
func (r *Postgres) GetProductByName(ctx context.Context, name string) (Product, error) {
	query := `SELECT id, name FROM products WHERE name = $1`

	var product Product
	if err := r.pool.QueryRow(ctx, query, name).Scan(&product.ID, &product.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, apperr.NotFound(productNotFoundMessage)
		}
		return Product{}, fmt.Errorf("get product by name: %w", err)
	}
	return product, nil
}

// GetModelByID retrieves a model template by ID.
func (r *Postgres) GetModelByID(ctx context.Context, id int64) (Model, error) {
	query := `SELECT id, name, option FROM models WHERE id = $1`

	var model Model
	if err := r.pool.QueryRow(ctx, query, id).Scan(&model.ID, &model.Name, &model.Option); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Model{}, apperr.NotFound(modelNotFoundMessage)
		}
		return Model{}, fmt.Errorf("get model by id: %w", err)
	}
	return model, nil
}

// GetModelByKey retrieves a model template by its natural key.
func (r *Postgres) GetModelByKey(ctx context.Context, name, option string) (Model, error) {
	query := `SELECT id, name, option FROM models WHERE name = $1 AND option = $2`

	var model Model
	if err := r.pool.QueryRow(ctx, query, name, option).Scan(&model.ID, &model.Name, &model.Option); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Model{}, apperr.NotFound(modelNotFoundMessage)
		}
		return Model{}, fmt.Errorf("get model by key: %w", err)
	}
	return model, nil
}

// GetRateByID retrieves a rate template by ID.
func (r *Postgres) GetRateByID(ctx context.Context, id int64) (Rate, error) {
	query := `SELECT id, type, component_id, option FROM rates WHERE id = $1`

	var rate Rate
	if err := r.pool.QueryRow(ctx, query, id).Scan(&rate.ID, &rate.Type, &rate.ComponentID, &rate.Option); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Rate{}, apperr.NotFound(rateNotFoundMessage)
		}
		return Rate{}, fmt.Errorf("get rate by id: %w", err)
	}
	return rate, nil
}

// GetRateByKey retrieves a rate template by its natural key.
func (r *Postgres) GetRateByKey(ctx context.Context, rateType string, componentID int64, option string) (Rate, error) {
	query := `SELECT id, type, component_id, option FROM rates WHERE type = $1 AND component_id = $2 AND option = $3`

	var rate Rate
	if err := r.pool.QueryRow(ctx, query, rateType, componentID, option).Scan(
		&rate.ID, &rate.Type, &rate.ComponentID, &rate.Option,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Rate{}, apperr.NotFound(rateNotFoundMessage)
		}
		return Rate{}, fmt.Errorf("get rate by key: %w", err)
	}
	return rate, nil
}

// CreateProduct creates a product template.
func (r *Postgres) CreateProduct(ctx context.Context, params CreateProductParams) (Product, error) {
	query := `INSERT INTO products (name) VALUES ($1) RETURNING id, name`

	var product Product
	if err := r.pool.QueryRow(ctx, query, params.Name).Scan(&product.ID, &product.Name); err != nil {
		if isUniqueViolation(err) {
			return Product{}, apperr.Conflict("product template already exists")
		}
		return Product{}, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// CreateModel creates a model template.
func (r *Postgres) CreateModel(ctx context.Context, params CreateModelParams) (Model, error) {
	query := `INSERT INTO models (name, option) VALUES ($1, $2) RETURNING id, name, option`

	var model Model
	if err := r.pool.QueryRow(ctx, query, params.Name, params.Option).Scan(&model.ID, &model.Name, &model.Option); err != nil {
		if isUniqueViolation(err) {
			return Model{}, apperr.Conflict("model template already exists")
		}
		return Model{}, fmt.Errorf("create model: %w", err)
	}
	return model, nil
}

// CreateRate creates a rate template.
func (r *Postgres) CreateRate(ctx context.Context, params CreateRateParams) (Rate, error) {
	query := `INSERT INTO rates (type, component_id, option) VALUES ($1, $2, $3) RETURNING id, type, component_id, option`

	var rate Rate
	if err := r.pool.QueryRow(ctx, query, params.Type, params.ComponentID, params.Option).Scan(
		&rate.ID, &rate.Type, &rate.ComponentID, &rate.Option,
	); err != nil {
		if isUniqueViolation(err) {
			return Rate{}, apperr.Conflict("rate template already exists")
		}
		return Rate{}, fmt.Errorf("create rate: %w", err)
	}
	return rate, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
