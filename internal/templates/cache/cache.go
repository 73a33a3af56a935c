// Package cache provides a redis read-through decorator over the template
// repository. The cache is a latency layer, never a correctness layer: every
// redis failure falls through to the inner repository.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"templates_backend/internal/templates/repository"
	"templates_backend/platform/logger"
)

// Repository decorates an inner template repository with redis caching on
// the read paths. Writes pass through untouched; entries expire by TTL.
// Misses are not cached, so a record created after a failed lookup is
// visible immediately.
type Repository struct {
	inner  repository.Repository
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// New wraps the inner repository with a redis read-through cache.
func New(inner repository.Repository, client *redis.Client, ttl time.Duration, log *logger.Logger) *Repository {
	return &Repository{inner: inner, client: client, ttl: ttl, log: log}
}

var _ repository.Repository = (*Repository)(nil)

// GetProductByID retrieves a product template by ID.
func (r *Repository) GetProductByID(ctx context.Context, id int64) (repository.Product, error) {
	key := fmt.Sprintf("tpl:product:id:%d", id)
	var cached repository.Product
	if r.fetch(ctx, key, &cached) {
		return cached, nil
	}

	product, err := r.inner.GetProductByID(ctx, id)
	if err != nil {
		return repository.Product{}, err
	}
	r.store(ctx, key, product)
	return product, nil
}

// GetProductByName retrieves a product template by its natural key.
func (r *Repository) GetProductByName(ctx context.Context, name string) (repository.Product, error) {
	key := "tpl:product:name:" + name
	var cached repository.Product
	if r.fetch(ctx, key, &cached) {
		return cached, nil
	}

	product, err := r.inner.GetProductByName(ctx, name)
	if err != nil {
		return repository.Product{}, err
	}
	r.store(ctx, key, product)
	return product, nil
}

// GetModelByID retrieves a model template by ID.
func (r *Repository) GetModelByID(ctx context.Context, id int64) (repository.Model, error) {
	key := fmt.Sprintf("tpl:model:id:%d", id)
	var cached repository.Model
	if r.fetch(ctx, key, &cached) {
		return cached, nil
	}

	model, err := r.inner.GetModelByID(ctx, id)
	if err != nil {
		return repository.Model{}, err
	}
	r.store(ctx, key, model)
	return model, nil
}

// GetModelByKey retrieves a model template by its natural key.
func (r *Repository) GetModelByKey(ctx context.Context, name, option string) (repository.Model, error) {
	key := fmt.Sprintf("tpl:model:key:%s|%s", name, option)
	var cached repository.Model
	if r.fetch(ctx, key, &cached) {
		return cached, nil
	}

	model, err := r.inner.GetModelByKey(ctx, name, option)
	if err != nil {
		return repository.Model{}, err
	}
	r.store(ctx, key, model)
	return model, nil
}

// GetRateByID retrieves a rate template by ID.
func (r *Repository) GetRateByID(ctx context.Context, id int64) (repository.Rate, error) {
	key := fmt.Sprintf("tpl:rate:id:%d", id)
	var cached repository.Rate
	if r.fetch(ctx, key, &cached) {
		return cached, nil
	}

	rate, err := r.inner.GetRateByID(ctx, id)
	if err != nil {
		return repository.Rate{}, err
	}
	r.store(ctx, key, rate)
	return rate, nil
}

// GetRateByKey retrieves a rate template by its natural key.
func (r *Repository) GetRateByKey(ctx context.Context, rateType string, componentID int64, option string) (repository.Rate, error) {
	key := fmt.Sprintf("tpl:rate:key:%s|%d|%s", rateType, componentID, option)
	var cached repository.Rate
	if r.fetch(ctx, key, &cached) {
		return cached, nil
	}

	rate, err := r.inner.GetRateByKey(ctx, rateType, componentID, option)
	if err != nil {
		return repository.Rate{}, err
	}
	r.store(ctx, key, rate)
	return rate, nil
}

// CreateProduct creates a product template.
func (r *Repository) CreateProduct(ctx context.Context, params repository.CreateProductParams) (repository.Product, error) {
	return r.inner.CreateProduct(ctx, params)
}

// CreateModel creates a model template.
func (r *Repository) CreateModel(ctx context.Context, params repository.CreateModelParams) (repository.Model, error) {
	return r.inner.CreateModel(ctx, params)
}

// CreateRate creates a rate template.
func (r *Repository) CreateRate(ctx context.Context, params repository.CreateRateParams) (repository.Rate, error) {
	return r.inner.CreateRate(ctx, params)
}

// fetch reports whether the key was present and unmarshaled into target.
func (r *Repository) fetch(ctx context.Context, key string, target interface{}) bool {
	payload, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil && r.log != nil {
			r.log.CacheError("get", key, err)
		}
		return false
	}
	if err := json.Unmarshal(payload, target); err != nil {
		if r.log != nil {
			r.log.CacheError("unmarshal", key, err)
		}
		return false
	}
	return true
}

func (r *Repository) store(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		if r.log != nil {
			r.log.CacheError("marshal", key, err)
		}
		return
	}
	if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil && r.log != nil {
		r.log.CacheError("set", key, err)
	}
}
