package repository

import (
	"context"
	"sync"

	"templates_backend/platform/apperr"
)

// Memory is an in-memory template repository. It serves as the backing store
// when no database is configured and as a stable store in tests. All access
// is guarded by a single mutex; natural keys are held in secondary indexes.
type Memory struct {
	mu sync.RWMutex

	products       map[int64]Product
	productsByName map[string]int64
	nextProductID  int64

	models      map[int64]Model
	modelsByKey map[modelKey]int64
	nextModelID int64

	rates      map[int64]Rate
	ratesByKey map[rateKey]int64
	nextRateID int64
}

type modelKey struct {
	name   string
	option string
}

type rateKey struct {
	rateType    string
	componentID int64
	option      string
}

// NewMemory creates an empty in-memory template repository.
func NewMemory() *Memory {
	return &Memory{
		products:       make(map[int64]Product),
		productsByName: make(map[string]int64),
		models:         make(map[int64]Model),
		modelsByKey:    make(map[modelKey]int64),
		rates:          make(map[int64]Rate),
		ratesByKey:     make(map[rateKey]int64),
	}
}

// Compile-time check that Memory implements Repository.
var _ Repository = (*Memory)(nil)

// GetProductByID retrieves a product template by ID.
func (m *Memory) GetProductByID(_ context.Context, id int64) (Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	product, ok := m.products[id]
	if !ok {
		return Product{}, apperr.NotFound(productNotFoundMessage)
	}
	return product, nil
}

// GetProductByName retrieves a product template by its natural key.
func (m *Memory) GetProductByName(_ context.Context, name string) (Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.productsByName[name]
	if !ok {
		return Product{}, apperr.NotFound(productNotFoundMessage)
	}
	return m.products[id], nil
}

// GetModelByID retrieves a model template by ID.
func (m *Memory) GetModelByID(_ context.Context, id int64) (Model, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	model, ok := m.models[id]
	if !ok {
		return Model{}, apperr.NotFound(modelNotFoundMessage)
	}
	return model, nil
}

// GetModelByKey retrieves a model template by its natural key.
func (m *Memory) GetModelByKey(_ context.Context, name, option string) (Model, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.modelsByKey[modelKey{name: name, option: option}]
	if !ok {
		return Model{}, apperr.NotFound(modelNotFoundMessage)
	}
	return m.models[id], nil
}

// GetRateByID retrieves a rate template by ID.
func (m *Memory) GetRateByID(_ context.Context, id int64) (Rate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rate, ok := m.rates[id]
	if !ok {
		return Rate{}, apperr.NotFound(rateNotFoundMessage)
	}
	return rate, nil
}

// GetRateByKey retrieves a rate template by its natural key.
func (m *Memory) GetRateByKey(_ context.Context, rateType string, componentID int64, option string) (Rate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.ratesByKey[rateKey{rateType: rateType, componentID: componentID, option: option}]
	if !ok {
		return Rate{}, apperr.NotFound(rateNotFoundMessage)
	}
	return m.rates[id], nil
}

// CreateProduct creates a product template.
func (m *Memory) CreateProduct(_ context.Context, params CreateProductParams) (Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.productsByName[params.Name]; exists {
		return Product{}, apperr.Conflict("product template already exists")
	}

	m.nextProductID++
	product := Product{ID: m.nextProductID, Name: params.Name}
	m.products[product.ID] = product
	m.productsByName[product.Name] = product.ID
	return product, nil
}

// CreateModel creates a model template.
func (m *Memory) CreateModel(_ context.Context, params CreateModelParams) (Model, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := modelKey{name: params.Name, option: params.Option}
	if _, exists := m.modelsByKey[key]; exists {
		return Model{}, apperr.Conflict("model template already exists")
	}

	m.nextModelID++
	model := Model{ID: m.nextModelID, Name: params.Name, Option: params.Option}
	m.models[model.ID] = model
	m.modelsByKey[key] = model.ID
	return model, nil
}

// CreateRate creates a rate template.
func (m *Memory) CreateRate(_ context.Context, params CreateRateParams) (Rate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := rateKey{rateType: params.Type, componentID: params.ComponentID, option: params.Option}
	if _, exists := m.ratesByKey[key]; exists {
		return Rate{}, apperr.Conflict("rate template already exists")
	}

	m.nextRateID++
	rate := Rate{ID: m.nextRateID, Type: params.Type, ComponentID: params.ComponentID, Option: params.Option}
	m.rates[rate.ID] = rate
	m.ratesByKey[key] = rate.ID
	return rate, nil
}
