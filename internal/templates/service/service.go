package service

import (
	"context"
	"strings"

	"templates_backend/internal/templates/repository"
	"templates_backend/internal/templates/resolver"
	"templates_backend/internal/templates/transport"
	"templates_backend/platform/logger"
)

// Service provides template resolution and administration.
type Service struct {
	factory *resolver.Factory
	repo    repository.Repository
	log     *logger.Logger
}

// New creates a new template service.
func New(factory *resolver.Factory, repo repository.Repository, log *logger.Logger) *Service {
	return &Service{factory: factory, repo: repo, log: log}
}

// ResolveProduct resolves a product template by id or name.
func (s *Service) ResolveProduct(ctx context.Context, req transport.ResolveProductRequest) (transport.ProductResponse, error) {
	handle, err := s.factory.Resolver(resolver.ResourceProduct)
	if err != nil {
		return transport.ProductResponse{}, err
	}

	product, err := handle.Product.Resolve(ctx, resolver.ProductInput{ID: req.ID, Name: req.Name})
	if err != nil {
		return transport.ProductResponse{}, err
	}
	return toProductResponse(product), nil
}

// ResolveModel resolves a model template by id or (name, option).
func (s *Service) ResolveModel(ctx context.Context, req transport.ResolveModelRequest) (transport.ModelResponse, error) {
	handle, err := s.factory.Resolver(resolver.ResourceModel)
	if err != nil {
		return transport.ModelResponse{}, err
	}

	model, err := handle.Model.Resolve(ctx, resolver.ModelInput{ID: req.ID, Name: req.Name, Option: req.Option})
	if err != nil {
		return transport.ModelResponse{}, err
	}
	return toModelResponse(model), nil
}

// ResolveRate resolves a rate template by id or (type, componentId, option).
func (s *Service) ResolveRate(ctx context.Context, req transport.ResolveRateRequest) (transport.RateResponse, error) {
	handle, err := s.factory.Resolver(resolver.ResourceRate)
	if err != nil {
		return transport.RateResponse{}, err
	}

	rate, err := handle.Rate.Resolve(ctx, resolver.RateInput{
		ID:          req.ID,
		Type:        req.Type,
		ComponentID: req.ComponentID,
		Option:      req.Option,
	})
	if err != nil {
		return transport.RateResponse{}, err
	}
	return toRateResponse(rate), nil
}

// CreateProduct creates a product template.
func (s *Service) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (transport.ProductResponse, error) {
	product, err := s.repo.CreateProduct(ctx, repository.CreateProductParams{
		Name: strings.TrimSpace(req.Name),
	})
	if err != nil {
		return transport.ProductResponse{}, err
	}

	s.log.Info("product template created", "id", product.ID, "name", product.Name)
	return toProductResponse(product), nil
}

// CreateModel creates a model template.
func (s *Service) CreateModel(ctx context.Context, req transport.CreateModelRequest) (transport.ModelResponse, error) {
	model, err := s.repo.CreateModel(ctx, repository.CreateModelParams{
		Name:   strings.TrimSpace(req.Name),
		Option: strings.TrimSpace(req.Option),
	})
	if err != nil {
		return transport.ModelResponse{}, err
	}

	s.log.Info("model template created", "id", model.ID, "name", model.Name, "option", model.Option)
	return toModelResponse(model), nil
}

// CreateRate creates a rate template.
func (s *Service) CreateRate(ctx context.Context, req transport.CreateRateRequest) (transport.RateResponse, error) {
	rate, err := s.repo.CreateRate(ctx, repository.CreateRateParams{
		Type:        strings.TrimSpace(req.Type),
		ComponentID: req.ComponentID,
		Option:      strings.TrimSpace(req.Option),
	})
	if err != nil {
		return transport.RateResponse{}, err
	}

	s.log.Info("rate template created", "id", rate.ID, "type", rate.Type, "componentId", rate.ComponentID)
	return toRateResponse(rate), nil
}

func toProductResponse(product repository.Product) transport.ProductResponse {
	return transport.ProductResponse{ID: product.ID, Name: product.Name}
}

func toModelResponse(model repository.Model) transport.ModelResponse {
	return transport.ModelResponse{ID: model.ID, Name: model.Name, Option: model.Option}
}

func toRateResponse(rate repository.Rate) transport.RateResponse {
	return transport.RateResponse{
		ID:          rate.ID,
		Type:        rate.Type,
		ComponentID: rate.ComponentID,
		Option:      rate.Option,
	}
}
