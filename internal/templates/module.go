// Package templates provides the template resolution bounded context module.
package templates

import (
	apphttp "templates_backend/internal/http"
	"templates_backend/internal/templates/handler"
	"templates_backend/internal/templates/repository"
	"templates_backend/internal/templates/resolver"
	"templates_backend/internal/templates/service"
	"templates_backend/platform/logger"
	"templates_backend/platform/validator"
)

// Module is the templates bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the templates module. The repository may
// be any Repository implementation (postgres, cached, in-memory); one
// resolver per template type is wired against its read port.
func NewModule(repo repository.Repository, val *validator.Validator, log *logger.Logger) *Module {
	factory := resolver.NewFactory(
		resolver.NewProduct(repo),
		resolver.NewModel(repo),
		resolver.NewRate(repo),
	)

	svc := service.New(factory, repo, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "templates"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the repository for direct access if needed.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts template routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/templates")
	group.POST("/product", m.handler.ResolveProduct)
	group.POST("/model", m.handler.ResolveModel)
	group.POST("/rate", m.handler.ResolveRate)

	adminGroup := ctx.Admin.Group("/templates")
	adminGroup.POST("/products", m.handler.CreateProduct)
	adminGroup.POST("/models", m.handler.CreateModel)
	adminGroup.POST("/rates", m.handler.CreateRate)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
