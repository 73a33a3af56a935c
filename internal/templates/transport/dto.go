package transport

// Resolution requests. Each carries two mutually exclusive lookup
// strategies; the resolver decides which applies, id taking precedence.

type ResolveProductRequest struct {
	ID   *int64  `json:"id,omitempty" validate:"omitempty,min=1"`
	Name *string `json:"name,omitempty" validate:"omitempty,max=200"`
}

type ResolveModelRequest struct {
	ID     *int64  `json:"id,omitempty" validate:"omitempty,min=1"`
	Name   *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Option *string `json:"option,omitempty" validate:"omitempty,max=200"`
}

type ResolveRateRequest struct {
	ID          *int64  `json:"id,omitempty" validate:"omitempty,min=1"`
	Type        *string `json:"type,omitempty" validate:"omitempty,max=200"`
	ComponentID *int64  `json:"componentId,omitempty" validate:"omitempty,min=1"`
	Option      *string `json:"option,omitempty" validate:"omitempty,max=200"`
}

// Admin creation requests.

type CreateProductRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

type CreateModelRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Option string `json:"option" validate:"required,min=1,max=200"`
}

type CreateRateRequest struct {
	Type        string `json:"type" validate:"required,min=1,max=200"`
	ComponentID int64  `json:"componentId" validate:"required,min=1"`
	Option      string `json:"option" validate:"required,min=1,max=200"`
}

// Responses.

type ProductResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ModelResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Option string `json:"option"`
}

type RateResponse struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	ComponentID int64  `json:"componentId"`
	Option      string `json:"option"`
}
