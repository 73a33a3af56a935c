package resolver

import (
	"fmt"

	"templates_backend/platform/apperr"
)

// ResourceType selects which resolver a request targets. The enumeration is
// closed; the factory rejects anything outside it.
type ResourceType int

const (
	ResourceProduct ResourceType = iota
	ResourceModel
	ResourceRate
)

// String returns the wire name of the resource type.
func (t ResourceType) String() string {
	switch t {
	case ResourceProduct:
		return "product"
	case ResourceModel:
		return "model"
	case ResourceRate:
		return "rate"
	default:
		return fmt.Sprintf("ResourceType(%d)", int(t))
	}
}

// ParseResourceType maps a wire name onto the enumeration.
func ParseResourceType(value string) (ResourceType, error) {
	switch value {
	case "product":
		return ResourceProduct, nil
	case "model":
		return ResourceModel, nil
	case "rate":
		return ResourceRate, nil
	default:
		return 0, apperr.BadRequest(fmt.Sprintf("unsupported resource type %q", value))
	}
}

// Handle is a tagged union over the three resolver types. Exactly one of the
// resolver fields is non-nil, and it always matches Type, so callers switch
// on Type without type assertions.
type Handle struct {
	Type    ResourceType
	Product *ProductResolver
	Model   *ModelResolver
	Rate    *RateResolver
}

// Factory maps a resource type onto the resolver wired for it.
type Factory struct {
	product *ProductResolver
	model   *ModelResolver
	rate    *RateResolver
}

// NewFactory wires one resolver per template type.
func NewFactory(product *ProductResolver, model *ModelResolver, rate *RateResolver) *Factory {
	return &Factory{product: product, model: model, rate: rate}
}

// Resolver returns the handle for the requested resource type. Requests for
// anything outside the closed enumeration fail with an unsupported-type
// error; that is a caller bug, not a retryable condition.
func (f *Factory) Resolver(resourceType ResourceType) (Handle, error) {
	switch resourceType {
	case ResourceProduct:
		return Handle{Type: resourceType, Product: f.product}, nil
	case ResourceModel:
		return Handle{Type: resourceType, Model: f.model}, nil
	case ResourceRate:
		return Handle{Type: resourceType, Rate: f.rate}, nil
	default:
		return Handle{}, apperr.BadRequest(fmt.Sprintf("unsupported resource type %q", resourceType))
	}
}
