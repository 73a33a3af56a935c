package resolver

// Lookup inputs for each template type. Fields are optional; Resolve
// normalizes them into a lookup variant before dispatching, so the
// id-over-natural-key precedence is decided in exactly one place per type.

// ProductInput selects a product template by id or by name.
type ProductInput struct {
	ID   *int64
	Name *string
}

// ModelInput selects a model template by id or by (name, option).
type ModelInput struct {
	ID     *int64
	Name   *string
	Option *string
}

// RateInput selects a rate template by id or by (type, componentID, option).
type RateInput struct {
	ID          *int64
	Type        *string
	ComponentID *int64
	Option      *string
}

// lookupKind tags the lookup variant a request normalizes to.
type lookupKind int

const (
	lookupInvalid lookupKind = iota
	lookupByID
	lookupByKey
)

type productLookup struct {
	kind lookupKind
	id   int64
	name string
}

// lookup normalizes the optional fields into a tagged variant.
// An id always wins over natural-key fields; the natural key requires
// every field to be present and non-empty.
func (in ProductInput) lookup() productLookup {
	if in.ID != nil {
		return productLookup{kind: lookupByID, id: *in.ID}
	}
	if in.Name != nil && *in.Name != "" {
		return productLookup{kind: lookupByKey, name: *in.Name}
	}
	return productLookup{kind: lookupInvalid}
}

type modelLookup struct {
	kind   lookupKind
	id     int64
	name   string
	option string
}

func (in ModelInput) lookup() modelLookup {
	if in.ID != nil {
		return modelLookup{kind: lookupByID, id: *in.ID}
	}
	if in.Name != nil && *in.Name != "" && in.Option != nil && *in.Option != "" {
		return modelLookup{kind: lookupByKey, name: *in.Name, option: *in.Option}
	}
	return modelLookup{kind: lookupInvalid}
}

type rateLookup struct {
	kind        lookupKind
	id          int64
	rateType    string
	componentID int64
	option      string
}

func (in RateInput) lookup() rateLookup {
	if in.ID != nil {
		return rateLookup{kind: lookupByID, id: *in.ID}
	}
	if in.Type != nil && *in.Type != "" &&
		in.ComponentID != nil && *in.ComponentID != 0 &&
		in.Option != nil && *in.Option != "" {
		return rateLookup{
			kind:        lookupByKey,
			rateType:    *in.Type,
			componentID: *in.ComponentID,
			option:      *in.Option,
		}
	}
	return rateLookup{kind: lookupInvalid}
}
