package reconcile

import "inventree-sync/core/catalog"

// AmbiguityPolicy decides what happens when several parts share the exact
// name being reconciled.
type AmbiguityPolicy int

const (
	// AmbiguityFatal fails with an *AmbiguousError.
	AmbiguityFatal AmbiguityPolicy = iota
	// AmbiguityFirst takes the first match and logs a warning.
	AmbiguityFirst
)

func (p AmbiguityPolicy) String() string {
	if p == AmbiguityFirst {
		return "first"
	}
	return "fatal"
}

// ParseAmbiguityPolicy converts a configuration value into a policy.
func ParseAmbiguityPolicy(s string) (AmbiguityPolicy, error) {
	switch s {
	case "", "fatal":
		return AmbiguityFatal, nil
	case "first":
		return AmbiguityFirst, nil
	}
	return AmbiguityFatal, &ConfigError{Setting: "ambiguity", Reason: "must be fatal or first, got " + s}
}

// Request describes the part to find or create.
type Request struct {
	// SKU is the supplier's stock keeping unit. When set, an existing supplier
	// part with this SKU short-cuts the whole reconciliation.
	SKU string

	// Name is matched exactly against existing part names.
	Name string

	// Description is used only when a part is created.
	Description string

	// CategoryID scopes the name search and receives new parts.
	CategoryID int

	// SupplierID is the company new supplier parts are linked to.
	SupplierID int

	// Manufacturer, when set, gets a manufacturer part carrying MPN alongside a
	// newly created supplier part.
	Manufacturer *catalog.Company
	MPN          string

	// Link and Available are stored on a newly created supplier part.
	Link      string
	Available *float64

	// Ambiguity is the duplicate exact-name policy.
	Ambiguity AmbiguityPolicy
}

// Result is the outcome of a reconciliation.
type Result struct {
	Part *catalog.Part
	// SupplierPart is nil when the request had no SKU.
	SupplierPart *catalog.SupplierPart

	// ManufacturerPart is set only when it was created by this call.
	ManufacturerPart *catalog.ManufacturerPart

	// PartCreated is true when no part with the exact name existed. It drives
	// attribute writing and image upload.
	PartCreated bool

	// SupplierPartCreated is false when the SKU lookup found the supplier part.
	SupplierPartCreated bool
}

// Attribute is a named parameter value.
type Attribute struct {
	Name  string
	Value string
}
