package catalog

import "github.com/shopspring/decimal"

// Part is a catalog entry in the inventory system.
type Part struct {
	ID           int    `json:"pk,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	CategoryID   int    `json:"category"`
	Active       bool   `json:"active"`
	Purchaseable bool   `json:"purchaseable"`
	Component    bool   `json:"component"`
	Image        string `json:"image,omitempty"`
}

// Category is a node of the part category tree.
type Category struct {
	ID         int    `json:"pk"`
	Name       string `json:"name"`
	ParentID   *int   `json:"parent"`
	PathString string `json:"pathstring"`
}

// StockLocation is a node of the stock location tree.
type StockLocation struct {
	ID         int    `json:"pk"`
	Name       string `json:"name"`
	ParentID   *int   `json:"parent"`
	PathString string `json:"pathstring"`
}

// Company is an external source: a supplier, a manufacturer, or both.
type Company struct {
	ID             int    `json:"pk"`
	Name           string `json:"name"`
	IsSupplier     bool   `json:"is_supplier"`
	IsManufacturer bool   `json:"is_manufacturer"`
}

// SupplierPart binds a part to a supplier through the supplier's SKU.
type SupplierPart struct {
	ID                 int     `json:"pk,omitempty"`
	PartID             int     `json:"part"`
	SupplierID         int     `json:"supplier"`
	SKU                string  `json:"SKU"`
	Link               string  `json:"link,omitempty"`
	Available          float64 `json:"available"`
	ManufacturerPartID *int    `json:"manufacturer_part,omitempty"`
}

// SupplierPartPatch holds the fields refreshed on an already imported supplier part.
// Nil fields are left untouched.
type SupplierPartPatch struct {
	Link      *string  `json:"link,omitempty"`
	Available *float64 `json:"available,omitempty"`
}

// ManufacturerPart carries the manufacturer part number of a part.
type ManufacturerPart struct {
	ID             int    `json:"pk,omitempty"`
	PartID         int    `json:"part"`
	ManufacturerID int    `json:"manufacturer"`
	MPN            string `json:"MPN"`
}

// ParameterTemplate is an entry of the global attribute template registry.
type ParameterTemplate struct {
	ID    int    `json:"pk"`
	Name  string `json:"name"`
	Units string `json:"units,omitempty"`
}

// Parameter is one attribute value of a part.
type Parameter struct {
	ID             int                `json:"pk,omitempty"`
	PartID         int                `json:"part"`
	TemplateID     int                `json:"template"`
	Data           string             `json:"data"`
	TemplateDetail *ParameterTemplate `json:"template_detail,omitempty"`
}

// TemplateName returns the display name of the parameter's template, or "" when
// the listing did not include template details.
func (p Parameter) TemplateName() string {
	if p.TemplateDetail == nil {
		return ""
	}
	return p.TemplateDetail.Name
}

// PriceBreak is the price of a supplier part at or above a purchase quantity.
type PriceBreak struct {
	ID             int             `json:"pk,omitempty"`
	SupplierPartID int             `json:"part"`
	Quantity       float64         `json:"quantity"`
	Price          decimal.Decimal `json:"price"`
	Currency       string          `json:"price_currency"`
}

// StockItem is a quantity of a supplier part placed at a stock location.
type StockItem struct {
	ID             int     `json:"pk,omitempty"`
	PartID         int     `json:"part"`
	SupplierPartID int     `json:"supplier_part"`
	Quantity       float64 `json:"quantity"`
	LocationID     int     `json:"location"`
}

// PartFilter narrows a part listing.
type PartFilter struct {
	// Search is a free-text search; the remote side matches substrings.
	Search string
	// CategoryID limits results to a category; zero means any category.
	CategoryID int
	// Cascade includes parts of all subcategories of CategoryID.
	Cascade bool
}

// SupplierPartFilter narrows a supplier part listing.
type SupplierPartFilter struct {
	SKU string
	// SupplierID scopes the lookup to one supplier; zero means any supplier.
	SupplierID int
}
