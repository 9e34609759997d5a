package catalog

import "context"

// PartRepository covers parts and the category tree.
type PartRepository interface {
	ListParts(ctx context.Context, filter PartFilter) ([]Part, error)
	GetPart(ctx context.Context, id int) (*Part, error)
	CreatePart(ctx context.Context, part Part) (*Part, error)
	UploadPartImage(ctx context.Context, partID int, filename string, data []byte) error
	GetCategory(ctx context.Context, id int) (*Category, error)
	ListCategories(ctx context.Context, search string) ([]Category, error)
}

// CompanyRepository covers companies and the supplier/manufacturer links of parts.
type CompanyRepository interface {
	ListCompanies(ctx context.Context, name string) ([]Company, error)
	ListSupplierParts(ctx context.Context, filter SupplierPartFilter) ([]SupplierPart, error)
	CreateSupplierPart(ctx context.Context, sp SupplierPart) (*SupplierPart, error)
	UpdateSupplierPart(ctx context.Context, id int, patch SupplierPartPatch) (*SupplierPart, error)
	CreateManufacturerPart(ctx context.Context, mp ManufacturerPart) (*ManufacturerPart, error)
}

// ParameterRepository covers part parameters and the template registry.
type ParameterRepository interface {
	ListParameters(ctx context.Context, partID int) ([]Parameter, error)
	CreateParameter(ctx context.Context, p Parameter) (*Parameter, error)
	UpdateParameter(ctx context.Context, id int, data string) (*Parameter, error)
	ListParameterTemplates(ctx context.Context) ([]ParameterTemplate, error)
}

// PricingRepository covers supplier price breaks.
type PricingRepository interface {
	ListPriceBreaks(ctx context.Context, supplierPartID int) ([]PriceBreak, error)
	CreatePriceBreak(ctx context.Context, pb PriceBreak) (*PriceBreak, error)
	UpdatePriceBreak(ctx context.Context, id int, pb PriceBreak) (*PriceBreak, error)
}

// StockRepository covers stock items and locations.
type StockRepository interface {
	GetStockLocation(ctx context.Context, id int) (*StockLocation, error)
	CreateStockItem(ctx context.Context, item StockItem) (*StockItem, error)
}

// Gateway is the complete remote catalog surface used by the synchronization commands.
type Gateway interface {
	PartRepository
	CompanyRepository
	ParameterRepository
	PricingRepository
	StockRepository
}
