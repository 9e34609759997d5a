// Package catalog defines the data model of the remote inventory catalog and the
// gateway interfaces used to reach it.
//
// Records are plain structs. Relations are ids (a SupplierPart carries PartID and
// SupplierID, never an embedded Part), and every related record is fetched with an
// explicit gateway call, so no network traffic hides behind field access.
//
// # Gateways
//
// The Gateway interface is composed of small per-family repositories
// (PartRepository, CompanyRepository, ParameterRepository, PricingRepository,
// StockRepository). Components accept the narrowest one they need.
//
// Implementations:
//   - core/inventree: the REST client used in production.
//   - core/catalog/memory: an in-memory catalog used by tests.
package catalog
