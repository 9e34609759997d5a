// Package reconcile finds or creates catalog records for external part data.
//
// # Reconciler
//
// Reconcile takes a SKU, a part name and the category/supplier to use, and
// returns the matching part and supplier part:
//
//  1. A supplier part with the SKU (scoped to the supplier) is reused together
//     with its part. Several such supplier parts fail with *AmbiguousError.
//  2. Otherwise the part is searched by name inside the category subtree and
//     filtered to exact name equality. One match is reused, none creates a new
//     active, purchaseable component part. Several matches fail unless the
//     request opts into AmbiguityFirst.
//  3. A supplier part is created, preceded by a manufacturer part when a
//     manufacturer is given.
//
// Result.PartCreated tells callers whether the part is new; attributes and
// images are only written for new parts by most commands.
//
// # Attributes
//
// AttributeWriter writes name/value pairs as part parameters. UpdateOnly
// requires the parameter to exist; Upsert creates it from the template
// registry when missing.
//
// # Pricing and stock
//
// Updater keeps one quantity 1 price break per supplier part and appends
// stock items. Stock is never merged into existing items.
//
// # Errors
//
// Ambiguous remote state is reported as *AmbiguousError and can be detected
// with IsAmbiguous. Path mismatches of configured categories and locations are
// *ConfigError and are checked before any write.
package reconcile
