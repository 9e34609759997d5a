package reconcile

import (
	"context"
	"fmt"
	"time"

	"inventree-sync/core/catalog"
	"inventree-sync/core/journal"

	"go.uber.org/zap"
)

// Reconciler finds or creates parts and their supplier links.
type Reconciler struct {
	gw       catalog.Gateway
	logger   *zap.Logger
	recorder journal.Recorder
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithRecorder journals every reconciled record.
func WithRecorder(rec journal.Recorder) Option {
	return func(r *Reconciler) {
		if rec != nil {
			r.recorder = rec
		}
	}
}

// NewReconciler creates a Reconciler on top of a catalog gateway.
func NewReconciler(gw catalog.Gateway, logger *zap.Logger, opts ...Option) *Reconciler {
	r := &Reconciler{gw: gw, logger: logger, recorder: journal.Nop{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile returns the part and supplier part for req, creating whatever is missing.
//
// An existing supplier part with req.SKU is returned as-is together with its
// part. Otherwise the part is looked up by exact name inside req.CategoryID and
// created when absent, and a supplier part (preceded by a manufacturer part when
// req.Manufacturer is set) is created for it. An empty SKU skips the supplier
// part lookup and resolves the part only; Result.SupplierPart is then nil.
func (r *Reconciler) Reconcile(ctx context.Context, req Request) (*Result, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("part name is required")
	}

	var sp *catalog.SupplierPart
	if req.SKU != "" {
		var err error
		if sp, err = r.FindSupplierPart(ctx, req.SupplierID, req.SKU); err != nil {
			return nil, err
		}
	}
	if sp != nil {
		part, err := r.gw.GetPart(ctx, sp.PartID)
		if err != nil {
			return nil, fmt.Errorf("failed to load part of supplier part %s: %w", req.SKU, err)
		}
		r.logger.Info("Supplier part already exists",
			zap.String("sku", req.SKU),
			zap.Int("supplier_part_id", sp.ID),
			zap.Int("part_id", part.ID))

		result := &Result{Part: part, SupplierPart: sp}
		r.record(ctx, req.SKU, result)
		return result, nil
	}

	part, created, err := r.resolvePart(ctx, req)
	if err != nil {
		return nil, err
	}
	result := &Result{Part: part, PartCreated: created}
	if req.SKU == "" {
		r.logger.Info("No SKU, part resolved without a supplier link", zap.String("name", req.Name), zap.Int("part_id", part.ID))
		r.record(ctx, req.SKU, result)
		return result, nil
	}

	link := catalog.SupplierPart{
		PartID:     part.ID,
		SupplierID: req.SupplierID,
		SKU:        req.SKU,
		Link:       req.Link,
	}
	if req.Available != nil {
		link.Available = *req.Available
	}

	if req.Manufacturer != nil {
		mp, err := r.gw.CreateManufacturerPart(ctx, catalog.ManufacturerPart{
			PartID:         part.ID,
			ManufacturerID: req.Manufacturer.ID,
			MPN:            req.MPN,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create manufacturer part %s: %w", req.MPN, err)
		}
		r.logger.Info("Manufacturer part created",
			zap.String("mpn", mp.MPN),
			zap.String("manufacturer", req.Manufacturer.Name),
			zap.Int("manufacturer_part_id", mp.ID))
		result.ManufacturerPart = mp
		link.ManufacturerPartID = &mp.ID
	}

	createdSP, err := r.gw.CreateSupplierPart(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("failed to create supplier part %s: %w", req.SKU, err)
	}
	r.logger.Info("Supplier part created",
		zap.String("sku", req.SKU),
		zap.Int("supplier_part_id", createdSP.ID),
		zap.Int("part_id", part.ID))

	result.SupplierPart = createdSP
	result.SupplierPartCreated = true
	r.record(ctx, req.SKU, result)
	return result, nil
}

// FindSupplierPart returns the supplier part with sku, or nil when there is none.
// A zero supplierID searches across all suppliers.
func (r *Reconciler) FindSupplierPart(ctx context.Context, supplierID int, sku string) (*catalog.SupplierPart, error) {
	sps, err := r.gw.ListSupplierParts(ctx, catalog.SupplierPartFilter{SKU: sku, SupplierID: supplierID})
	if err != nil {
		return nil, fmt.Errorf("failed to look up supplier part %s: %w", sku, err)
	}

	// The remote filter is exact, but keep the check local as well.
	var matches []catalog.SupplierPart
	for _, sp := range sps {
		if sp.SKU == sku && (supplierID == 0 || sp.SupplierID == supplierID) {
			matches = append(matches, sp)
		}
	}

	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return &matches[0], nil
	default:
		return nil, &AmbiguousError{Kind: "supplier part", Key: sku, Count: len(matches)}
	}
}

// UpdateSupplierPart refreshes the link and availability of an existing supplier part.
func (r *Reconciler) UpdateSupplierPart(ctx context.Context, sp *catalog.SupplierPart, link string, available *float64) (*catalog.SupplierPart, error) {
	patch := catalog.SupplierPartPatch{Available: available}
	if link != "" {
		patch.Link = &link
	}
	updated, err := r.gw.UpdateSupplierPart(ctx, sp.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update supplier part %s: %w", sp.SKU, err)
	}
	r.logger.Debug("Supplier part updated", zap.String("sku", sp.SKU), zap.Int("supplier_part_id", sp.ID))
	return updated, nil
}

func (r *Reconciler) resolvePart(ctx context.Context, req Request) (*catalog.Part, bool, error) {
	candidates, err := r.gw.ListParts(ctx, catalog.PartFilter{
		Search:     req.Name,
		CategoryID: req.CategoryID,
		Cascade:    true,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to search parts named %q: %w", req.Name, err)
	}

	// Search is a substring match; only exact names count.
	var exact []catalog.Part
	for _, p := range candidates {
		if p.Name == req.Name {
			exact = append(exact, p)
		}
	}

	switch {
	case len(exact) == 1:
		r.logger.Info("Reusing existing part", zap.String("name", req.Name), zap.Int("part_id", exact[0].ID))
		return &exact[0], false, nil
	case len(exact) > 1:
		if req.Ambiguity != AmbiguityFirst {
			return nil, false, &AmbiguousError{Kind: "part", Key: req.Name, Count: len(exact)}
		}
		r.logger.Warn("Several parts share the name, using the first",
			zap.String("name", req.Name),
			zap.Int("matches", len(exact)),
			zap.Int("part_id", exact[0].ID))
		return &exact[0], false, nil
	}

	part, err := r.gw.CreatePart(ctx, catalog.Part{
		Name:         req.Name,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		Active:       true,
		Purchaseable: true,
		Component:    true,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to create part %q: %w", req.Name, err)
	}
	r.logger.Info("Part created", zap.String("name", part.Name), zap.Int("part_id", part.ID))
	return part, true, nil
}

func (r *Reconciler) record(ctx context.Context, sku string, res *Result) {
	var supplierPartID int
	if res.SupplierPart != nil {
		supplierPartID = res.SupplierPart.ID
	}
	err := r.recorder.Record(ctx, journal.Entry{
		SKU:                 sku,
		PartID:              res.Part.ID,
		SupplierPartID:      supplierPartID,
		PartCreated:         res.PartCreated,
		SupplierPartCreated: res.SupplierPartCreated,
		CreatedAt:           time.Now(),
	})
	if err != nil {
		r.logger.Warn("Failed to journal reconciled record", zap.String("sku", sku), zap.Error(err))
	}
}
