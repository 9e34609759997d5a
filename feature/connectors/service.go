package connectors

import (
	"context"
	"fmt"
	"strconv"

	"inventree-sync/core/catalog"
	"inventree-sync/core/reconcile"

	"go.uber.org/zap"
)

// Service imports connector housings.
type Service struct {
	gw     catalog.Gateway
	rec    *reconcile.Reconciler
	attrs  *reconcile.AttributeWriter
	cfg    Config
	logger *zap.Logger
}

// NewService creates a new connector housing service.
func NewService(gw catalog.Gateway, rec *reconcile.Reconciler, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		gw:     gw,
		rec:    rec,
		attrs:  reconcile.NewAttributeWriter(gw, logger),
		cfg:    cfg,
		logger: logger,
	}
}

// Run reconciles every housing and writes its contact and row counts.
// The first failing housing stops the run.
func (s *Service) Run(ctx context.Context, housings []Housing) ([]*reconcile.Result, error) {
	policy, err := reconcile.ParseAmbiguityPolicy(s.cfg.Ambiguity)
	if err != nil {
		return nil, err
	}
	if _, err := reconcile.ValidateCategory(ctx, s.gw, s.cfg.CategoryID, s.cfg.CategoryPath); err != nil {
		return nil, err
	}
	supplier, err := reconcile.ResolveCompany(ctx, s.gw, s.cfg.Supplier)
	if err != nil {
		return nil, fmt.Errorf("supplier: %w", err)
	}
	manufacturer, err := reconcile.ResolveCompany(ctx, s.gw, s.cfg.Manufacturer)
	if err != nil {
		return nil, fmt.Errorf("manufacturer: %w", err)
	}

	results := make([]*reconcile.Result, 0, len(housings))
	for _, h := range housings {
		s.logger.Info("Importing housing", zap.String("name", h.Name), zap.String("sku", h.SKU))

		res, err := s.rec.Reconcile(ctx, reconcile.Request{
			SKU:          h.SKU,
			Name:         h.Name,
			Description:  h.Description,
			CategoryID:   s.cfg.CategoryID,
			SupplierID:   supplier.ID,
			Manufacturer: manufacturer,
			MPN:          h.MPN,
			Ambiguity:    policy,
		})
		if err != nil {
			return results, fmt.Errorf("housing %s: %w", h.Name, err)
		}

		err = s.attrs.UpdateOnly(ctx, res.Part.ID, []reconcile.Attribute{
			{Name: "Number of Contacts", Value: strconv.Itoa(h.Contacts)},
			{Name: "Number of Rows", Value: strconv.Itoa(h.Rows)},
		})
		if err != nil {
			return results, fmt.Errorf("housing %s: %w", h.Name, err)
		}
		results = append(results, res)
	}
	return results, nil
}
