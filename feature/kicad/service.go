package kicad

import (
	"context"
	"fmt"

	"inventree-sync/core/catalog"
	"inventree-sync/core/parser"
	"inventree-sync/core/reconcile"

	"go.uber.org/zap"
)

const (
	symbolParameter    = "KiCad Symbol"
	footprintParameter = "KiCad Footprint"
)

// Summary counts the outcome of a refresh.
type Summary struct {
	Updated int
	Skipped int
}

// Service links pin header parts to their KiCad library entries.
type Service struct {
	gw     catalog.Gateway
	attrs  *reconcile.AttributeWriter
	rules  parser.RuleSet
	cfg    Config
	logger *zap.Logger
}

// NewService creates a new KiCad link service.
func NewService(gw catalog.Gateway, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		gw:     gw,
		attrs:  reconcile.NewAttributeWriter(gw, logger),
		rules:  parser.PinHeaderRules(),
		cfg:    cfg,
		logger: logger,
	}
}

// Symbol returns the KiCad symbol of a single row header with pins contacts.
func Symbol(pins int) string {
	return fmt.Sprintf("Connector:Conn_01x%02d_Pin", pins)
}

// Footprint returns the Molex KK 254 footprint of a header. variant is
// Vertical or Horizontal.
func Footprint(pins int, variant string) string {
	return fmt.Sprintf("Connector_Molex:Molex_KK-254_AE-6410-%02dA_1x%02d_P2.54mm_%s", pins, pins, variant)
}

// Run sets the symbol and footprint parameters of every matching part,
// creating them when the part has none yet.
func (s *Service) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	if _, err := reconcile.ValidateCategory(ctx, s.gw, s.cfg.CategoryID, s.cfg.CategoryPath); err != nil {
		return summary, err
	}
	parts, err := s.gw.ListParts(ctx, catalog.PartFilter{
		Search:     s.cfg.Search,
		CategoryID: s.cfg.CategoryID,
		Cascade:    true,
	})
	if err != nil {
		return summary, fmt.Errorf("failed to list pin headers: %w", err)
	}

	for _, part := range parts {
		res := s.rules.Parse(part.Name)
		if !res.Matched {
			s.logger.Warn("Unrecognized pin header name, skipping", zap.Int("part_id", part.ID), zap.String("name", part.Name))
			summary.Skipped++
			continue
		}
		pins, _ := res.Get("pin_count")

		err := s.attrs.Upsert(ctx, part.ID, []reconcile.Attribute{
			{Name: symbolParameter, Value: Symbol(int(pins.Int))},
			{Name: footprintParameter, Value: Footprint(int(pins.Int), res.Text("variant"))},
		})
		if err != nil {
			return summary, fmt.Errorf("pin header %q: %w", part.Name, err)
		}
		summary.Updated++
	}
	return summary, nil
}
