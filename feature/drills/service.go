package drills

import (
	"context"
	"fmt"

	"inventree-sync/core/catalog"
	"inventree-sync/core/parser"
	"inventree-sync/core/reconcile"

	"go.uber.org/zap"
)

// Summary counts the outcome of a refresh.
type Summary struct {
	Updated int
	Skipped int
}

// Service writes dimensions parsed from drill bit names onto the parts.
type Service struct {
	gw     catalog.Gateway
	attrs  *reconcile.AttributeWriter
	rules  parser.RuleSet
	cfg    Config
	logger *zap.Logger
}

// NewService creates a new drill bit service.
func NewService(gw catalog.Gateway, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		gw:     gw,
		attrs:  reconcile.NewAttributeWriter(gw, logger),
		rules:  parser.DrillBitRules(),
		cfg:    cfg,
		logger: logger,
	}
}

// Run refreshes every matching part. Names the rules do not recognize are
// logged and skipped.
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
		return summary, fmt.Errorf("failed to list drill bits: %w", err)
	}
	s.logger.Info("Drill bits found", zap.Int("count", len(parts)))

	for _, part := range parts {
		res := s.rules.Parse(part.Name)
		if !res.Matched {
			s.logger.Warn("Unrecognized drill bit name, skipping", zap.Int("part_id", part.ID), zap.String("name", part.Name))
			summary.Skipped++
			continue
		}

		err := s.attrs.UpdateOnly(ctx, part.ID, []reconcile.Attribute{
			{Name: "Shank Diameter", Value: res.Text("shank_diameter")},
			{Name: "Overall Length", Value: res.Text("overall_length")},
			{Name: "Tip Diameter", Value: res.Text("tip_diameter")},
		})
		if err != nil {
			return summary, fmt.Errorf("drill bit %q: %w", part.Name, err)
		}
		summary.Updated++
	}
	return summary, nil
}
