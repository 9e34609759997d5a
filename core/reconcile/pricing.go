package reconcile

import (
	"context"
	"fmt"

	"inventree-sync/core/catalog"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Updater maintains the single price break and the stock of supplier parts.
type Updater struct {
	gw     UpdaterGateway
	logger *zap.Logger
}

// UpdaterGateway is the part of the catalog the Updater writes to.
type UpdaterGateway interface {
	catalog.PricingRepository
	catalog.StockRepository
}

// NewUpdater creates an Updater.
func NewUpdater(gw UpdaterGateway, logger *zap.Logger) *Updater {
	return &Updater{gw: gw, logger: logger}
}

// SetPrice makes price the quantity 1 price of the supplier part. The first
// existing price break is overwritten; further tiers are left alone.
func (u *Updater) SetPrice(ctx context.Context, supplierPartID int, price decimal.Decimal, currency string) (*catalog.PriceBreak, error) {
	if price.IsNegative() {
		return nil, fmt.Errorf("price %s must not be negative", price)
	}

	breaks, err := u.gw.ListPriceBreaks(ctx, supplierPartID)
	if err != nil {
		return nil, fmt.Errorf("failed to list price breaks of supplier part %d: %w", supplierPartID, err)
	}

	pb := catalog.PriceBreak{
		SupplierPartID: supplierPartID,
		Quantity:       1,
		Price:          price,
		Currency:       currency,
	}

	if len(breaks) > 0 {
		if len(breaks) > 1 {
			u.logger.Warn("Supplier part has several price breaks, updating the first",
				zap.Int("supplier_part_id", supplierPartID),
				zap.Int("price_breaks", len(breaks)))
		}
		updated, err := u.gw.UpdatePriceBreak(ctx, breaks[0].ID, pb)
		if err != nil {
			return nil, fmt.Errorf("failed to update price break %d: %w", breaks[0].ID, err)
		}
		u.logger.Info("Price updated",
			zap.Int("supplier_part_id", supplierPartID),
			zap.String("old", breaks[0].Price.String()),
			zap.String("price", price.String()),
			zap.String("currency", currency))
		return updated, nil
	}

	created, err := u.gw.CreatePriceBreak(ctx, pb)
	if err != nil {
		return nil, fmt.Errorf("failed to create price break for supplier part %d: %w", supplierPartID, err)
	}
	u.logger.Info("Price created",
		zap.Int("supplier_part_id", supplierPartID),
		zap.String("price", price.String()),
		zap.String("currency", currency))
	return created, nil
}
