package reconcile

import (
	"context"
	"fmt"

	"inventree-sync/core/catalog"

	"go.uber.org/zap"
)

// AddStock places quantity units of the supplier part at a location.
// Every call creates a new stock item; quantity 0 does nothing and returns nil.
func (u *Updater) AddStock(ctx context.Context, sp *catalog.SupplierPart, quantity int, locationID int) (*catalog.StockItem, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("stock of %s: %d: %w", sp.SKU, quantity, ErrNegativeQuantity)
	}
	if quantity == 0 {
		u.logger.Info("Zero quantity, no stock added", zap.String("sku", sp.SKU))
		return nil, nil
	}

	item, err := u.gw.CreateStockItem(ctx, catalog.StockItem{
		PartID:         sp.PartID,
		SupplierPartID: sp.ID,
		Quantity:       float64(quantity),
		LocationID:     locationID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add stock of %s: %w", sp.SKU, err)
	}
	u.logger.Info("Stock added",
		zap.String("sku", sp.SKU),
		zap.Int("quantity", quantity),
		zap.Int("location_id", locationID),
		zap.Int("stock_item_id", item.ID))
	return item, nil
}
