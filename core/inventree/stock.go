package inventree

import (
	"context"
	"net/url"
	"strconv"

	"inventree-sync/core/catalog"
)

const (
	priceBreaksPath    = "/api/company/price-break/"
	stockPath          = "/api/stock/"
	stockLocationsPath = "/api/stock/location/"
)

func (c *Client) ListPriceBreaks(ctx context.Context, supplierPartID int) ([]catalog.PriceBreak, error) {
	q := url.Values{}
	q.Set("part", strconv.Itoa(supplierPartID))
	return list[catalog.PriceBreak](ctx, c, priceBreaksPath, q)
}

func (c *Client) CreatePriceBreak(ctx context.Context, pb catalog.PriceBreak) (*catalog.PriceBreak, error) {
	pb.ID = 0
	return post[catalog.PriceBreak](ctx, c, priceBreaksPath, pb)
}

func (c *Client) UpdatePriceBreak(ctx context.Context, id int, pb catalog.PriceBreak) (*catalog.PriceBreak, error) {
	pb.ID = 0
	return patch[catalog.PriceBreak](ctx, c, idPath(priceBreaksPath, id), pb)
}

func (c *Client) GetStockLocation(ctx context.Context, id int) (*catalog.StockLocation, error) {
	return get[catalog.StockLocation](ctx, c, idPath(stockLocationsPath, id))
}

func (c *Client) CreateStockItem(ctx context.Context, item catalog.StockItem) (*catalog.StockItem, error) {
	item.ID = 0
	return post[catalog.StockItem](ctx, c, stockPath, item)
}
