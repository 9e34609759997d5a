package inventree

import (
	"context"
	"net/url"
	"strconv"

	"inventree-sync/core/catalog"
)

const (
	companiesPath         = "/api/company/"
	supplierPartsPath     = "/api/company/part/"
	manufacturerPartsPath = "/api/company/part/manufacturer/"
)

func (c *Client) ListCompanies(ctx context.Context, name string) ([]catalog.Company, error) {
	q := url.Values{}
	if name != "" {
		q.Set("name", name)
	}
	return list[catalog.Company](ctx, c, companiesPath, q)
}

func (c *Client) ListSupplierParts(ctx context.Context, filter catalog.SupplierPartFilter) ([]catalog.SupplierPart, error) {
	q := url.Values{}
	if filter.SKU != "" {
		q.Set("SKU", filter.SKU)
	}
	if filter.SupplierID != 0 {
		q.Set("supplier", strconv.Itoa(filter.SupplierID))
	}
	return list[catalog.SupplierPart](ctx, c, supplierPartsPath, q)
}

func (c *Client) CreateSupplierPart(ctx context.Context, sp catalog.SupplierPart) (*catalog.SupplierPart, error) {
	sp.ID = 0
	return post[catalog.SupplierPart](ctx, c, supplierPartsPath, sp)
}

func (c *Client) UpdateSupplierPart(ctx context.Context, id int, p catalog.SupplierPartPatch) (*catalog.SupplierPart, error) {
	return patch[catalog.SupplierPart](ctx, c, idPath(supplierPartsPath, id), p)
}

func (c *Client) CreateManufacturerPart(ctx context.Context, mp catalog.ManufacturerPart) (*catalog.ManufacturerPart, error) {
	mp.ID = 0
	return post[catalog.ManufacturerPart](ctx, c, manufacturerPartsPath, mp)
}
