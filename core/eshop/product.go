package eshop

import "github.com/shopspring/decimal"

// Product is the product data of one shop page.
type Product struct {
	Name string
	// SKU is the product slug without the "product/" prefix and trailing slash.
	SKU string
	// Description is the first text line of the short description.
	Description   string
	UUID          string
	URL           string
	StockQuantity float64
	// Categories are the breadcrumb category names, most general first.
	Categories []string
	// Price excludes VAT, in the currency requested by the fetcher.
	Price        decimal.Decimal
	Manufacturer string
	// ImageURL is the absolute URL of the first product image, or empty.
	ImageURL string
}
