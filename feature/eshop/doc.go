// Package eshop imports products from the Prusa Research e-shop.
//
// # Components
//
// Service.Import takes a product page in any language, resolves the English
// page, parses the embedded product payload and reconciles the product
// against the shop supplier. The shop breadcrumbs pick the category of new
// parts, new parts get the product image (optionally archived in object
// storage), and the quantity 1 price and availability are refreshed on every
// import.
package eshop
