// Package utils provides common utility functions for inventree-sync.
// It includes number normalization for comma-decimal vendor data, quantity
// parsing for spreadsheet exports, and the shared HTTP transport used by the
// remote catalog client and the e-shop fetcher.
package utils
