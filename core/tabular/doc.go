// Package tabular converts purchase order exports into the two column
// SKU/quantity format accepted by the TME order import.
//
// Input is a headered CSV (or the first sheet of an XLSX workbook) with "SKU"
// and "quantity" columns. Quantities are exported as floats ("5.0") and are
// truncated to whole numbers. Output has no header.
package tabular
