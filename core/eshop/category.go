package eshop

import (
	"fmt"
	"strings"
)

// CategoryMapping maps a shop breadcrumb prefix to a catalog category path.
type CategoryMapping struct {
	Shop    []string `mapstructure:"shop"`
	Catalog string   `mapstructure:"catalog"`
}

// CategoryMap resolves shop breadcrumbs to catalog category paths.
type CategoryMap []CategoryMapping

// DefaultCategoryMap is the mapping used for the Prusa Research shop.
func DefaultCategoryMap() CategoryMap {
	return CategoryMap{
		{Shop: []string{"Accessories", "Nozzles"}, Catalog: "3D Printer Accessories/Nozzles"},
		{Shop: []string{"Accessories", "Print Sheets"}, Catalog: "3D Printer Accessories/Print Sheets"},
		{Shop: []string{"Accessories", "Tools & Crafting"}, Catalog: "3D Printer Accessories"},
		{Shop: []string{"Filament"}, Catalog: "3D Printing Filament"},
		{Shop: []string{"Spare parts"}, Catalog: "3D Printer Accessories/Spare Parts"},
	}
}

// Resolve returns the catalog path of the longest mapped prefix of categories.
func (m CategoryMap) Resolve(categories []string) (string, error) {
	for n := len(categories); n > 0; n-- {
		prefix := categories[:n]
		for _, mapping := range m {
			if equal(mapping.Shop, prefix) {
				return mapping.Catalog, nil
			}
		}
	}
	return "", fmt.Errorf("no category mapping for %q", strings.Join(categories, " / "))
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
