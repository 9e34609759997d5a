package reconcile

import (
	"context"
	"fmt"
	"strings"

	"inventree-sync/core/catalog"
)

// ValidateCategory loads a category and checks its path. A different path
// means the remote taxonomy was reorganized and nothing must be written.
func ValidateCategory(ctx context.Context, gw catalog.PartRepository, id int, expectedPath string) (*catalog.Category, error) {
	cat, err := gw.GetCategory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load category %d: %w", id, err)
	}
	if cat.PathString != expectedPath {
		return nil, &ConfigError{
			Setting: fmt.Sprintf("category %d", id),
			Reason:  fmt.Sprintf("path is %q, expected %q", cat.PathString, expectedPath),
		}
	}
	return cat, nil
}

// ValidateLocation loads a stock location and checks its path.
func ValidateLocation(ctx context.Context, gw catalog.StockRepository, id int, expectedPath string) (*catalog.StockLocation, error) {
	loc, err := gw.GetStockLocation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock location %d: %w", id, err)
	}
	if loc.PathString != expectedPath {
		return nil, &ConfigError{
			Setting: fmt.Sprintf("stock location %d", id),
			Reason:  fmt.Sprintf("path is %q, expected %q", loc.PathString, expectedPath),
		}
	}
	return loc, nil
}

// FindCategory returns the category with the given path. The search runs on
// the last path segment and the results are filtered on the full path.
func FindCategory(ctx context.Context, gw catalog.PartRepository, path string) (*catalog.Category, error) {
	name := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		name = path[i+1:]
	}

	cats, err := gw.ListCategories(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search categories %q: %w", name, err)
	}
	for _, c := range cats {
		if c.PathString == path {
			return &c, nil
		}
	}
	return nil, &ConfigError{Setting: "category", Reason: fmt.Sprintf("%q does not exist", path)}
}

// ResolveCompany returns the company with exactly this name.
func ResolveCompany(ctx context.Context, gw catalog.CompanyRepository, name string) (*catalog.Company, error) {
	companies, err := gw.ListCompanies(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up company %q: %w", name, err)
	}

	var matches []catalog.Company
	for _, c := range companies {
		if c.Name == name {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("company %q: %w", name, ErrNotFound)
	case 1:
		return &matches[0], nil
	default:
		return nil, &AmbiguousError{Kind: "company", Key: name, Count: len(matches)}
	}
}
