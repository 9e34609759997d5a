package connectors

import (
	"context"
	"errors"
	"testing"

	"inventree-sync/core/catalog"
	"inventree-sync/core/catalog/memory"
	"inventree-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(categoryID int) Config {
	return Config{
		Supplier:     "GES electronics",
		Manufacturer: "econ connect",
		CategoryID:   categoryID,
		CategoryPath: "Electronics/Connectors/Connector Housings",
	}
}

// seed builds the housing category and both companies.
func seed() (*memory.Gateway, catalog.Category) {
	gw := memory.New()
	e := gw.AddCategory("Electronics", 0)
	c := gw.AddCategory("Connectors", e.ID)
	h := gw.AddCategory("Connector Housings", c.ID)
	gw.AddCompany("GES electronics")
	gw.AddCompany("econ connect")
	return gw, h
}

func TestDefaultHousings(t *testing.T) {
	housings := DefaultHousings()
	require.Len(t, housings, 13)

	assert.Equal(t, Housing{Name: "BLS 01", SKU: "GES06614525", MPN: "CG1", Description: "Prázdné pouzdro bez kontaktů typ BLS 1PIN", Contacts: 1, Rows: 1}, housings[0])
	assert.Equal(t, "GES06614037", housings[1].SKU)
	assert.Equal(t, "BLS 10", housings[8].Name)
	assert.Equal(t, "GES06614044", housings[8].SKU)
	assert.Equal(t, "GES06614046", housings[10].SKU)
	assert.Equal(t, Housing{Name: "BLD 16", SKU: "GES06615683", MPN: "CGD16", Contacts: 16, Rows: 2}, housings[12])

	seen := map[string]bool{}
	for _, h := range housings {
		assert.False(t, seen[h.SKU], h.SKU)
		seen[h.SKU] = true
	}
}

func TestRun(t *testing.T) {
	gw, cat := seed()
	ctx := context.Background()
	housings := DefaultHousings()[:2]

	// the in-memory catalog does not add category parameters to new parts
	for _, h := range housings {
		p := gw.AddPart(catalog.Part{Name: h.Name, CategoryID: cat.ID})
		gw.AddParameter(p.ID, "Number of Contacts", "")
		gw.AddParameter(p.ID, "Number of Rows", "")
	}

	svc := NewService(gw, reconcile.NewReconciler(gw, zap.NewNop()), testConfig(cat.ID), zap.NewNop())
	results, err := svc.Run(ctx, housings)
	require.NoError(t, err)
	require.Len(t, results, 2)

	for i, res := range results {
		assert.False(t, res.PartCreated)
		assert.True(t, res.SupplierPartCreated)
		require.NotNil(t, res.ManufacturerPart)
		assert.Equal(t, housings[i].MPN, res.ManufacturerPart.MPN)

		params, err := gw.ListParameters(ctx, res.Part.ID)
		require.NoError(t, err)
		values := map[string]string{}
		for _, p := range params {
			values[p.TemplateName()] = p.Data
		}
		assert.Equal(t, "1", values["Number of Rows"])
	}

	// second run reuses everything
	again, err := svc.Run(ctx, housings)
	require.NoError(t, err)
	for i := range again {
		assert.False(t, again[i].SupplierPartCreated)
		assert.Equal(t, results[i].SupplierPart.ID, again[i].SupplierPart.ID)
	}
	assert.Len(t, gw.ManufacturerParts(), 2)
}

func TestRun_MissingParameter(t *testing.T) {
	gw, cat := seed()
	svc := NewService(gw, reconcile.NewReconciler(gw, zap.NewNop()), testConfig(cat.ID), zap.NewNop())

	_, err := svc.Run(context.Background(), DefaultHousings()[:1])
	var missing *reconcile.MissingParameterError
	assert.True(t, errors.As(err, &missing))
}

func TestRun_WrongCategory(t *testing.T) {
	gw, cat := seed()
	cfg := testConfig(cat.ID)
	cfg.CategoryPath = "Electronics/Connectors/Rectangular"

	_, err := NewService(gw, reconcile.NewReconciler(gw, zap.NewNop()), cfg, zap.NewNop()).Run(context.Background(), DefaultHousings())
	var cfgErr *reconcile.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Zero(t, gw.Mutations())
}

func TestRun_DuplicateName(t *testing.T) {
	gw, cat := seed()
	gw.AddPart(catalog.Part{Name: "BLS 01", CategoryID: cat.ID})
	gw.AddPart(catalog.Part{Name: "BLS 01", CategoryID: cat.ID})

	svc := NewService(gw, reconcile.NewReconciler(gw, zap.NewNop()), testConfig(cat.ID), zap.NewNop())
	_, err := svc.Run(context.Background(), DefaultHousings()[:1])
	assert.True(t, reconcile.IsAmbiguous(err))
}
