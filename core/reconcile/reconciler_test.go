package reconcile

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"inventree-sync/core/catalog"
	"inventree-sync/core/catalog/memory"
	"inventree-sync/core/journal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	gw           *memory.Gateway
	category     catalog.Category
	supplier     catalog.Company
	manufacturer catalog.Company
}

func newFixture() *fixture {
	gw := memory.New()
	electronics := gw.AddCategory("Electronics", 0)
	housings := gw.AddCategory("Connector Housings", electronics.ID)
	return &fixture{
		gw:           gw,
		category:     housings,
		supplier:     gw.AddCompany("GES electronics"),
		manufacturer: gw.AddCompany("econ connect"),
	}
}

func (f *fixture) request(sku, name string) Request {
	return Request{
		SKU:         sku,
		Name:        name,
		Description: "Prázdné pouzdro bez kontaktů typ " + name,
		CategoryID:  f.category.ID,
		SupplierID:  f.supplier.ID,
	}
}

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) Record(ctx context.Context, e journal.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func TestReconcile_CreatesPartAndSupplierPart(t *testing.T) {
	f := newFixture()
	r := NewReconciler(f.gw, zap.NewNop())

	req := f.request("GES06614525", "BLS 01")
	req.Manufacturer = &f.manufacturer
	req.MPN = "CG1"

	res, err := r.Reconcile(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, res.PartCreated)
	assert.True(t, res.SupplierPartCreated)
	assert.Equal(t, "BLS 01", res.Part.Name)
	assert.True(t, res.Part.Active)
	assert.True(t, res.Part.Purchaseable)
	assert.True(t, res.Part.Component)
	assert.Equal(t, f.category.ID, res.Part.CategoryID)

	require.NotNil(t, res.ManufacturerPart)
	assert.Equal(t, "CG1", res.ManufacturerPart.MPN)
	require.NotNil(t, res.SupplierPart.ManufacturerPartID)
	assert.Equal(t, res.ManufacturerPart.ID, *res.SupplierPart.ManufacturerPartID)
	assert.Equal(t, res.Part.ID, res.SupplierPart.PartID)
	assert.Equal(t, f.supplier.ID, res.SupplierPart.SupplierID)
}

func TestReconcile_Idempotent(t *testing.T) {
	f := newFixture()
	r := NewReconciler(f.gw, zap.NewNop())
	ctx := context.Background()

	req := f.request("GES06614036", "BLS 02")
	req.Manufacturer = &f.manufacturer
	req.MPN = "CG2"

	first, err := r.Reconcile(ctx, req)
	require.NoError(t, err)
	mutations := f.gw.Mutations()

	second, err := r.Reconcile(ctx, req)
	require.NoError(t, err)

	assert.False(t, second.PartCreated)
	assert.False(t, second.SupplierPartCreated)
	assert.Nil(t, second.ManufacturerPart)
	assert.Equal(t, first.Part.ID, second.Part.ID)
	assert.Equal(t, first.SupplierPart.ID, second.SupplierPart.ID)
	assert.Equal(t, mutations, f.gw.Mutations())
	assert.Len(t, f.gw.ManufacturerParts(), 1)
}

func TestReconcile_DuplicateSKU(t *testing.T) {
	f := newFixture()
	part := f.gw.AddPart(catalog.Part{Name: "BLS 03", CategoryID: f.category.ID})
	f.gw.AddSupplierPart(catalog.SupplierPart{PartID: part.ID, SupplierID: f.supplier.ID, SKU: "GES06614037"})
	f.gw.AddSupplierPart(catalog.SupplierPart{PartID: part.ID, SupplierID: f.supplier.ID, SKU: "GES06614037"})

	r := NewReconciler(f.gw, zap.NewNop())
	_, err := r.Reconcile(context.Background(), f.request("GES06614037", "BLS 03"))

	require.Error(t, err)
	assert.True(t, IsAmbiguous(err))

	var amb *AmbiguousError
	require.True(t, errors.As(err, &amb))
	assert.Equal(t, "supplier part", amb.Kind)
	assert.Equal(t, 2, amb.Count)
	assert.Zero(t, f.gw.Mutations())
}

func TestReconcile_SupplierScope(t *testing.T) {
	f := newFixture()
	other := f.gw.AddCompany("TME")
	part := f.gw.AddPart(catalog.Part{Name: "BLS 04", CategoryID: f.category.ID})
	f.gw.AddSupplierPart(catalog.SupplierPart{PartID: part.ID, SupplierID: other.ID, SKU: "GES06614038"})

	r := NewReconciler(f.gw, zap.NewNop())
	res, err := r.Reconcile(context.Background(), f.request("GES06614038", "BLS 04"))
	require.NoError(t, err)

	assert.False(t, res.PartCreated)
	assert.True(t, res.SupplierPartCreated)
	assert.Equal(t, part.ID, res.Part.ID)
}

func TestReconcile_ExactNameOnly(t *testing.T) {
	f := newFixture()
	f.gw.AddPart(catalog.Part{Name: "BLS 10", CategoryID: f.category.ID})

	r := NewReconciler(f.gw, zap.NewNop())
	res, err := r.Reconcile(context.Background(), f.request("GES06614041", "BLS 1"))
	require.NoError(t, err)

	assert.True(t, res.PartCreated)
	assert.Equal(t, "BLS 1", res.Part.Name)
}

func TestReconcile_DuplicateNames(t *testing.T) {
	tests := []struct {
		name    string
		policy  AmbiguityPolicy
		wantErr bool
	}{
		{name: "fatal by default", policy: AmbiguityFatal, wantErr: true},
		{name: "first match", policy: AmbiguityFirst},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			first := f.gw.AddPart(catalog.Part{Name: "BLD 14", CategoryID: f.category.ID})
			f.gw.AddPart(catalog.Part{Name: "BLD 14", CategoryID: f.category.ID})

			req := f.request("GES06615682", "BLD 14")
			req.Ambiguity = tt.policy

			res, err := NewReconciler(f.gw, zap.NewNop()).Reconcile(context.Background(), req)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsAmbiguous(err))
				assert.Zero(t, f.gw.Mutations())
				return
			}
			require.NoError(t, err)
			assert.False(t, res.PartCreated)
			assert.Equal(t, first.ID, res.Part.ID)
		})
	}
}

func TestReconcile_Validation(t *testing.T) {
	f := newFixture()
	r := NewReconciler(f.gw, zap.NewNop())

	_, err := r.Reconcile(context.Background(), f.request("GES1", ""))
	assert.Error(t, err)
	assert.Zero(t, f.gw.Mutations())
}

func TestReconcile_EmptySKU(t *testing.T) {
	f := newFixture()
	existing := f.gw.AddPart(catalog.Part{Name: "BLS 04", CategoryID: f.category.ID})
	r := NewReconciler(f.gw, zap.NewNop())
	ctx := context.Background()

	res, err := r.Reconcile(ctx, f.request("", "BLS 05"))
	require.NoError(t, err)
	assert.True(t, res.PartCreated)
	assert.Equal(t, "BLS 05", res.Part.Name)
	assert.Nil(t, res.SupplierPart)

	res, err = r.Reconcile(ctx, f.request("", "BLS 04"))
	require.NoError(t, err)
	assert.False(t, res.PartCreated)
	assert.Equal(t, existing.ID, res.Part.ID)

	assert.Empty(t, f.gw.SupplierParts())
	assert.Len(t, f.gw.Parts(), 2)
}

func TestReconcile_Records(t *testing.T) {
	f := newFixture()
	rec := &mockRecorder{}
	rec.On("Record", mock.Anything, mock.MatchedBy(func(e journal.Entry) bool {
		return e.SKU == "GES06614039" && e.PartCreated && e.SupplierPartCreated
	})).Return(nil).Once()
	rec.On("Record", mock.Anything, mock.MatchedBy(func(e journal.Entry) bool {
		return e.SKU == "GES06614039" && !e.PartCreated && !e.SupplierPartCreated
	})).Return(fmt.Errorf("journal down")).Once()

	r := NewReconciler(f.gw, zap.NewNop(), WithRecorder(rec))
	ctx := context.Background()

	_, err := r.Reconcile(ctx, f.request("GES06614039", "BLS 06"))
	require.NoError(t, err)

	// journal failures do not fail the reconciliation
	_, err = r.Reconcile(ctx, f.request("GES06614039", "BLS 06"))
	require.NoError(t, err)

	rec.AssertExpectations(t)
}

func TestUpdateSupplierPart(t *testing.T) {
	f := newFixture()
	r := NewReconciler(f.gw, zap.NewNop())
	ctx := context.Background()

	res, err := r.Reconcile(ctx, f.request("original-prusa-nozzle", "Nozzle 0.4"))
	require.NoError(t, err)

	available := 12.0
	updated, err := r.UpdateSupplierPart(ctx, res.SupplierPart, "https://www.prusa3d.com/product/nozzle/", &available)
	require.NoError(t, err)
	assert.Equal(t, "https://www.prusa3d.com/product/nozzle/", updated.Link)
	assert.Equal(t, 12.0, updated.Available)
}
