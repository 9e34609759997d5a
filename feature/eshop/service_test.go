package eshop

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"inventree-sync/core/catalog"
	"inventree-sync/core/catalog/memory"
	"inventree-sync/core/eshop"
	"inventree-sync/core/images"
	"inventree-sync/core/reconcile"
	"inventree-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	czURL    = "https://www.prusa3d.com/cs/produkt/tryska-mosazna-0-4mm/"
	enURL    = "https://www.prusa3d.com/product/nozzle-brass-0-4mm/"
	imageURL = "https://www.prusa3d.com/content/images/product/nozzle.jpg"
)

type response struct {
	status      int
	body        []byte
	contentType string
}

// routes serves canned responses by URL and counts requests.
type routes struct {
	pages    map[string]response
	requests map[string]int
}

func (r *routes) Do(req *http.Request) (*http.Response, error) {
	u := req.URL.String()
	r.requests[u]++
	resp, ok := r.pages[u]
	if !ok {
		resp = response{status: http.StatusNotFound}
	}
	h := http.Header{}
	h.Set("Content-Type", resp.contentType)
	return &http.Response{StatusCode: resp.status, Header: h, Body: io.NopCloser(strings.NewReader(string(resp.body)))}, nil
}

func productPage(t *testing.T, price string, stock int, brand any) []byte {
	t.Helper()
	product := map[string]any{
		"nameWithReplacedPlaceholders": "Nozzle Brass 0.4mm",
		"slug":                         "product/nozzle-brass-0-4mm/",
		"shortDescription":             "<p>Original Prusa nozzle</p>",
		"uuid":                         "6f1b6c1e-6a8e-4b0e-9f0a-2d3c1b2a1f00",
		"stockQuantity":                stock,
		"breadcrumbs": []map[string]any{
			{"__typename": "Category", "name": "Nozzles"},
			{"__typename": "Category", "name": "Accessories"},
		},
		"urlList": []map[string]any{
			{"locale": "cs", "url": czURL},
			{"locale": "en", "url": enURL},
		},
		"price":  map[string]any{"priceWithoutVat": price},
		"brand":  brand,
		"images": []map[string]any{{"__typename": "Image", "url": "/content/images/product/nozzle.jpg"}},
	}
	inner, err := json.Marshal(map[string]any{"product": product})
	require.NoError(t, err)
	nd, err := json.Marshal(map[string]any{"props": map[string]any{"pageProps": map[string]any{
		"urqlState": map[string]any{"k": map[string]any{"hasNext": false, "data": string(inner)}},
	}}})
	require.NoError(t, err)
	return []byte(fmt.Sprintf(`<html><body><script id="__NEXT_DATA__" type="application/json">%s</script></body></html>`, nd))
}

type fixture struct {
	gw       *memory.Gateway
	web      *routes
	supplier catalog.Company
	nozzles  catalog.Category
}

func newFixture(t *testing.T, price string, stock int, brand any) *fixture {
	gw := memory.New()
	acc := gw.AddCategory("3D Printer Accessories", 0)
	nozzles := gw.AddCategory("Nozzles", acc.ID)
	supplier := gw.AddCompany("Prusa Research")

	page := response{status: 200, body: productPage(t, price, stock, brand), contentType: "text/html"}
	web := &routes{
		pages: map[string]response{
			czURL:    page,
			enURL:    page,
			imageURL: {status: 200, body: []byte("jpeg-bytes"), contentType: "image/jpeg"},
		},
		requests: map[string]int{},
	}
	return &fixture{gw: gw, web: web, supplier: supplier, nozzles: nozzles}
}

func (f *fixture) service(archive *images.Archive) *Service {
	logger := zap.NewNop()
	return NewService(
		f.gw,
		reconcile.NewReconciler(f.gw, logger),
		eshop.NewFetcher(f.web, "CZK", logger),
		images.NewDownloader(f.web),
		archive,
		Config{Supplier: "Prusa Research", Currency: "CZK"},
		logger,
	)
}

func TestImport_NewProduct(t *testing.T) {
	f := newFixture(t, "123.97", 25, map[string]any{"name": "Prusa Research"})

	store := new(mocks.Client)
	store.On("BucketExists", mock.Anything, "images").Return(true, nil)
	store.On("PutObject", mock.Anything, "images", "eshop/nozzle-brass-0-4mm.jpg", mock.Anything, int64(10), mock.Anything).
		Return(minio.UploadInfo{}, nil)
	archive := images.NewArchive(store, "images", "eshop", zap.NewNop())

	res, err := f.service(archive).Import(context.Background(), czURL)
	require.NoError(t, err)
	store.AssertExpectations(t)

	assert.True(t, res.PartCreated)
	assert.True(t, res.SupplierPartCreated)
	assert.Equal(t, f.nozzles.ID, res.Part.CategoryID)
	assert.Equal(t, "Original Prusa nozzle", res.Part.Description)
	assert.Equal(t, "nozzle-brass-0-4mm", res.SupplierPart.SKU)
	assert.Equal(t, enURL, res.SupplierPart.Link)
	assert.Equal(t, 25.0, res.SupplierPart.Available)
	require.NotNil(t, res.ManufacturerPart)
	assert.Equal(t, "nozzle-brass-0-4mm", res.ManufacturerPart.MPN)

	name, ok := f.gw.Image(res.Part.ID)
	require.True(t, ok)
	assert.Equal(t, "nozzle-brass-0-4mm.jpg", name)

	breaks := f.gw.PriceBreaks(res.SupplierPart.ID)
	require.Len(t, breaks, 1)
	assert.True(t, decimal.RequireFromString("123.97").Equal(breaks[0].Price))
	assert.Equal(t, "CZK", breaks[0].Currency)
	assert.Equal(t, 1.0, breaks[0].Quantity)
}

func TestImport_ExistingSupplierPart(t *testing.T) {
	f := newFixture(t, "99.00", 3, nil)
	part := f.gw.AddPart(catalog.Part{Name: "Nozzle Brass 0.4mm", CategoryID: f.nozzles.ID})
	sp := f.gw.AddSupplierPart(catalog.SupplierPart{PartID: part.ID, SupplierID: f.supplier.ID, SKU: "nozzle-brass-0-4mm", Available: 40})

	svc := f.service(nil)
	_, err := svc.Import(context.Background(), enURL)
	require.NoError(t, err)
	res, err := svc.Import(context.Background(), enURL)
	require.NoError(t, err)

	assert.False(t, res.PartCreated)
	assert.False(t, res.SupplierPartCreated)
	assert.Equal(t, sp.ID, res.SupplierPart.ID)
	assert.Equal(t, 3.0, res.SupplierPart.Available)
	assert.Equal(t, enURL, res.SupplierPart.Link)

	_, hasImage := f.gw.Image(part.ID)
	assert.False(t, hasImage)
	assert.Zero(t, f.web.requests[imageURL])
	// English pages are fetched once per import
	assert.Equal(t, 2, f.web.requests[enURL])

	breaks := f.gw.PriceBreaks(sp.ID)
	require.Len(t, breaks, 1)
	assert.True(t, decimal.RequireFromString("99").Equal(breaks[0].Price))
	assert.Len(t, f.gw.Parts(), 1)
}

func TestImport_UnknownBrand(t *testing.T) {
	f := newFixture(t, "10", 1, map[string]any{"name": "E3D"})

	res, err := f.service(nil).Import(context.Background(), enURL)
	require.NoError(t, err)
	assert.Nil(t, res.ManufacturerPart)
	assert.Empty(t, f.gw.ManufacturerParts())
}

func TestImport_Errors(t *testing.T) {
	t.Run("invalid url", func(t *testing.T) {
		f := newFixture(t, "10", 1, nil)
		_, err := f.service(nil).Import(context.Background(), "prusa3d.com/product/x")
		assert.ErrorIs(t, err, eshop.ErrInvalidURL)
	})

	t.Run("category missing in catalog", func(t *testing.T) {
		f := newFixture(t, "10", 1, nil)
		f.gw = memory.New()
		f.gw.AddCompany("Prusa Research")

		_, err := f.service(nil).Import(context.Background(), enURL)
		var cfgErr *reconcile.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Zero(t, f.gw.Mutations())
	})

	t.Run("missing supplier", func(t *testing.T) {
		f := newFixture(t, "10", 1, nil)
		f.gw = memory.New()

		_, err := f.service(nil).Import(context.Background(), enURL)
		assert.ErrorIs(t, err, reconcile.ErrNotFound)
	})

	t.Run("page not found", func(t *testing.T) {
		f := newFixture(t, "10", 1, nil)
		delete(f.web.pages, enURL)

		_, err := f.service(nil).Import(context.Background(), czURL)
		var httpErr *eshop.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	})
}
