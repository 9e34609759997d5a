package kicad

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

func setup() (*memory.Gateway, Config) {
	gw := memory.New()
	e := gw.AddCategory("Electronics", 0)
	c := gw.AddCategory("Connectors", e.ID)
	r := gw.AddCategory("Rectangular", c.ID)
	gw.AddTemplate(symbolParameter)
	gw.AddTemplate(footprintParameter)
	return gw, Config{CategoryID: r.ID, CategoryPath: "Electronics/Connectors/Rectangular", Search: "NS25-W"}
}

func values(t *testing.T, gw *memory.Gateway, partID int) map[string]string {
	params, err := gw.ListParameters(context.Background(), partID)
	require.NoError(t, err)
	out := map[string]string{}
	for _, p := range params {
		out[p.TemplateName()] = p.Data
	}
	return out
}

func TestSymbolFootprint(t *testing.T) {
	assert.Equal(t, "Connector:Conn_01x04_Pin", Symbol(4))
	assert.Equal(t, "Connector_Molex:Molex_KK-254_AE-6410-04A_1x04_P2.54mm_Vertical", Footprint(4, "Vertical"))
	assert.Equal(t, "Connector_Molex:Molex_KK-254_AE-6410-12A_1x12_P2.54mm_Horizontal", Footprint(12, "Horizontal"))
}

func TestRun(t *testing.T) {
	gw, cfg := setup()
	vertical := gw.AddPart(catalog.Part{Name: "NS25-W4P", CategoryID: cfg.CategoryID})
	horizontal := gw.AddPart(catalog.Part{Name: "NS25-W10K", CategoryID: cfg.CategoryID})
	gw.AddParameter(horizontal.ID, symbolParameter, "Connector:Conn_01x09_Pin")
	gw.AddPart(catalog.Part{Name: "NS25-W4 housing", CategoryID: cfg.CategoryID})

	summary, err := NewService(gw, cfg, zap.NewNop()).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{Updated: 2, Skipped: 1}, summary)

	assert.Equal(t, map[string]string{
		symbolParameter:    "Connector:Conn_01x04_Pin",
		footprintParameter: "Connector_Molex:Molex_KK-254_AE-6410-04A_1x04_P2.54mm_Vertical",
	}, values(t, gw, vertical.ID))
	assert.Equal(t, map[string]string{
		symbolParameter:    "Connector:Conn_01x10_Pin",
		footprintParameter: "Connector_Molex:Molex_KK-254_AE-6410-10A_1x10_P2.54mm_Horizontal",
	}, values(t, gw, horizontal.ID))
}

func TestRun_SecondRunWritesNothing(t *testing.T) {
	gw, cfg := setup()
	gw.AddPart(catalog.Part{Name: "NS25-W2P", CategoryID: cfg.CategoryID})
	svc := NewService(gw, cfg, zap.NewNop())

	_, err := svc.Run(context.Background())
	require.NoError(t, err)
	first := gw.Mutations()
	assert.Equal(t, 2, first)

	_, err = svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, gw.Mutations())
}

func TestRun_MissingTemplate(t *testing.T) {
	gw := memory.New()
	e := gw.AddCategory("Electronics", 0)
	c := gw.AddCategory("Connectors", e.ID)
	r := gw.AddCategory("Rectangular", c.ID)
	gw.AddPart(catalog.Part{Name: "NS25-W3P", CategoryID: r.ID})

	cfg := Config{CategoryID: r.ID, CategoryPath: "Electronics/Connectors/Rectangular", Search: "NS25-W"}
	_, err := NewService(gw, cfg, zap.NewNop()).Run(context.Background())

	var missing *reconcile.MissingTemplateError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, symbolParameter, missing.Name)
}
