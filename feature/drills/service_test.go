package drills

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
	cnc := gw.AddCategory("CNC", 0)
	tools := gw.AddCategory("Tools", cnc.ID)
	drills := gw.AddCategory("Drills", tools.ID)
	return gw, Config{CategoryID: drills.ID, CategoryPath: "CNC/Tools/Drills", Search: "Carbide Drill Bit 1/8"}
}

func addDrill(gw *memory.Gateway, categoryID int, name string) catalog.Part {
	p := gw.AddPart(catalog.Part{Name: name, CategoryID: categoryID})
	gw.AddParameter(p.ID, "Shank Diameter", "")
	gw.AddParameter(p.ID, "Overall Length", "")
	gw.AddParameter(p.ID, "Tip Diameter", "")
	return p
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

func TestRun(t *testing.T) {
	gw, cfg := setup()
	good := addDrill(gw, cfg.CategoryID, `Carbide Drill Bit 1/8" 0.8mm 38mm`)
	odd := addDrill(gw, cfg.CategoryID, `Carbide Drill Bit 1/8" set of 10`)
	gw.AddPart(catalog.Part{Name: "HSS Drill Bit 3mm", CategoryID: cfg.CategoryID})

	summary, err := NewService(gw, cfg, zap.NewNop()).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{Updated: 1, Skipped: 1}, summary)

	assert.Equal(t, map[string]string{
		"Shank Diameter": `1/8"`,
		"Overall Length": "38mm",
		"Tip Diameter":   "0.8mm",
	}, values(t, gw, good.ID))
	assert.Equal(t, "", values(t, gw, odd.ID)["Tip Diameter"])
}

func TestRun_Idempotent(t *testing.T) {
	gw, cfg := setup()
	addDrill(gw, cfg.CategoryID, `Carbide Drill Bit 1/8" 1.2mm 38mm`)
	svc := NewService(gw, cfg, zap.NewNop())

	_, err := svc.Run(context.Background())
	require.NoError(t, err)
	after := gw.Mutations()

	_, err = svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, after, gw.Mutations())
}

func TestRun_MissingParameter(t *testing.T) {
	gw, cfg := setup()
	gw.AddPart(catalog.Part{Name: `Carbide Drill Bit 1/8" 0.5mm 38mm`, CategoryID: cfg.CategoryID})

	_, err := NewService(gw, cfg, zap.NewNop()).Run(context.Background())
	var missing *reconcile.MissingParameterError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Shank Diameter", missing.Name)
}

func TestRun_CategoryMoved(t *testing.T) {
	gw, cfg := setup()
	cfg.CategoryPath = "Tools/Drills"

	_, err := NewService(gw, cfg, zap.NewNop()).Run(context.Background())
	var cfgErr *reconcile.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}
