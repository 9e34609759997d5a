package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func runPO2TME(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		po2tmeInput, po2tmeOutput, po2tmeTab, po2tmeInDelimiter = "-", "-", false, ""
	})

	var out bytes.Buffer
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(append([]string{"po2tme"}, args...))
	err := RootCmd.Execute()
	return out.String(), err
}

func TestPO2TME_Stdin(t *testing.T) {
	out, err := runPO2TME(t, "Part;SKU;Quantity\nNozzle;1N4007;5.0\n", "--in-delimiter", ";", "-t")
	require.NoError(t, err)
	assert.Equal(t, "1N4007\t5\n", out)
}

func TestPO2TME_Files(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "po.csv")
	outPath := filepath.Join(dir, "tme.csv")
	require.NoError(t, os.WriteFile(in, []byte("sku,quantity\nBC547,10\nBC557,2\n"), 0o600))

	_, err := runPO2TME(t, "", "-i", in, "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "BC547,10\nBC557,2\n", string(data))
}

func TestPO2TME_XLSX(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "po.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"SKU", "Quantity"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"LM317T", 3}))
	require.NoError(t, f.SaveAs(in))
	require.NoError(t, f.Close())

	out, err := runPO2TME(t, "", "-i", in)
	require.NoError(t, err)
	assert.Equal(t, "LM317T,3\n", out)
}

func TestPO2TME_Errors(t *testing.T) {
	_, err := runPO2TME(t, "SKU,quantity\nBC547,-1\n")
	assert.Error(t, err)

	_, err = runPO2TME(t, "SKU,quantity\n", "--in-delimiter", ";;")
	assert.Error(t, err)
}

func TestPO2TME_InvalidInputKeepsOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "po.csv")
	outPath := filepath.Join(dir, "tme.csv")
	require.NoError(t, os.WriteFile(in, []byte("SKU,quantity\nABC,-1\n"), 0o600))
	require.NoError(t, os.WriteFile(outPath, []byte("previous order list\n"), 0o600))

	_, err := runPO2TME(t, "", "-i", in, "-o", outPath)
	require.Error(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "previous order list\n", string(data))
}
