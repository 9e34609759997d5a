package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"inventree-sync/core/utils"

	"github.com/xuri/excelize/v2"
)

// Row is one order line: a SKU and a whole quantity.
type Row struct {
	SKU      string
	Quantity int
}

// RowError reports an input row that cannot be converted. Line is 1-based and
// counts the header.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// ErrMissingColumn is returned when the header lacks the SKU or quantity column.
var ErrMissingColumn = errors.New("missing column")

// Options configures the converter.
type Options struct {
	// InDelimiter separates input columns; zero means comma.
	InDelimiter rune
	// OutDelimiter separates output columns; zero means comma.
	OutDelimiter rune
}

func delimiter(r rune) rune {
	if r == 0 {
		return ','
	}
	return r
}

// ReadCSV reads a headered CSV with "SKU" and "quantity" columns. Header names
// are matched case-insensitively and other columns are ignored.
func ReadCSV(r io.Reader, delim rune) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter(delim)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return fromRecords(records)
}

// ReadXLSX reads the first sheet of a spreadsheet export with the same columns as ReadCSV.
func ReadXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return fromRecords(records)
}

func fromRecords(records [][]string) ([]Row, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("empty input: %w", ErrMissingColumn)
	}

	skuCol, qtyCol := -1, -1
	for i, name := range records[0] {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case "sku":
			skuCol = i
		case "quantity":
			qtyCol = i
		}
	}
	if skuCol < 0 {
		return nil, fmt.Errorf("SKU: %w", ErrMissingColumn)
	}
	if qtyCol < 0 {
		return nil, fmt.Errorf("quantity: %w", ErrMissingColumn)
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2
		if isBlank(rec) {
			continue
		}
		if skuCol >= len(rec) || qtyCol >= len(rec) {
			return nil, &RowError{Line: line, Err: fmt.Errorf("expected %d columns, got %d", max(skuCol, qtyCol)+1, len(rec))}
		}

		sku := strings.TrimSpace(rec[skuCol])
		if sku == "" {
			return nil, &RowError{Line: line, Err: fmt.Errorf("empty SKU")}
		}
		qty, err := utils.ParseQuantity(rec[qtyCol])
		if err != nil {
			return nil, &RowError{Line: line, Err: fmt.Errorf("quantity %q: %w", rec[qtyCol], err)}
		}
		rows = append(rows, Row{SKU: sku, Quantity: qty})
	}
	return rows, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Write writes rows as SKU<delim>quantity lines without a header.
func Write(w io.Writer, rows []Row, delim rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter(delim)
	for _, row := range rows {
		if err := cw.Write([]string{row.SKU, strconv.Itoa(row.Quantity)}); err != nil {
			return fmt.Errorf("failed to write %s: %w", row.SKU, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Convert reads a CSV order export from r and writes the converted rows to w.
// Nothing is written when any row is invalid.
func Convert(r io.Reader, w io.Writer, opts Options) (int, error) {
	rows, err := ReadCSV(r, opts.InDelimiter)
	if err != nil {
		return 0, err
	}
	if err := Write(w, rows, opts.OutDelimiter); err != nil {
		return 0, err
	}
	return len(rows), nil
}
