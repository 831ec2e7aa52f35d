// Package dataset decodes uploaded tabular exports (CSV or XLSX) into
// an in-memory header row plus data rows, the shape the importer
// consumes.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format, expected .csv or .xlsx")
	ErrNoHeaderRow       = errors.New("file has no header row")
)

// Dataset is one uploaded export in memory. Rows may be ragged — a row
// shorter than the header reads as empty cells via Cell.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

// Read decodes an upload, choosing the decoder by filename extension.
func Read(r io.Reader, filename string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ReadCSV(r)
	case ".xlsx":
		return ReadXLSX(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// ReadCSV decodes a CSV export. Excel prepends a UTF-8 BOM when saving,
// so the first header cell is cleaned of it.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoHeaderRow
	}

	headers := records[0]
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\uFEFF")
	}
	return &Dataset{Headers: headers, Rows: records[1:]}, nil
}

// ReadXLSX decodes the first sheet of a workbook.
func ReadXLSX(r io.Reader) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrNoHeaderRow
	}
	return &Dataset{Headers: rows[0], Rows: rows[1:]}, nil
}

// Cell returns the value at data row i, column j, or "" when the row
// is shorter than j+1 cells.
func (d *Dataset) Cell(i, j int) string {
	if i < 0 || j < 0 || i >= len(d.Rows) || j >= len(d.Rows[i]) {
		return ""
	}
	return d.Rows[i][j]
}
