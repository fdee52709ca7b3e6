// Package extract pulls candidate domain strings out of uploaded
// spreadsheets. It is best-effort by design: the batch runner re-validates
// whatever comes out.
package extract

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// Headers treated as the domain column, matched case-insensitively after
// trimming. First match wins; with no match the first column is used.
var domainColumns = []string{"domain", "url", "website", "site", "domains", "urls"}

// FromUpload extracts the domain column from a CSV or Excel upload. The
// first row is always treated as the header.
func FromUpload(filename string, r io.Reader) ([]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return fromCSV(r)
	case ".xlsx", ".xls":
		return fromExcel(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func fromCSV(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are common in hand-edited files
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return columnValues(rows), nil
}

func fromExcel(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return columnValues(rows), nil
}

func columnValues(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}
	col := pickColumn(rows[0])
	out := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if col < len(row) && row[col] != "" {
			out = append(out, row[col])
		}
	}
	return out
}

func pickColumn(header []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, want := range domainColumns {
			if h == want {
				return i
			}
		}
	}
	return 0
}

// Clean trims each candidate and keeps only plausible domains: something
// containing a dot that is not a comment line.
func Clean(domains []string) []string {
	out := make([]string, 0, len(domains))
	for _, d := range domains {
		d = strings.TrimSpace(d)
		if d != "" && strings.Contains(d, ".") && !strings.HasPrefix(d, "#") {
			out = append(out, d)
		}
	}
	return out
}
