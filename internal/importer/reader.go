package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Format is a supported input file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ErrUnsupportedFormat is returned for files that are neither CSV nor XLSX.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Row is one raw input row. Line is 1-based and refers to the source file.
type Row struct {
	Line  int
	Cells []string
}

// ReadCSV returns the rows of r starting at file line startRow (1-based).
func ReadCSV(r io.Reader, startRow int) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		// csv.Reader skips blank lines, so take the line from the reader.
		line, _ := reader.FieldPos(0)
		if line < startRow {
			continue
		}
		rows = append(rows, Row{Line: line, Cells: record})
	}
	return rows, nil
}

// ReadXLSX returns the rows of the named sheet from startRow (1-based) on.
// An empty sheet name selects the first sheet in the workbook.
func ReadXLSX(r io.Reader, sheet string, startRow int) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var rows []Row
	for i, record := range records {
		if i+1 < startRow {
			continue
		}
		rows = append(rows, Row{Line: i + 1, Cells: record})
	}
	return rows, nil
}
