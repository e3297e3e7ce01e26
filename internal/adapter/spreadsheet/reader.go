// Package spreadsheet loads uploaded workbooks into domain.Sheet values and
// writes result sheets back out as xlsx.
package spreadsheet

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"ppc-optimizer/internal/core/domain"
)

// xlsCharset is the charset handed to the BIFF decoder for string records.
const xlsCharset = "utf-8"

// Reader implements port.SheetReader for .xlsx and .xls files. Only the
// first worksheet is read and its first row is the header.
type Reader struct{}

// NewReader returns a Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadSheet decodes the first worksheet of the file at path. Decoding
// failures are reported as *domain.ParseError.
func (r *Reader) ReadSheet(ctx context.Context, path string) (*domain.Sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readXLSX(path)
	case ".xls":
		return readXLS(path)
	default:
		return nil, &domain.InvalidFileTypeError{Filename: filepath.Base(path)}
	}
}

func readXLSX(path string) (*domain.Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, parseError(path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, parseError(path, fmt.Errorf("workbook has no sheets"))
	}
	// raw values keep percentages and currencies as plain numbers
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, parseError(path, err)
	}
	return buildSheet(sheets[0], rows), nil
}

func readXLS(path string) (sheet *domain.Sheet, err error) {
	// the BIFF decoder panics on some malformed streams
	defer func() {
		if rec := recover(); rec != nil {
			sheet, err = nil, parseError(path, fmt.Errorf("corrupt xls: %v", rec))
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, parseError(path, err)
	}
	defer f.Close()

	cells, err := scanXLSCells(f)
	if err != nil {
		return nil, parseError(path, err)
	}

	// label text is resolved through the decoder's shared string table
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, parseError(path, err)
	}
	wb, err := xls.OpenReader(f, xlsCharset)
	if err != nil {
		return nil, parseError(path, err)
	}
	if wb == nil {
		return nil, parseError(path, fmt.Errorf("no workbook stream"))
	}
	ws := wb.GetSheet(0)
	if ws == nil {
		return nil, parseError(path, fmt.Errorf("workbook has no sheets"))
	}

	var rows [][]string
	for _, c := range cells {
		for len(rows) <= c.row {
			rows = append(rows, nil)
		}
		if n := len(rows[c.row]); n <= c.col {
			rows[c.row] = append(rows[c.row], make([]string, c.col+1-n)...)
		}
		v := c.value
		if c.label {
			v = ws.Row(c.row).Col(c.col)
		}
		rows[c.row][c.col] = v
	}
	return buildSheet(ws.Name, rows), nil
}

// buildSheet turns raw rows into a Sheet. Row 1 is the header, widened to
// the longest row; fully blank rows are dropped.
func buildSheet(name string, raw [][]string) *domain.Sheet {
	sheet := &domain.Sheet{Name: name}
	if len(raw) == 0 {
		return sheet
	}

	width := 0
	for _, row := range raw {
		width = max(width, len(row))
	}
	header := make([]string, width)
	copy(header, raw[0])
	sheet.Header = domain.NormalizeHeader(header)

	for i, row := range raw[1:] {
		cells := make([]any, width)
		blank := true
		for c, v := range row {
			cells[c] = domain.ParseCellValue(v)
			if cells[c] != nil {
				blank = false
			}
		}
		if blank {
			continue
		}
		sheet.Rows = append(sheet.Rows, domain.SheetRow{Number: i + 2, Cells: cells})
	}
	return sheet
}

func parseError(path string, err error) *domain.ParseError {
	return &domain.ParseError{Filename: filepath.Base(path), Err: err}
}
