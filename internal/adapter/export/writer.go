package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"ppc-optimizer/internal/adapter/spreadsheet"
)

// Formats lists the file extensions Write understands.
var Formats = []string{".xlsx", ".csv", ".pdf"}

// UnsupportedFormatError is returned for export paths with an unknown
// extension.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported export format %q (want one of %s)",
		filepath.Ext(e.Path), strings.Join(Formats, ", "))
}

// Write stores t at path in the format implied by its extension. Relative
// paths are resolved against dir, which is created when missing. The
// absolute path of the written file is returned.
func Write(t Table, path, dir string) (string, error) {
	out, err := resolve(path, dir)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(out)) {
	case ".xlsx":
		err = toXLSX(t, out)
	case ".csv":
		err = toCSV(t, out)
	case ".pdf":
		err = toPDF(t, out)
	default:
		return "", &UnsupportedFormatError{Path: path}
	}
	if err != nil {
		return "", err
	}
	return filepath.Abs(out)
}

func resolve(path, dir string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty export path")
	}
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("could not create export directory: %w", err)
	}
	return path, nil
}

func toXLSX(t Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating xlsx file: %w", err)
	}
	defer file.Close()

	if err = spreadsheet.WriteXLSX(file, sheetName(t.Title), t.Header, t.Rows); err != nil {
		return fmt.Errorf("error writing xlsx file: %w", err)
	}
	return file.Close()
}

func toCSV(t Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err = writer.Write(t.Header); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, row := range t.Rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = FormatCell(v)
		}
		if err = writer.Write(record); err != nil {
			return fmt.Errorf("error writing CSV record: %w", err)
		}
	}
	writer.Flush()
	if err = writer.Error(); err != nil {
		return fmt.Errorf("error flushing CSV file: %w", err)
	}
	return file.Close()
}

func toPDF(t Table, path string) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right
	colWidth := usable
	if len(t.Header) > 0 {
		colWidth = usable / float64(len(t.Header))
	}

	header := func() {
		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(40, 40, 40)
		pdf.SetTextColor(255, 255, 255)
		for _, h := range t.Header {
			pdf.CellFormat(colWidth, 7, tr(truncate(pdf, h, colWidth)), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 8)
		pdf.SetTextColor(50, 50, 50)
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("%s | %s", t.Title, time.Now().Format("2006-01-02"))), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 12, tr(t.Title), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	header()

	_, pageHeight := pdf.GetPageSize()
	for i, row := range t.Rows {
		if pdf.GetY()+6 > pageHeight-15 {
			pdf.AddPage()
			header()
		}
		fill := i%2 == 1
		pdf.SetFillColor(240, 240, 240)
		for _, v := range row {
			align := "L"
			if _, ok := v.(float64); ok {
				align = "R"
			}
			pdf.CellFormat(colWidth, 6, tr(truncate(pdf, formatPDFCell(v), colWidth)), "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("error writing PDF file: %w", err)
	}
	return nil
}

// FormatCell renders a cell value for text outputs. Floats use the shortest
// representation that round-trips.
func FormatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

func formatPDFCell(v any) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', 2, 64)
	}
	return FormatCell(v)
}

// truncate shortens s with an ellipsis until it fits in width.
func truncate(pdf *gofpdf.Fpdf, s string, width float64) string {
	limit := width - 2
	if pdf.GetStringWidth(s) <= limit {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > limit {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

// sheetName trims a title to the 31 characters excel allows for sheet names.
func sheetName(title string) string {
	r := []rune(title)
	if len(r) > 31 {
		r = r[:31]
	}
	return string(r)
}
