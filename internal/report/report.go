// Package report renders record listings as PDF tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	fontFamily = "Helvetica"
	margin     = 12.0
	rowHeight  = 7.0
)

// Document is one rendered listing.
type Document struct {
	Title     string
	Generated time.Time
	Headers   []string
	Rows      [][]string
	Totals    []Total
	// Total is the size of the filtered set, which may exceed len(Rows).
	Total int64
}

// Total is one aggregate line printed under the table.
type Total struct {
	Label string
	Value float64
}

// Render writes doc to w as a PDF.
func Render(w io.Writer, doc Document) error {
	orientation := "P"
	if len(doc.Headers) > 4 {
		orientation = "L"
	}

	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	widths := columnWidths(len(doc.Headers), pageWidth-2*margin)

	header := func() {
		pdf.SetFont(fontFamily, "B", 10)
		pdf.SetFillColor(230, 236, 228)
		for i, h := range doc.Headers {
			pdf.CellFormat(widths[i], rowHeight, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(fontFamily, "", 9)
	}

	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			header()
		}
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-margin)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AliasNbPages("")

	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 9)
	summary := fmt.Sprintf("Generated %s. %d of %d rows.",
		doc.Generated.Format("2006-01-02 15:04 MST"), len(doc.Rows), doc.Total)
	pdf.CellFormat(0, 6, summary, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	header()
	for _, row := range doc.Rows {
		for i := range doc.Headers {
			var cell string
			if i < len(row) {
				cell = fit(pdf, tr(row[i]), widths[i]-2)
			}
			pdf.CellFormat(widths[i], rowHeight, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(doc.Totals) > 0 {
		pdf.Ln(4)
		pdf.SetFont(fontFamily, "B", 10)
		for _, t := range doc.Totals {
			line := fmt.Sprintf("%s: %s", t.Label, strconv.FormatFloat(t.Value, 'f', 2, 64))
			pdf.CellFormat(0, rowHeight, tr(line), "", 1, "L", false, 0, "")
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}

func columnWidths(n int, available float64) []float64 {
	widths := make([]float64, n)
	for i := range widths {
		widths[i] = available / float64(n)
	}
	return widths
}

// fit shortens s with an ellipsis until it fits within width.
func fit(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if pdf.GetStringWidth(candidate) <= width {
			return candidate
		}
	}
	return ""
}
