// Package xlsx renders a canonical product sequence into a styled Excel
// workbook: a filterable catalogue table with currency formatting and
// clickable links, plus a per-category summary sheet with a column chart.
package xlsx

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	prodlister "github.com/Plug0007/prod-lister"
)

const (
	catalogSheet = "Catalog"
	summarySheet = "Summary"
)

// columnWidths for the Category, Product Name, Price, URL and Image columns.
var columnWidths = []float64{15, 45, 12, 45, 40}

// Ensure ReportWriter implements prodlister.ReportWriter at compile time.
var _ prodlister.ReportWriter = (*ReportWriter)(nil)

// ReportWriter writes the catalogue report workbook to a file.
type ReportWriter struct {
	// Path is the output workbook path.
	Path string
}

// NewReportWriter creates a ReportWriter targeting the given path.
func NewReportWriter(path string) *ReportWriter {
	return &ReportWriter{Path: path}
}

// WriteReport renders the product sequence. An empty sequence produces a
// valid workbook with a header-only table, an empty summary, and no chart.
func (w *ReportWriter) WriteReport(products []prodlister.Product) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", catalogSheet); err != nil {
		return err
	}
	if err := w.writeCatalog(f, products); err != nil {
		return err
	}
	if err := w.writeSummary(f, products); err != nil {
		return err
	}

	if idx, err := f.GetSheetIndex(catalogSheet); err == nil {
		f.SetActiveSheet(idx)
	}

	if err := f.SaveAs(w.Path); err != nil {
		return prodlister.Errorf(prodlister.EINTERNAL, "saving workbook %s: %v", w.Path, err)
	}
	return nil
}

// writeCatalog renders the main table: styled header, frozen header row,
// auto-filter, currency-formatted prices, hyperlinked URLs.
func (w *ReportWriter) writeCatalog(f *excelize.File, products []prodlister.Product) error {
	currencyFmt := "₹#,##0"
	currencyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &currencyFmt})
	if err != nil {
		return err
	}
	if err := f.SetColStyle(catalogSheet, "C", currencyStyle); err != nil {
		return err
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(catalogSheet, col, col, width); err != nil {
			return err
		}
	}

	header := make([]interface{}, len(prodlister.Columns))
	for i, name := range prodlister.Columns {
		header[i] = name
	}
	if err := f.SetSheetRow(catalogSheet, "A1", &header); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"004B8F"}},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(catalogSheet, "A1", "E1", headerStyle); err != nil {
		return err
	}

	for i, p := range products {
		row := i + 2
		values := []interface{}{p.Category, p.Name, nil, p.URL, p.Image}
		if p.Price != nil {
			values[2] = *p.Price
		}
		if err := f.SetSheetRow(catalogSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		if p.URL != "" {
			if err := f.SetCellHyperLink(catalogSheet, fmt.Sprintf("D%d", row), p.URL, "External"); err != nil {
				return err
			}
		}
	}

	if err := f.AutoFilter(catalogSheet, fmt.Sprintf("A1:E%d", len(products)+1), nil); err != nil {
		return err
	}

	return f.SetPanes(catalogSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// writeSummary renders per-category counts sorted descending by count and
// the accompanying column chart. No chart is added for an empty catalogue.
func (w *ReportWriter) writeSummary(f *excelize.File, products []prodlister.Product) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	if err := f.SetSheetRow(summarySheet, "A1", &[]interface{}{"Category", "Products"}); err != nil {
		return err
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 25); err != nil {
		return err
	}
	if err := f.SetColWidth(summarySheet, "B", "B", 12); err != nil {
		return err
	}

	summary := summarize(products)
	for i, entry := range summary {
		row := i + 2
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", row), &[]interface{}{entry.category, entry.count}); err != nil {
			return err
		}
	}

	if len(summary) == 0 {
		return nil
	}

	last := len(summary) + 1
	return f.AddChart(summarySheet, "D2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       "Product count",
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", summarySheet, last),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", summarySheet, last),
		}},
		Title: []excelize.RichTextRun{{Text: "Catalogue size by category"}},
		YAxis: excelize.ChartAxis{MajorGridLines: false},
	})
}

type summaryEntry struct {
	category string
	count    int
}

// summarize counts records per category, sorted descending by count with
// category name as a deterministic tie-break.
func summarize(products []prodlister.Product) []summaryEntry {
	counts := make(map[string]int)
	for _, p := range products {
		counts[p.Category]++
	}

	entries := make([]summaryEntry, 0, len(counts))
	for category, count := range counts {
		entries = append(entries, summaryEntry{category: category, count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].category < entries[j].category
	})
	return entries
}
