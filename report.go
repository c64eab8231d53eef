package prodlister

// ReportWriter renders an ordered product sequence into a report, using the
// column order given by Columns. Implementations must operate correctly on
// an empty sequence (zero-row table, empty summary, no chart data).
type ReportWriter interface {
	WriteReport(products []Product) error
}
