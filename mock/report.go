package mock

import (
	prodlister "github.com/Plug0007/prod-lister"
)

var _ prodlister.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of prodlister.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(products []prodlister.Product) error
}

func (w *ReportWriter) WriteReport(products []prodlister.Product) error {
	return w.WriteReportFn(products)
}
