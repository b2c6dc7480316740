package mock

import (
	"context"

	"github.com/fwojciec/coursedump"
)

var (
	_ coursedump.DocumentWriter = (*DocumentWriter)(nil)
	_ coursedump.Exporter       = (*Exporter)(nil)
)

// DocumentWriter is a mock implementation of coursedump.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *coursedump.ResultDocument) (string, error)
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *coursedump.ResultDocument) (string, error) {
	return w.WriteDocumentFn(ctx, doc)
}

// Exporter is a mock implementation of coursedump.Exporter.
type Exporter struct {
	ExportFn func(doc *coursedump.ResultDocument) ([]byte, error)
}

func (e *Exporter) Export(doc *coursedump.ResultDocument) ([]byte, error) {
	return e.ExportFn(doc)
}
