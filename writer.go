package coursedump

import "context"

// DocumentWriter persists a result document outside the core (the core
// itself never persists anything).
type DocumentWriter interface {
	// WriteDocument writes the document and returns the path it was
	// written to.
	WriteDocument(ctx context.Context, doc *ResultDocument) (string, error)
}

// Exporter serializes a result document into an alternative portable format.
type Exporter interface {
	Export(doc *ResultDocument) ([]byte, error)
}
