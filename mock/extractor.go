package mock

import "github.com/fwojciec/coursedump"

var _ coursedump.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of coursedump.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*coursedump.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*coursedump.ExtractResult, error) {
	return e.ExtractFn(html)
}
