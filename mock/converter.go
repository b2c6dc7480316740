package mock

import "github.com/fwojciec/coursedump"

var _ coursedump.Converter = (*Converter)(nil)

// Converter is a mock implementation of coursedump.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
