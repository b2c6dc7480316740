package mock

import (
	"context"

	"github.com/fwojciec/coursedump"
)

var _ coursedump.Page = (*Page)(nil)

// Page is a mock implementation of coursedump.Page.
type Page struct {
	RootFn  func(ctx context.Context) (coursedump.Node, error)
	TitleFn func(ctx context.Context) (string, error)
	URLFn   func(ctx context.Context) (string, error)
}

func (p *Page) Root(ctx context.Context) (coursedump.Node, error) {
	return p.RootFn(ctx)
}

func (p *Page) Title(ctx context.Context) (string, error) {
	return p.TitleFn(ctx)
}

func (p *Page) URL(ctx context.Context) (string, error) {
	return p.URLFn(ctx)
}
