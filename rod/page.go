package rod

import (
	"context"

	"github.com/fwojciec/coursedump"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure the live types satisfy the engine's interfaces at compile time.
var (
	_ coursedump.Page      = (*Page)(nil)
	_ coursedump.Node      = (*Element)(nil)
	_ coursedump.Clickable = (*Element)(nil)
	_ coursedump.FrameHost = (*Element)(nil)
)

// Page wraps a live browser tab.
type Page struct {
	page *rod.Page
}

// Root returns the document element of the page's current DOM. The returned
// element, and everything selected through it, carries ctx.
func (p *Page) Root(ctx context.Context) (coursedump.Node, error) {
	el, err := p.page.Context(ctx).Element("html")
	if err != nil {
		return nil, coursedump.Errorf(coursedump.EUNAVAILABLE, "reading document root: %v", err)
	}
	return &Element{el: el}, nil
}

// Title returns the tab's current document title.
func (p *Page) Title(ctx context.Context) (string, error) {
	info, err := p.page.Context(ctx).Info()
	if err != nil {
		return "", err
	}
	return info.Title, nil
}

// URL returns the tab's current location.
func (p *Page) URL(ctx context.Context) (string, error) {
	info, err := p.page.Context(ctx).Info()
	if err != nil {
		return "", err
	}
	return info.URL, nil
}

// Close closes the tab.
func (p *Page) Close() error {
	return p.page.Close()
}

// Element wraps a live DOM element.
type Element struct {
	el *rod.Element
}

// Select matches selector against the element's subtree. A selector the
// browser rejects is reported as EINVALID so callers can skip it and try the
// next fallback.
func (e *Element) Select(selector string) ([]coursedump.Node, error) {
	els, err := e.el.Elements(selector)
	if err != nil {
		return nil, coursedump.Errorf(coursedump.EINVALID, "selector %q: %v", selector, err)
	}
	out := make([]coursedump.Node, len(els))
	for i, el := range els {
		out[i] = &Element{el: el}
	}
	return out, nil
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	v, err := e.el.Attribute(name)
	if err != nil || v == nil {
		return "", false
	}
	return *v, true
}

// Text returns the element's rendered text.
func (e *Element) Text() (string, error) {
	return e.el.Text()
}

// HTML returns the element's outer markup.
func (e *Element) HTML() (string, error) {
	return e.el.HTML()
}

// ScrollIntoView scrolls the element into the viewport. Off-screen cards are
// not reliably clickable until they are visible.
func (e *Element) ScrollIntoView(ctx context.Context) error {
	return e.el.Context(ctx).ScrollIntoView()
}

// Click dispatches a full left-button pointer sequence on the element.
func (e *Element) Click(ctx context.Context) error {
	return e.el.Context(ctx).Click(proto.InputMouseButtonLeft, 1)
}

// FrameRoot returns the document element of the frame this element hosts.
// Cross-origin frames the browser refuses to expose are reported as EACCESS,
// which the extraction layer treats as a recoverable per-lesson condition.
func (e *Element) FrameRoot(ctx context.Context) (coursedump.Node, error) {
	frame, err := e.el.Frame()
	if err != nil {
		return nil, coursedump.Errorf(coursedump.EACCESS, "frame document not accessible: %v", err)
	}
	el, err := frame.Context(ctx).Element("html")
	if err != nil {
		return nil, coursedump.Errorf(coursedump.EACCESS, "frame document not accessible: %v", err)
	}
	return &Element{el: el}, nil
}
