// Package goquery provides a static coursedump.Node implementation over
// parsed HTML. It backs unit tests with synthetic DOM fixtures and offline
// resolution of saved page snapshots; live pages use the rod package.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/coursedump"
)

// Ensure Node implements coursedump.Node at compile time.
var _ coursedump.Node = (*Node)(nil)

// Node wraps a single-element goquery selection. Node is read-only: it does
// not implement Clickable or FrameHost.
type Node struct {
	sel *goquery.Selection
}

// NewNode wraps an existing selection. The selection should contain exactly
// one element; Attr, Text, and HTML operate on the first.
func NewNode(sel *goquery.Selection) *Node {
	return &Node{sel: sel}
}

// ParseDocument parses an HTML document and returns its root node.
func ParseDocument(html string) (*Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, coursedump.Errorf(coursedump.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Node{sel: doc.Selection}, nil
}

// Select returns all descendants matching the CSS selector, in document
// order. The selector is compiled with cascadia so malformed syntax surfaces
// as EINVALID instead of a panic.
func (n *Node) Select(selector string) ([]coursedump.Node, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, coursedump.Errorf(coursedump.EINVALID, "invalid selector %q: %v", selector, err)
	}

	var out []coursedump.Node
	n.sel.FindMatcher(matcher).Each(func(_ int, s *goquery.Selection) {
		out = append(out, &Node{sel: s})
	})
	return out, nil
}

// Attr returns the attribute value and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// Text returns the node's text content.
func (n *Node) Text() (string, error) {
	return n.sel.Text(), nil
}

// HTML returns the node's outer HTML.
func (n *Node) HTML() (string, error) {
	html, err := goquery.OuterHtml(n.sel)
	if err != nil {
		return "", coursedump.Errorf(coursedump.EINTERNAL, "rendering HTML: %v", err)
	}
	return html, nil
}
