package mock

import (
	"context"

	"github.com/fwojciec/coursedump"
)

var (
	_ coursedump.Node      = (*Node)(nil)
	_ coursedump.Node      = (*ClickableNode)(nil)
	_ coursedump.Clickable = (*ClickableNode)(nil)
	_ coursedump.Node      = (*FrameNode)(nil)
	_ coursedump.FrameHost = (*FrameNode)(nil)
)

// Node is a mock implementation of coursedump.Node.
type Node struct {
	SelectFn func(selector string) ([]coursedump.Node, error)
	AttrFn   func(name string) (string, bool)
	TextFn   func() (string, error)
	HTMLFn   func() (string, error)
}

func (n *Node) Select(selector string) ([]coursedump.Node, error) {
	return n.SelectFn(selector)
}

func (n *Node) Attr(name string) (string, bool) {
	return n.AttrFn(name)
}

func (n *Node) Text() (string, error) {
	return n.TextFn()
}

func (n *Node) HTML() (string, error) {
	return n.HTMLFn()
}

// ClickableNode is a Node that also mocks the Clickable capability.
type ClickableNode struct {
	Node
	ScrollIntoViewFn func(ctx context.Context) error
	ClickFn          func(ctx context.Context) error
}

func (n *ClickableNode) ScrollIntoView(ctx context.Context) error {
	return n.ScrollIntoViewFn(ctx)
}

func (n *ClickableNode) Click(ctx context.Context) error {
	return n.ClickFn(ctx)
}

// FrameNode is a Node that also mocks the FrameHost capability.
type FrameNode struct {
	Node
	FrameRootFn func(ctx context.Context) (coursedump.Node, error)
}

func (n *FrameNode) FrameRoot(ctx context.Context) (coursedump.Node, error) {
	return n.FrameRootFn(ctx)
}
