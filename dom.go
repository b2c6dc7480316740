package coursedump

import "context"

// Node is a read-only view of a DOM element. Implementations wrap either a
// live browser element (rod/) or a parsed HTML fragment (goquery/), which
// keeps selector resolution and plan building testable against synthetic
// fixtures without a browser.
type Node interface {
	// Select returns all descendant elements matching the CSS selector, in
	// document order. A malformed or unsupported selector returns EINVALID;
	// a valid selector with no matches returns an empty slice and nil error.
	Select(selector string) ([]Node, error)

	// Attr returns the attribute value and whether the attribute is present.
	Attr(name string) (string, bool)

	// Text returns the element's rendered text content.
	Text() (string, error)

	// HTML returns the element's outer HTML markup.
	HTML() (string, error)
}

// Clickable is an optional Node capability for elements that can receive
// user interaction. Live browser nodes implement it; static fixture nodes
// do not.
type Clickable interface {
	// ScrollIntoView scrolls the element into the viewport and waits for
	// layout to settle.
	ScrollIntoView(ctx context.Context) error

	// Click dispatches a full synthetic pointer sequence (press, release,
	// click) rather than a bare click event, to satisfy UI frameworks that
	// listen for the complete sequence.
	Click(ctx context.Context) error
}

// FrameHost is an optional Node capability for elements hosting a nested
// browsing context (an iframe-backed rich-text editor, typically).
type FrameHost interface {
	// FrameRoot returns the root node of the hosted frame's document.
	// Returns EACCESS when the frame document cannot be entered; callers
	// treat that as a recoverable per-lesson condition, not a panic path.
	FrameRoot(ctx context.Context) (Node, error)
}

// Page is the live page the scraper drives. Root must be called again after
// each interaction: the platform re-renders the outline, so nodes obtained
// from an earlier root may be stale.
type Page interface {
	// Root returns the current document root.
	Root(ctx context.Context) (Node, error)

	// Title returns the page title.
	Title(ctx context.Context) (string, error)

	// URL returns the page's current address.
	URL(ctx context.Context) (string, error)
}
