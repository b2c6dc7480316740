package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/coursedump"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements coursedump.Extractor at compile time.
var _ coursedump.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to pull the main content out of a lesson's
// editor markup, shedding toolbar and placeholder chrome.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*coursedump.ExtractResult, error) {
	if rawHTML == "" {
		return nil, coursedump.Errorf(coursedump.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &coursedump.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
		ContentText: coursedump.CollapseSpace(result.ContentText),
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
