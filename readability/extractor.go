package readability

import (
	"strings"

	"github.com/fwojciec/coursedump"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements coursedump.Extractor at compile time.
var _ coursedump.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from lesson markup.
// It is the second link in the extraction chain, behind trafilatura.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &coursedump.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
		ContentText: coursedump.CollapseSpace(article.TextContent),
	}, nil
}
