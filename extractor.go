package coursedump

// ExtractResult holds the normalized content pulled out of a lesson's raw
// markup.
type ExtractResult struct {
	// Title is the content title, when the markup declares one.
	Title string

	// ContentHTML is the main content as clean HTML, editor chrome removed.
	ContentHTML string

	// ContentText is the plain-text rendition of the main content.
	ContentText string
}

// Extractor normalizes a lesson's raw content markup into clean HTML and
// plain text. Implementations wrap boilerplate-removal libraries; the loop
// falls back to whitespace-collapsed browser text when extraction fails.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// ExtractorChain tries each extractor in order and returns the first result
// that carries any content. It only fails when every link in the chain does.
type ExtractorChain []Extractor

// Extract implements Extractor.
func (c ExtractorChain) Extract(html string) (*ExtractResult, error) {
	var lastErr error
	for _, e := range c {
		result, err := e.Extract(html)
		if err != nil {
			lastErr = err
			continue
		}
		if result.ContentText != "" || result.ContentHTML != "" {
			return result, nil
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, Errorf(ENOTFOUND, "no extractor produced content")
}
