package coursedump

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be a lesson's content markup.
	// Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}
