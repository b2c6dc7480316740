package coursedump

import "context"

// Summarizer produces a natural-language summary of a stored course.
type Summarizer interface {
	// Summarize summarizes the course's extracted content.
	// Returns ENOTFOUND if the course does not exist.
	Summarize(ctx context.Context, courseID string) (string, error)
}

// TokenCounter counts tokens in text for a specific model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
