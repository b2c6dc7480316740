package mock

import (
	"context"

	"github.com/fwojciec/coursedump"
)

var _ coursedump.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of coursedump.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, courseID string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, courseID string) (string, error) {
	return s.SummarizeFn(ctx, courseID)
}
