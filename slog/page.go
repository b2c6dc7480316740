// Package slog provides log/slog-based logging decorators for the core
// service interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/coursedump"
)

// Ensure LoggingPage implements coursedump.Page.
var _ coursedump.Page = (*LoggingPage)(nil)

// LoggingPage wraps a Page with debug logging. The interaction loop re-reads
// the page root constantly, so Root is logged at debug level to keep normal
// runs quiet.
type LoggingPage struct {
	next   coursedump.Page
	logger *slog.Logger
}

// NewLoggingPage creates a new LoggingPage.
func NewLoggingPage(next coursedump.Page, logger *slog.Logger) *LoggingPage {
	return &LoggingPage{next: next, logger: logger}
}

// Root delegates to the wrapped page and logs the operation.
func (p *LoggingPage) Root(ctx context.Context) (node coursedump.Node, err error) {
	defer func(begin time.Time) {
		p.logger.Debug("page root",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Root(ctx)
}

// Title delegates to the wrapped page and logs the operation.
func (p *LoggingPage) Title(ctx context.Context) (title string, err error) {
	defer func(begin time.Time) {
		p.logger.Info("page title",
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Title(ctx)
}

// URL delegates to the wrapped page and logs the operation.
func (p *LoggingPage) URL(ctx context.Context) (url string, err error) {
	defer func(begin time.Time) {
		p.logger.Info("page url",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.URL(ctx)
}
