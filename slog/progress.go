package slog

import (
	"log/slog"

	"github.com/fwojciec/coursedump"
)

// NewLoggingProgress returns a ProgressFunc that logs every event and then
// forwards it to next. next may be nil.
func NewLoggingProgress(next coursedump.ProgressFunc, logger *slog.Logger) coursedump.ProgressFunc {
	return func(ev coursedump.ProgressEvent) {
		logger.Info("progress",
			"phase", string(ev.Phase),
			"completed", ev.Completed,
			"total", ev.Total,
			"lesson", ev.LessonTitle,
		)
		if next != nil {
			next(ev)
		}
	}
}
