package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/coursedump"
)

// Ensure LoggingCourseService implements coursedump.CourseService.
var _ coursedump.CourseService = (*LoggingCourseService)(nil)

// LoggingCourseService wraps a CourseService with debug logging.
type LoggingCourseService struct {
	next   coursedump.CourseService
	logger *slog.Logger
}

// NewLoggingCourseService creates a new LoggingCourseService.
func NewLoggingCourseService(next coursedump.CourseService, logger *slog.Logger) *LoggingCourseService {
	return &LoggingCourseService{next: next, logger: logger}
}

// CreateCourse delegates to the wrapped service and logs the operation.
func (s *LoggingCourseService) CreateCourse(ctx context.Context, doc *coursedump.ResultDocument) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create course",
			"id", doc.ID,
			"title", doc.CourseTitle,
			"lessons", doc.TotalLessons,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateCourse(ctx, doc)
}

// FindCourseByID delegates to the wrapped service and logs the operation.
func (s *LoggingCourseService) FindCourseByID(ctx context.Context, id string) (doc *coursedump.ResultDocument, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find course",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCourseByID(ctx, id)
}

// FindCourses delegates to the wrapped service and logs the operation.
func (s *LoggingCourseService) FindCourses(ctx context.Context, filter coursedump.CourseFilter) (docs []*coursedump.ResultDocument, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find courses",
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCourses(ctx, filter)
}

// DeleteCourse delegates to the wrapped service and logs the operation.
func (s *LoggingCourseService) DeleteCourse(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete course",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteCourse(ctx, id)
}
