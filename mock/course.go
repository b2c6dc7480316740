package mock

import (
	"context"

	"github.com/fwojciec/coursedump"
)

var _ coursedump.CourseService = (*CourseService)(nil)

// CourseService is a mock implementation of coursedump.CourseService.
type CourseService struct {
	CreateCourseFn   func(ctx context.Context, doc *coursedump.ResultDocument) error
	FindCourseByIDFn func(ctx context.Context, id string) (*coursedump.ResultDocument, error)
	FindCoursesFn    func(ctx context.Context, filter coursedump.CourseFilter) ([]*coursedump.ResultDocument, error)
	DeleteCourseFn   func(ctx context.Context, id string) error
}

func (s *CourseService) CreateCourse(ctx context.Context, doc *coursedump.ResultDocument) error {
	return s.CreateCourseFn(ctx, doc)
}

func (s *CourseService) FindCourseByID(ctx context.Context, id string) (*coursedump.ResultDocument, error) {
	return s.FindCourseByIDFn(ctx, id)
}

func (s *CourseService) FindCourses(ctx context.Context, filter coursedump.CourseFilter) ([]*coursedump.ResultDocument, error) {
	return s.FindCoursesFn(ctx, filter)
}

func (s *CourseService) DeleteCourse(ctx context.Context, id string) error {
	return s.DeleteCourseFn(ctx, id)
}
