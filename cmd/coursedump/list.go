package main

import (
	"fmt"

	"github.com/fwojciec/coursedump"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := coursedump.CourseFilter{}
	if c.Title != "" {
		filter.Title = &c.Title
	}

	courses, err := deps.Courses.FindCourses(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursedump.ErrorMessage(err))
		return err
	}

	if len(courses) == 0 {
		fmt.Fprintln(deps.Stdout, "No courses found. Use 'coursedump scrape' to capture one.")
		return nil
	}

	for _, course := range courses {
		status := ""
		if course.Cancelled {
			status = "  (cancelled)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %d chapters, %d lessons  %s%s\n",
			course.ID, course.CourseTitle, course.TotalChapters, course.TotalLessons,
			course.ExtractedAt.Format("2006-01-02"), status)
	}

	return nil
}
