package main

import (
	"fmt"

	"github.com/fwojciec/coursedump"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	course, err := deps.Courses.FindCourseByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursedump.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n", course.CourseTitle)
	fmt.Fprintf(deps.Stdout, "%s\n", course.CurriculumURL)
	fmt.Fprintf(deps.Stdout, "Extracted %s, %d/%d lessons captured\n\n",
		course.ExtractedAt.Format("2006-01-02"), course.CompletedCount(), course.TotalLessons)

	for _, chapter := range course.Chapters {
		fmt.Fprintf(deps.Stdout, "%d. %s\n", chapter.ChapterIndex+1, chapter.ChapterTitle)
		for _, lesson := range chapter.Lessons {
			fmt.Fprintf(deps.Stdout, "   %d.%d [%s] %s%s\n",
				lesson.ChapterIndex+1, lesson.LessonIndex+1, lesson.Type, lesson.Title, lessonNote(lesson))

			if c.Full && lesson.PlainText != nil && *lesson.PlainText != "" {
				fmt.Fprintf(deps.Stdout, "       %s\n", *lesson.PlainText)
			}
		}
	}

	return nil
}

// lessonNote summarizes a lesson's captured payload for the tree view.
func lessonNote(l *coursedump.LessonResult) string {
	switch {
	case l.Error != "":
		return fmt.Sprintf("  ! %s", l.Error)
	case l.Video != nil:
		return fmt.Sprintf("  video: %s", l.Video.URL)
	case len(l.Attachments) > 0:
		return fmt.Sprintf("  (%d attachments)", len(l.Attachments))
	}
	return ""
}
