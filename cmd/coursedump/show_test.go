package main

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/coursedump"
	"github.com/fwojciec/coursedump/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func showTestCourse() *coursedump.ResultDocument {
	return &coursedump.ResultDocument{
		ID:            "id-1",
		CourseTitle:   "Practical Go",
		CurriculumURL: "https://platform.example.com/courses/42/curriculum",
		ExtractedAt:   time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
		TotalChapters: 1,
		TotalLessons:  3,
		Chapters: []*coursedump.ChapterResult{
			{
				ChapterTitle: "Getting Started",
				ChapterIndex: 0,
				Lessons: []*coursedump.LessonResult{
					{
						Title: "Welcome Video", Type: coursedump.LessonVideo,
						ChapterIndex: 0, LessonIndex: 0,
						Video: &coursedump.VideoMeta{URL: "https://cdn.example.com/welcome.mp4"},
					},
					{
						Title: "Course Notes", Type: coursedump.LessonText,
						ChapterIndex: 0, LessonIndex: 1,
						ContentHTML: strptr("<p>notes</p>"),
						PlainText:   strptr("Read these notes."),
					},
					{
						Title: "Broken Lesson", Type: coursedump.LessonText,
						ChapterIndex: 0, LessonIndex: 2,
						Error: "lesson did not load within 12s",
					},
				},
			},
		},
	}
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the course tree", func(t *testing.T) {
		t.Parallel()

		courses := &mock.CourseService{
			FindCourseByIDFn: func(ctx context.Context, id string) (*coursedump.ResultDocument, error) {
				assert.Equal(t, "id-1", id)
				return showTestCourse(), nil
			},
		}

		deps, stdout, _ := testDeps(courses)
		cmd := &ShowCmd{ID: "id-1"}

		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "Practical Go")
		assert.Contains(t, out, "1/3 lessons captured")
		assert.Contains(t, out, "1. Getting Started")
		assert.Contains(t, out, "1.1 [video] Welcome Video  video: https://cdn.example.com/welcome.mp4")
		assert.Contains(t, out, "1.2 [text] Course Notes")
		assert.Contains(t, out, "1.3 [text] Broken Lesson  ! lesson did not load within 12s")
		assert.NotContains(t, out, "Read these notes.")
	})

	t.Run("full mode includes lesson text", func(t *testing.T) {
		t.Parallel()

		courses := &mock.CourseService{
			FindCourseByIDFn: func(ctx context.Context, id string) (*coursedump.ResultDocument, error) {
				return showTestCourse(), nil
			},
		}

		deps, stdout, _ := testDeps(courses)
		cmd := &ShowCmd{ID: "id-1", Full: true}

		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "Read these notes.")
	})

	t.Run("reports unknown course", func(t *testing.T) {
		t.Parallel()

		courses := &mock.CourseService{
			FindCourseByIDFn: func(ctx context.Context, id string) (*coursedump.ResultDocument, error) {
				return nil, coursedump.Errorf(coursedump.ENOTFOUND, "course not found")
			},
		}

		deps, _, stderr := testDeps(courses)
		cmd := &ShowCmd{ID: "nope"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "course not found")
	})
}
