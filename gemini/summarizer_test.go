package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/coursedump"
	"github.com/fwojciec/coursedump/gemini"
	"github.com/fwojciec/coursedump/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestSummarizer_Summarize_ReturnsErrorWhenCourseIDEmpty(t *testing.T) {
	t.Parallel()

	s := gemini.NewSummarizer(nil, nil)

	_, err := s.Summarize(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, coursedump.EINVALID, coursedump.ErrorCode(err))
	assert.Contains(t, coursedump.ErrorMessage(err), "course ID required")
}

func TestSummarizer_Summarize_PropagatesCourseServiceError(t *testing.T) {
	t.Parallel()

	courses := &mock.CourseService{
		FindCourseByIDFn: func(context.Context, string) (*coursedump.ResultDocument, error) {
			return nil, coursedump.Errorf(coursedump.ENOTFOUND, "course not found")
		},
	}

	s := gemini.NewSummarizer(nil, courses) // nil client ok for this test

	_, err := s.Summarize(context.Background(), "no-such-id")

	require.Error(t, err)
	assert.Equal(t, coursedump.ENOTFOUND, coursedump.ErrorCode(err))
}

func TestSummarizer_Summarize_ReturnsErrorWhenCourseHasNoText(t *testing.T) {
	t.Parallel()

	courses := &mock.CourseService{
		FindCourseByIDFn: func(context.Context, string) (*coursedump.ResultDocument, error) {
			return &coursedump.ResultDocument{
				CourseTitle: "Video Only",
				Chapters: []*coursedump.ChapterResult{
					{Lessons: []*coursedump.LessonResult{
						{Title: "Welcome", Type: coursedump.LessonVideo},
					}},
				},
			}, nil
		},
	}

	s := gemini.NewSummarizer(nil, courses)

	_, err := s.Summarize(context.Background(), "some-id")

	require.Error(t, err)
	assert.Equal(t, coursedump.ENOTFOUND, coursedump.ErrorCode(err))
	assert.Contains(t, coursedump.ErrorMessage(err), "no text content")
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "summarizing online course content")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, *config.Temperature, 0.001)
}

func TestBuildUserPrompt_ContainsCourseContent(t *testing.T) {
	t.Parallel()

	lessons := []*coursedump.LessonResult{
		{Title: "Interfaces", PlainText: strptr("An interface specifies a method set.")},
	}
	content := coursedump.FormatLessons(lessons)

	prompt := gemini.BuildUserPrompt("Practical Go", content)

	assert.Contains(t, prompt, "<title>Practical Go</title>")
	assert.Contains(t, prompt, "## Lesson: Interfaces")
	assert.Contains(t, prompt, "An interface specifies a method set.")
	assert.Contains(t, prompt, "Summarize this course.")
}
