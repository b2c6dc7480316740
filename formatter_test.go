package coursedump_test

import (
	"testing"

	"github.com/fwojciec/coursedump"
	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestFormatLessons(t *testing.T) {
	t.Parallel()

	t.Run("formats lesson with plain text", func(t *testing.T) {
		t.Parallel()

		lessons := []*coursedump.LessonResult{
			{Title: "Getting Started", PlainText: strptr("Welcome to the course.")},
		}

		result := coursedump.FormatLessons(lessons)

		assert.Equal(t, "## Lesson: Getting Started\nWelcome to the course.", result)
	})

	t.Run("falls back to browser text content", func(t *testing.T) {
		t.Parallel()

		lessons := []*coursedump.LessonResult{
			{Title: "Setup", TextContent: strptr("Install the toolchain.")},
		}

		result := coursedump.FormatLessons(lessons)

		assert.Equal(t, "## Lesson: Setup\nInstall the toolchain.", result)
	})

	t.Run("skips lessons without text and separates the rest with blank lines", func(t *testing.T) {
		t.Parallel()

		lessons := []*coursedump.LessonResult{
			{Title: "One", PlainText: strptr("First.")},
			{Title: "Video Only", Video: &coursedump.VideoMeta{URL: "https://x.com/v.mp4"}},
			{Title: "Two", PlainText: strptr("Second.")},
		}

		result := coursedump.FormatLessons(lessons)

		assert.Equal(t, "## Lesson: One\nFirst.\n\n## Lesson: Two\nSecond.", result)
	})

	t.Run("returns empty string for empty slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, coursedump.FormatLessons(nil))
	})
}
