package scrape_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/coursedump"
	"github.com/fwojciec/coursedump/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lessonCard(t *testing.T, inner string) coursedump.Node {
	t.Helper()
	root := parseFixture(t, fmt.Sprintf(
		`<html><body><div data-testid="lesson-card">%s</div></body></html>`, inner))
	cards, err := root.Select("[data-testid='lesson-card']")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	return cards[0]
}

func TestDetectLessonType(t *testing.T) {
	t.Parallel()

	sel := coursedump.DefaultSelectors()

	tests := []struct {
		name  string
		inner string
		want  coursedump.LessonType
	}{
		{
			"play icon class",
			`<svg data-testid="lesson-icon" class="icon icon-play"></svg>`,
			coursedump.LessonVideo,
		},
		{
			"video keyword in markup",
			`<i class="icon"><use href="#sprite-videocamera"></use></i>`,
			coursedump.LessonVideo,
		},
		{
			"file-text icon",
			`<svg data-testid="lesson-icon" class="icon icon-file-text"></svg>`,
			coursedump.LessonText,
		},
		{
			"document keyword is case-insensitive",
			`<i class="icon FA-Document"></i>`,
			coursedump.LessonText,
		},
		{
			"question icon maps to quiz",
			`<svg data-testid="lesson-icon" class="icon icon-question"></svg>`,
			coursedump.LessonQuiz,
		},
		{
			"download icon survives the data-testid attribute",
			`<svg data-testid="lesson-icon" class="icon icon-download"></svg>`,
			coursedump.LessonDownload,
		},
		{
			"unrecognized icon falls through to unknown",
			`<svg data-testid="lesson-icon" class="icon icon-star"></svg>`,
			coursedump.LessonUnknown,
		},
		{
			"no icon at all",
			`<span data-testid="lesson-title">Mystery</span>`,
			coursedump.LessonUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			card := lessonCard(t, tt.inner)
			assert.Equal(t, tt.want, scrape.DetectLessonType(card, sel))
		})
	}

	t.Run("falls back to explicit type attribute on the card", func(t *testing.T) {
		t.Parallel()

		root := parseFixture(t, `<html><body>
			<div data-testid="lesson-card" data-type="video"></div>
		</body></html>`)
		cards, err := root.Select("[data-testid='lesson-card']")
		require.NoError(t, err)
		require.Len(t, cards, 1)

		assert.Equal(t, coursedump.LessonVideo, scrape.DetectLessonType(cards[0], sel))
	})
}
