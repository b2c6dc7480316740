package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/coursedump"
	"github.com/fwojciec/coursedump/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Practical Go", "practical-go"},
		{"punctuation collapses", "Go: From Zero!", "go-from-zero"},
		{"repeated separators", "A  --  B", "a-b"},
		{"leading and trailing junk", "  ...Go...  ", "go"},
		{"digits survive", "Go 101", "go-101"},
		{"unicode letters survive", "Kurs Języka Go", "kurs-języka-go"},
		{"empty input", "", ""},
		{"only punctuation", "?!?", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.Slugify(tt.title))
		})
	}
}

func testDocument() *coursedump.ResultDocument {
	return &coursedump.ResultDocument{
		CourseTitle:   "Practical Go",
		CurriculumURL: "https://platform.example.com/courses/42/curriculum",
		ExtractedAt:   time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
		TotalChapters: 1,
		TotalLessons:  1,
		Chapters: []*coursedump.ChapterResult{
			{
				ChapterTitle: "Getting Started",
				Lessons: []*coursedump.LessonResult{
					{Title: "Welcome", Type: coursedump.LessonText},
				},
			},
		},
	}
}

func TestWriter_WriteDocument(t *testing.T) {
	t.Parallel()

	t.Run("writes parseable JSON named after the course", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		path, err := w.WriteDocument(context.Background(), testDocument())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(baseDir, "practical-go.json"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var got coursedump.ResultDocument
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "Practical Go", got.CourseTitle)
		require.Len(t, got.Chapters, 1)
		assert.Equal(t, "Welcome", got.Chapters[0].Lessons[0].Title)
	})

	t.Run("creates the base directory", func(t *testing.T) {
		t.Parallel()

		baseDir := filepath.Join(t.TempDir(), "out", "courses")
		w := fs.NewWriter(baseDir)

		path, err := w.WriteDocument(context.Background(), testDocument())
		require.NoError(t, err)

		_, err = os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		_, err := w.WriteDocument(context.Background(), testDocument())
		require.NoError(t, err)

		entries, err := os.ReadDir(baseDir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "practical-go.json", entries[0].Name())
	})

	t.Run("validates the document", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		doc := testDocument()
		doc.CourseTitle = ""

		_, err := w.WriteDocument(context.Background(), doc)

		require.Error(t, err)
		assert.Equal(t, coursedump.EINVALID, coursedump.ErrorCode(err))
	})
}
