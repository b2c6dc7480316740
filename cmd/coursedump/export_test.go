package main

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fwojciec/coursedump"
	"github.com/fwojciec/coursedump/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("exports JSON by default", func(t *testing.T) {
		t.Parallel()

		courses := &mock.CourseService{
			FindCourseByIDFn: func(ctx context.Context, id string) (*coursedump.ResultDocument, error) {
				return showTestCourse(), nil
			},
		}

		deps, stdout, _ := testDeps(courses)
		cmd := &ExportCmd{ID: "id-1", Format: "json"}

		require.NoError(t, cmd.Run(deps))

		var doc coursedump.ResultDocument
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
		assert.Equal(t, "Practical Go", doc.CourseTitle)
		require.Len(t, doc.Chapters, 1)
		assert.Len(t, doc.Chapters[0].Lessons, 3)
	})

	t.Run("exports XML on request", func(t *testing.T) {
		t.Parallel()

		courses := &mock.CourseService{
			FindCourseByIDFn: func(ctx context.Context, id string) (*coursedump.ResultDocument, error) {
				return showTestCourse(), nil
			},
		}

		deps, stdout, _ := testDeps(courses)
		cmd := &ExportCmd{ID: "id-1", Format: "xml"}

		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.True(t, strings.HasPrefix(out, "<?xml"))
		assert.Contains(t, out, `title="Practical Go"`)
		assert.Contains(t, out, "<chapter")
	})

	t.Run("reports unknown course", func(t *testing.T) {
		t.Parallel()

		courses := &mock.CourseService{
			FindCourseByIDFn: func(ctx context.Context, id string) (*coursedump.ResultDocument, error) {
				return nil, coursedump.Errorf(coursedump.ENOTFOUND, "course not found")
			},
		}

		deps, _, stderr := testDeps(courses)
		cmd := &ExportCmd{ID: "nope", Format: "json"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "course not found")
	})
}
