package main

import (
	"context"
	"testing"

	"github.com/fwojciec/coursedump"
	"github.com/fwojciec/coursedump/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires force", func(t *testing.T) {
		t.Parallel()

		deleted := false
		courses := &mock.CourseService{
			DeleteCourseFn: func(ctx context.Context, id string) error {
				deleted = true
				return nil
			},
		}

		deps, _, stderr := testDeps(courses)
		cmd := &DeleteCmd{ID: "id-1"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, coursedump.EINVALID, coursedump.ErrorCode(err))
		assert.False(t, deleted)
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("deletes with force", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		courses := &mock.CourseService{
			DeleteCourseFn: func(ctx context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		deps, stdout, _ := testDeps(courses)
		cmd := &DeleteCmd{ID: "id-1", Force: true}

		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "id-1", deletedID)
		assert.Contains(t, stdout.String(), `Deleted course "id-1"`)
	})

	t.Run("reports unknown course", func(t *testing.T) {
		t.Parallel()

		courses := &mock.CourseService{
			DeleteCourseFn: func(ctx context.Context, id string) error {
				return coursedump.Errorf(coursedump.ENOTFOUND, "course not found")
			},
		}

		deps, _, stderr := testDeps(courses)
		cmd := &DeleteCmd{ID: "nope", Force: true}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "not found")
	})
}
