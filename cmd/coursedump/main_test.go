package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMain(t *testing.T) *Main {
	t.Helper()
	m := &Main{DBPath: filepath.Join(t.TempDir(), "test.db")}
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no arguments shows help and errors", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), nil, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "Usage:")
	})

	t.Run("help succeeds", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"help"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "scrape")
		assert.Contains(t, stdout.String(), "summarize")
	})

	t.Run("list on an empty database", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"list"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No courses found")
	})

	t.Run("unknown command errors", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"frobnicate"}, &stdout, &stderr)

		require.Error(t, err)
	})

	t.Run("show with an unknown id fails", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"show", "no-such-id"}, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "not found")
	})
}
