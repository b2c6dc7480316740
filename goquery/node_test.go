package goquery_test

import (
	"testing"

	"github.com/fwojciec/coursedump"
	cdgoquery "github.com/fwojciec/coursedump/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Node implements coursedump.Node.
var _ coursedump.Node = (*cdgoquery.Node)(nil)

const fixture = `<!DOCTYPE html>
<html><body>
<div class="outer">
	<span class="title" data-id="t1">First  Title</span>
	<span class="title" data-id="t2">Second Title</span>
	<a href="/files/a.pdf" download>Slides</a>
</div>
</body></html>`

func TestNode_Select(t *testing.T) {
	t.Parallel()

	t.Run("returns matches in document order", func(t *testing.T) {
		t.Parallel()

		root, err := cdgoquery.ParseDocument(fixture)
		require.NoError(t, err)

		nodes, err := root.Select(".title")
		require.NoError(t, err)
		require.Len(t, nodes, 2)

		id, ok := nodes[0].Attr("data-id")
		assert.True(t, ok)
		assert.Equal(t, "t1", id)
	})

	t.Run("returns empty slice and nil error for no matches", func(t *testing.T) {
		t.Parallel()

		root, err := cdgoquery.ParseDocument(fixture)
		require.NoError(t, err)

		nodes, err := root.Select(".missing")
		require.NoError(t, err)
		assert.Empty(t, nodes)
	})

	t.Run("returns EINVALID for malformed selector", func(t *testing.T) {
		t.Parallel()

		root, err := cdgoquery.ParseDocument(fixture)
		require.NoError(t, err)

		_, err = root.Select("[[[")
		require.Error(t, err)
		assert.Equal(t, coursedump.EINVALID, coursedump.ErrorCode(err))
	})

	t.Run("scopes to the receiving node", func(t *testing.T) {
		t.Parallel()

		root, err := cdgoquery.ParseDocument(fixture)
		require.NoError(t, err)

		outer, err := root.Select(".outer")
		require.NoError(t, err)
		require.Len(t, outer, 1)

		links, err := outer[0].Select("a[download]")
		require.NoError(t, err)
		assert.Len(t, links, 1)
	})
}

func TestNode_TextAndHTML(t *testing.T) {
	t.Parallel()

	root, err := cdgoquery.ParseDocument(fixture)
	require.NoError(t, err)

	nodes, err := root.Select("[data-id='t1']")
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	text, err := nodes[0].Text()
	require.NoError(t, err)
	assert.Equal(t, "First  Title", text)

	html, err := nodes[0].HTML()
	require.NoError(t, err)
	assert.Contains(t, html, `data-id="t1"`)
	assert.Contains(t, html, "First  Title")
}

func TestNode_Attr(t *testing.T) {
	t.Parallel()

	root, err := cdgoquery.ParseDocument(fixture)
	require.NoError(t, err)

	links, err := root.Select("a")
	require.NoError(t, err)
	require.Len(t, links, 1)

	href, ok := links[0].Attr("href")
	assert.True(t, ok)
	assert.Equal(t, "/files/a.pdf", href)

	_, ok = links[0].Attr("data-nope")
	assert.False(t, ok)
}
