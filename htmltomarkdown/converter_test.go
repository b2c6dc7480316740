package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/coursedump"
	"github.com/fwojciec/coursedump/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Welcome</h1><p>This lesson covers the basics.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Welcome")
		assert.Contains(t, md, "This lesson covers the basics.")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>See the <a href="https://go.dev/spec">language spec</a>.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[language spec](https://go.dev/spec)")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>First</li><li>Second</li></ul><ol><li>One</li><li>Two</li></ol>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
		assert.Contains(t, md, "1. One")
		assert.Contains(t, md, "2. Two")
	})

	t.Run("converts code blocks with language hint", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code class="language-go">package main</code></pre>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "```go")
		assert.Contains(t, md, "package main")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Exercise</th><th>Points</th></tr></thead>
<tbody><tr><td>FizzBuzz</td><td>10</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Exercise")
		assert.Contains(t, md, "FizzBuzz")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("converts emphasis", func(t *testing.T) {
		t.Parallel()

		html := `<p><strong>Important:</strong> read <em>carefully</em>.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "**Important:**")
		assert.Contains(t, md, "*carefully*")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, coursedump.EINVALID, coursedump.ErrorCode(err))
	})
}
