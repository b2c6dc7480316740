package readability_test

import (
	"testing"

	"github.com/fwojciec/coursedump"
	"github.com/fwojciec/coursedump/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lessonPage = `<!DOCTYPE html>
<html>
<head><title>Error Handling</title></head>
<body>
<nav><a href="/">Home</a></nav>
<article>
<h1>Error Handling</h1>
<p>Errors are values. Functions return them as ordinary results, and callers
decide what to do: handle, wrap, or pass along.</p>
<p>Wrap an error with context when crossing a package boundary so the caller
can tell where things went wrong without parsing strings.</p>
<p>Sentinel errors and typed errors both have their place, but keep the
surface small: most callers only need to know whether the operation worked.</p>
</article>
<footer>© 2026 Example Platform</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts article content", func(t *testing.T) {
		t.Parallel()

		e := readability.NewExtractor()
		result, err := e.Extract(lessonPage)

		require.NoError(t, err)
		assert.Contains(t, result.ContentText, "Errors are values.")
		assert.Contains(t, result.ContentHTML, "<p>")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		e := readability.NewExtractor()
		_, err := e.Extract("")

		require.Error(t, err)
		assert.Equal(t, coursedump.EINVALID, coursedump.ErrorCode(err))
	})
}
