package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoltlabs/articlaw"
	"github.com/zoltlabs/articlaw/goquery"
)

// Ensure SubstackExtractor implements articlaw.Extractor at compile time.
var _ articlaw.Extractor = (*goquery.SubstackExtractor)(nil)

func TestSubstackExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title, author and body from platform markup", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Issue 42 - My Newsletter</title></head>
<body>
<h1 class="post-title">Issue 42: On Writing</h1>
<div class="author-name">Jane Writer</div>
<div class="body markup">
	<p>First paragraph.</p>
	<p>Second paragraph.</p>
</div>
</body>
</html>`
		page := articlaw.NewPage("https://janewriter.substack.com/p/issue-42", html)

		e := goquery.NewSubstackExtractor()
		result, err := e.Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "Issue 42: On Writing", result.Title)
		assert.Equal(t, "Jane Writer", result.Author)
		assert.Equal(t, "https://janewriter.substack.com/p/issue-42", result.SourceURL)
		assert.Contains(t, result.Content, "<p>First paragraph.</p>")
		assert.Contains(t, result.Content, "<p>Second paragraph.</p>")
	})

	t.Run("falls back to og:title then document title", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
	<title>Doc Title</title>
	<meta property="og:title" content="OG Title">
</head>
<body><div class="body markup"><p>Content</p></div></body>
</html>`
		page := articlaw.NewPage("https://example.substack.com/p/post", html)

		e := goquery.NewSubstackExtractor()
		result, err := e.Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "OG Title", result.Title)
	})

	t.Run("falls back to the subdomain for attribution", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="body markup"><p>Content</p></div></body></html>`
		page := articlaw.NewPage("https://astralcodex.substack.com/p/post", html)

		e := goquery.NewSubstackExtractor()
		result, err := e.Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "astralcodex", result.Author)
	})

	t.Run("strips page chrome from the body", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="body markup">
	<p>Keep me.</p>
	<script>alert("no")</script>
	<nav>Menu</nav>
</div>
</body></html>`
		page := articlaw.NewPage("https://example.substack.com/p/post", html)

		e := goquery.NewSubstackExtractor()
		result, err := e.Extract(page)

		require.NoError(t, err)
		assert.Contains(t, result.Content, "Keep me.")
		assert.NotContains(t, result.Content, "<script>")
		assert.NotContains(t, result.Content, "<nav>")
	})

	t.Run("collapses runs of line breaks into paragraph boundaries", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="body markup">First line.<br><br>Second line.<br>Still second line.</div>
</body></html>`
		page := articlaw.NewPage("https://example.substack.com/p/post", html)

		e := goquery.NewSubstackExtractor()
		result, err := e.Extract(page)

		require.NoError(t, err)
		assert.Contains(t, result.Content, "First line.</p><p>Second line.")
		assert.Contains(t, result.Content, "Second line.<br/>Still second line.")
	})

	t.Run("degrades to empty content when no body container exists", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Empty</title></head><body><div>nothing recognizable</div></body></html>`
		page := articlaw.NewPage("https://example.substack.com/p/post", html)

		e := goquery.NewSubstackExtractor()
		result, err := e.Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "Empty", result.Title)
		assert.Empty(t, result.Content)
	})
}
