package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoltlabs/articlaw"
	"github.com/zoltlabs/articlaw/goquery"
)

// Ensure GenericExtractor implements articlaw.Extractor at compile time.
var _ articlaw.Extractor = (*goquery.GenericExtractor)(nil)

func TestGenericExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts a main container with og:title metadata", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
	<title>Doc Title</title>
	<meta property="og:title" content="Test Article">
</head>
<body>
<main>
	<p>First.</p>
	<p>Second.</p>
	<p>Third.</p>
</main>
</body>
</html>`
		page := articlaw.NewPage("https://example.com/post", html)

		e := goquery.NewGenericExtractor()
		result, err := e.Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "Test Article", result.Title)
		assert.Equal(t, "https://example.com/post", result.SourceURL)
		assert.Contains(t, result.Content, "<p>First.</p>")
		assert.Contains(t, result.Content, "<p>Second.</p>")
		assert.Contains(t, result.Content, "<p>Third.</p>")
	})

	t.Run("prefers article containers over main", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<main><p>Wrapper text.</p>
<article><p>Article text.</p></article>
</main>
</body></html>`
		page := articlaw.NewPage("https://example.com/post", html)

		e := goquery.NewGenericExtractor()
		result, err := e.Extract(page)

		require.NoError(t, err)
		assert.Contains(t, result.Content, "Article text.")
		assert.NotContains(t, result.Content, "Wrapper text.")
	})

	t.Run("falls back from og:title to h1 to document title", func(t *testing.T) {
		t.Parallel()

		html := `<html>
<head><title>Doc Title</title></head>
<body><main><h1>Heading Title</h1><p>Content</p></main></body>
</html>`
		page := articlaw.NewPage("https://example.com/post", html)

		e := goquery.NewGenericExtractor()
		result, err := e.Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "Heading Title", result.Title)
	})

	t.Run("reads attribution from the metadata priority list", func(t *testing.T) {
		t.Parallel()

		html := `<html>
<head>
	<title>T</title>
	<meta name="twitter:creator" content="@creator">
	<meta name="author" content="Real Author">
</head>
<body><main><p>Content</p></main></body>
</html>`
		page := articlaw.NewPage("https://example.com/post", html)

		e := goquery.NewGenericExtractor()
		result, err := e.Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "Real Author", result.Author)
	})

	t.Run("strips chrome from the selected container", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article>
	<header>Site header</header>
	<p>Body text.</p>
	<script>tracking()</script>
	<footer>Site footer</footer>
</article>
</body></html>`
		page := articlaw.NewPage("https://example.com/post", html)

		e := goquery.NewGenericExtractor()
		result, err := e.Extract(page)

		require.NoError(t, err)
		assert.Contains(t, result.Content, "Body text.")
		assert.NotContains(t, result.Content, "Site header")
		assert.NotContains(t, result.Content, "Site footer")
		assert.NotContains(t, result.Content, "tracking()")
	})

	t.Run("collects loose paragraphs when no container matches", func(t *testing.T) {
		t.Parallel()

		html := `<html>
<head><title>Loose</title></head>
<body>
<div><p>One.</p></div>
<div><p>Two.</p></div>
</body>
</html>`
		page := articlaw.NewPage("https://example.com/post", html)

		e := goquery.NewGenericExtractor()
		result, err := e.Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "<p>One.</p>\n<p>Two.</p>", result.Content)
	})

	t.Run("degrades to empty fields on an empty page", func(t *testing.T) {
		t.Parallel()

		page := articlaw.NewPage("https://example.com/post", "<html><body></body></html>")

		e := goquery.NewGenericExtractor()
		result, err := e.Extract(page)

		require.NoError(t, err)
		assert.Empty(t, result.Title)
		assert.Empty(t, result.Author)
		assert.Empty(t, result.Content)
	})
}
