package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoltlabs/articlaw"
	"github.com/zoltlabs/articlaw/goquery"
)

// Ensure NotionExtractor implements articlaw.Extractor at compile time.
var _ articlaw.Extractor = (*goquery.NotionExtractor)(nil)

func TestNotionExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("assembles content block by block", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>My Page | Notion</title></head>
<body>
<div class="notion-page-content">
	<div data-block-id="1" class="notion-header-block"><div>Section One</div></div>
	<div data-block-id="2" class="notion-text-block"><div data-content-editable-leaf="true">A paragraph with <a href="https://example.com">a link</a>.</div></div>
	<div data-block-id="3" class="notion-sub_header-block"><div>Subsection</div></div>
	<div data-block-id="4" class="notion-quote-block"><div>Wise words.</div></div>
	<div data-block-id="5" class="notion-bulleted_list-block"><div>bullet item</div></div>
	<div data-block-id="6" class="notion-divider-block"><hr></div>
	<div data-block-id="7" class="notion-image-block"><img src="https://img.example.com/pic.png" alt="diagram"></div>
</div>
</body>
</html>`
		page := articlaw.NewPage("https://acme.notion.site/My-Page-abc", html)

		e := goquery.NewNotionExtractor()
		result, err := e.Extract(page)

		require.NoError(t, err)
		assert.Contains(t, result.Content, "<h2>Section One</h2>")
		assert.Contains(t, result.Content, `<a href="https://example.com">a link</a>`)
		assert.Contains(t, result.Content, "<h3>Subsection</h3>")
		assert.Contains(t, result.Content, "<blockquote>Wise words.</blockquote>")
		assert.Contains(t, result.Content, "<li>bullet item</li>")
		assert.Contains(t, result.Content, "<hr>")
		assert.Contains(t, result.Content, `<img src="https://img.example.com/pic.png" alt="diagram">`)
	})

	t.Run("orders heading classification most specific first", func(t *testing.T) {
		t.Parallel()

		// A sub_sub_header class also contains "sub_header" as a substring;
		// the deeper level must win.
		html := `<html><body>
<div class="notion-page-content">
	<div data-block-id="1" class="notion-sub_sub_header-block"><div>Deep heading</div></div>
</div>
</body></html>`
		page := articlaw.NewPage("https://acme.notion.site/p", html)

		e := goquery.NewNotionExtractor()
		result, err := e.Extract(page)

		require.NoError(t, err)
		assert.Contains(t, result.Content, "<h4>Deep heading</h4>")
		assert.NotContains(t, result.Content, "<h3>")
	})

	t.Run("renders code blocks preformatted and escaped", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="notion-page-content">
	<div data-block-id="1" class="notion-code-block"><pre><code>if x < 1 { return }</code></pre></div>
</div>
</body></html>`
		page := articlaw.NewPage("https://acme.notion.site/p", html)

		e := goquery.NewNotionExtractor()
		result, err := e.Extract(page)

		require.NoError(t, err)
		assert.Contains(t, result.Content, "<pre><code>if x &lt; 1 { return }</code></pre>")
	})

	t.Run("derives the title from the page block and scrubs the doc title suffix", func(t *testing.T) {
		t.Parallel()

		html := `<html>
<head><title>Roadmap | Notion</title></head>
<body>
<div class="notion-page-content">
	<div data-block-id="1" class="notion-text-block"><div data-content-editable-leaf="true">Body text.</div></div>
</div>
</body>
</html>`
		page := articlaw.NewPage("https://acme.notion.site/p", html)

		e := goquery.NewNotionExtractor()
		result, err := e.Extract(page)

		require.NoError(t, err)
		assert.Equal(t, "Roadmap", result.Title)
	})

	t.Run("falls back to the container when the block walk yields nothing", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="notion-page-content">
	<p>Plain markup without block ids.</p>
</div>
</body></html>`
		page := articlaw.NewPage("https://acme.notion.site/p", html)

		e := goquery.NewNotionExtractor()
		result, err := e.Extract(page)

		require.NoError(t, err)
		assert.Contains(t, result.Content, "Plain markup without block ids.")
	})

	t.Run("degrades to empty content when no container exists", func(t *testing.T) {
		t.Parallel()

		page := articlaw.NewPage("https://acme.notion.site/p", "<html><head><title>T</title></head><body></body></html>")

		e := goquery.NewNotionExtractor()
		result, err := e.Extract(page)

		require.NoError(t, err)
		assert.Empty(t, result.Content)
	})
}
