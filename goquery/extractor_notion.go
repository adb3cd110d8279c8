package goquery

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/zoltlabs/articlaw"
)

// Ensure NotionExtractor implements articlaw.Extractor at compile time.
var _ articlaw.Extractor = (*NotionExtractor)(nil)

// NotionExtractor extracts pages from the Notion platform. Content is
// assembled block by block from the flat list of content blocks, each
// classified by its class-name convention. Predicates are evaluated in
// order with first-match-wins semantics; the ordering disambiguates
// overlapping markers (a callout block also matches the generic text
// lookup).
type NotionExtractor struct{}

// NewNotionExtractor creates a new NotionExtractor.
func NewNotionExtractor() *NotionExtractor {
	return &NotionExtractor{}
}

// Name returns the extractor's identifier.
func (e *NotionExtractor) Name() string {
	return "notion"
}

// notionTitleSelectors is the priority list of title sources. First
// non-empty wins; metadata and the document title follow.
var notionTitleSelectors = []string{
	".notion-page-block .notranslate",
	"h1[data-block-id]",
	".notion-title-input",
	"h1",
}

// notionContentSelectors is the priority list of page content containers.
var notionContentSelectors = []string{
	".notion-page-content",
	`[class*="page-content"]`,
	".layout-content",
	"main",
}

var notionTitleSuffixRe = regexp.MustCompile(` \|.*$`)

// Extract processes the page and returns the normalized record.
func (e *NotionExtractor) Extract(page articlaw.Page) (*articlaw.ExtractionResult, error) {
	doc, err := parseDocument(page.HTML)
	if err != nil {
		return nil, articlaw.Errorf(articlaw.EINVALID, "failed to parse HTML: %v", err)
	}

	title := firstText(doc, notionTitleSelectors...)
	if title == "" {
		title = metaContent(doc, "og:title")
	}
	if title == "" {
		title = strings.TrimSpace(notionTitleSuffixRe.ReplaceAllString(doc.Find("title").First().Text(), ""))
	}

	author := metaFirst(doc, "og:site_name", "author")

	var container *goquery.Selection
	for _, sel := range notionContentSelectors {
		if c := doc.Find(sel).First(); c.Length() > 0 {
			container = c
			break
		}
	}
	if container == nil {
		return &articlaw.ExtractionResult{
			Title:     title,
			Author:    author,
			SourceURL: page.URL,
		}, nil
	}

	var parts []string
	container.Find("[data-block-id]").Each(func(_ int, block *goquery.Selection) {
		if fragment := notionBlockHTML(block); fragment != "" {
			parts = append(parts, fragment)
		}
	})

	content := strings.Join(parts, "\n")
	if content == "" {
		// Block walk yielded nothing; fall back to the whole container
		// with chrome stripped.
		content = cleanHTML(container)
	}

	return &articlaw.ExtractionResult{
		Title:     title,
		Author:    author,
		SourceURL: page.URL,
		Content:   content,
	}, nil
}

// notionBlockHTML classifies one content block by its class-name convention
// and renders the matching semantic element. Returns the empty string for
// blocks that contribute nothing (the title block, empty blocks).
func notionBlockHTML(block *goquery.Selection) string {
	class, _ := block.Attr("class")

	// The page title block is captured separately.
	if block.Closest(".notion-page-block").Length() > 0 && block.Find(".notranslate").Length() > 0 {
		return ""
	}

	// Headings: levels 2-4, most specific class first.
	if strings.Contains(class, "header-block") {
		text := strings.TrimSpace(block.Text())
		if text == "" {
			return ""
		}
		switch {
		case strings.Contains(class, "sub_sub_header"):
			return "<h4>" + html.EscapeString(text) + "</h4>"
		case strings.Contains(class, "sub_header"):
			return "<h3>" + html.EscapeString(text) + "</h3>"
		default:
			return "<h2>" + html.EscapeString(text) + "</h2>"
		}
	}

	// Images.
	if strings.Contains(class, "image-block") {
		if src, ok := block.Find("img[src]").First().Attr("src"); ok {
			alt, _ := block.Find("img[src]").First().Attr("alt")
			return `<img src="` + src + `" alt="` + html.EscapeString(alt) + `">`
		}
	}

	// Code blocks are preformatted verbatim.
	if code := block.Find("[class*='code-block'] code, pre code").First(); code.Length() > 0 {
		return "<pre><code>" + html.EscapeString(code.Text()) + "</code></pre>"
	}

	// Callouts and quotes both render as blockquotes.
	if strings.Contains(class, "callout-block") || strings.Contains(class, "quote-block") {
		if text := strings.TrimSpace(block.Text()); text != "" {
			return "<blockquote>" + html.EscapeString(text) + "</blockquote>"
		}
		return ""
	}

	// Bulleted and numbered list items.
	if strings.Contains(class, "list-block") || strings.Contains(class, "bulleted") || strings.Contains(class, "numbered") {
		if text := strings.TrimSpace(block.Text()); text != "" {
			return "<li>" + html.EscapeString(text) + "</li>"
		}
		return ""
	}

	// Toggles render as bold paragraphs.
	if strings.Contains(class, "toggle-block") {
		if text := strings.TrimSpace(block.Text()); text != "" {
			return "<p><strong>" + html.EscapeString(text) + "</strong></p>"
		}
		return ""
	}

	// Dividers.
	if strings.Contains(class, "divider-block") || block.Find("hr").Length() > 0 {
		return "<hr>"
	}

	// Default rich-text block: keep inner HTML so links and emphasis
	// survive.
	for _, sel := range []string{"[data-content-editable-leaf]", "[placeholder]", ".notranslate"} {
		if textEl := block.Find(sel).First(); textEl.Length() > 0 {
			if inner, err := textEl.Html(); err == nil {
				if inner = strings.TrimSpace(inner); inner != "" {
					return "<p>" + inner + "</p>"
				}
			}
			return ""
		}
	}

	// Unrecognized but non-empty blocks fall back to plain paragraphs.
	if text := strings.TrimSpace(block.Text()); len(text) > 1 {
		return "<p>" + html.EscapeString(text) + "</p>"
	}
	return ""
}
