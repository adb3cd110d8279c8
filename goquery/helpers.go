// Package goquery provides the DOM-scraping extraction engine: a platform
// detector and one structural extractor per supported site family, built on
// PuerkitoBio/goquery. Extractors share a common contract: any internal
// lookup failure degrades to an empty field, never to an error.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// metaContent looks up a metadata tag by property first, then by name,
// mirroring the dual og:/name: conventions pages actually use.
func metaContent(doc *goquery.Document, key string) string {
	if content, ok := doc.Find(`meta[property="` + key + `"]`).First().Attr("content"); ok && content != "" {
		return content
	}
	if content, ok := doc.Find(`meta[name="` + key + `"]`).First().Attr("content"); ok && content != "" {
		return content
	}
	return ""
}

// metaFirst returns the first non-empty metadata value among keys, in order.
func metaFirst(doc *goquery.Document, keys ...string) string {
	for _, key := range keys {
		if v := metaContent(doc, key); v != "" {
			return v
		}
	}
	return ""
}

// firstText returns the trimmed text of the first element matching any of
// the selectors, in order. First non-empty wins.
func firstText(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

var brRunRe = regexp.MustCompile(`(?i)(<br\s*/?\s*>[\s\n]*){2,}`)

// collapseBreakRuns converts runs of 2+ line-break elements into paragraph
// boundaries so authorial line structure survives cleaning.
func collapseBreakRuns(html string) string {
	return brRunRe.ReplaceAllString(html, "</p><p>")
}

// chromeSelectors are the descendants removed from every cleaned container.
const chromeSelectors = "script, style, nav, footer, header"

// cleanHTML extracts a container's inner HTML with page chrome removed and
// break runs normalized. Operates on a clone so the live selection is left
// untouched (the document may be re-read by a retrying caller).
func cleanHTML(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}
	clone := sel.Clone()
	clone.Find(chromeSelectors).Remove()
	html, err := clone.Html()
	if err != nil {
		return ""
	}
	return collapseBreakRuns(html)
}

var (
	xTitleSuffixRe = regexp.MustCompile(`\s*/\s*X\s*$`)
	xTitlePrefixRe = regexp.MustCompile(`^.*?\bon X:\s*`)
)

// scrubXTitle removes platform cruft from titles sourced on the microblog
// platform: the " / X" suffix, the "<name> on X: " prefix, and wrapping
// quote marks.
func scrubXTitle(title string) string {
	title = xTitleSuffixRe.ReplaceAllString(title, "")
	title = xTitlePrefixRe.ReplaceAllString(title, "")
	title = strings.TrimPrefix(title, `"`)
	title = strings.TrimSuffix(title, `"`)
	return strings.TrimSpace(title)
}

// titleLimit is the maximum length of a thread title derived from the first
// post's plain text.
const titleLimit = 80

// deriveTitle shortens plain text to the title limit, ellipsizing when
// truncated.
func deriveTitle(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	runes := []rune(text)
	if len(runes) < titleLimit {
		return text
	}
	return string(runes[:titleLimit]) + "..."
}

// parseDocument parses page HTML into a goquery document.
func parseDocument(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}
