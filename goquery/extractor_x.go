package goquery

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/zoltlabs/articlaw"
)

// Ensure XExtractor implements articlaw.Extractor at compile time.
var _ articlaw.Extractor = (*XExtractor)(nil)

// XExtractor extracts content from the X (Twitter) platform. It handles two
// page shapes: long-form articles (a dedicated article view with a flat
// block list) and tweet threads (a contiguous run of posts by the page's
// subject handle).
type XExtractor struct{}

// NewXExtractor creates a new XExtractor.
func NewXExtractor() *XExtractor {
	return &XExtractor{}
}

// Name returns the extractor's identifier.
func (e *XExtractor) Name() string {
	return "x"
}

// Extract processes the page and returns the normalized record.
func (e *XExtractor) Extract(page articlaw.Page) (*articlaw.ExtractionResult, error) {
	doc, err := parseDocument(page.HTML)
	if err != nil {
		return nil, articlaw.Errorf(articlaw.EINVALID, "failed to parse HTML: %v", err)
	}

	handle := subjectHandle(page.URL)
	author := "@" + handle + " on X"

	if articleView := doc.Find(`[data-testid="twitterArticleReadView"]`).First(); articleView.Length() > 0 {
		return e.extractArticle(doc, articleView, page.URL, author), nil
	}
	return e.extractThread(doc, page.URL, handle, author), nil
}

// subjectHandle returns the first path segment of the page URL, which on
// this platform is the profile handle the page belongs to.
func subjectHandle(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	parts := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

// listState tracks whether the block walk is currently inside a list
// container. Close transitions are emitted whenever a block's list
// membership changes or the block sequence ends.
type listState int

const (
	listNone listState = iota
	listUnordered
	listOrdered
)

// extractArticle handles the long-form article view: an ordered sequence of
// content blocks, each classified by structural predicates evaluated in
// first-match-wins order (separator, media, heading, list item, paragraph).
func (e *XExtractor) extractArticle(doc *goquery.Document, view *goquery.Selection, pageURL, author string) *articlaw.ExtractionResult {
	title := strings.TrimSpace(view.Find(`[data-testid="twitter-article-title"]`).First().Text())

	var parts []string
	state := listNone

	closeList := func() {
		switch state {
		case listUnordered:
			parts = append(parts, "</ul>")
		case listOrdered:
			parts = append(parts, "</ol>")
		}
		state = listNone
	}

	body := view.Find(`[data-testid="twitterArticleRichTextView"]`).First()
	body.Find(`[data-block="true"]`).Each(func(_ int, block *goquery.Selection) {
		// Separators close any open list before the rule.
		if block.Find(`[role="separator"]`).Length() > 0 {
			closeList()
			parts = append(parts, "<hr>")
			return
		}

		// Media blocks are sections; pull the image reference if present.
		if goquery.NodeName(block) == "section" {
			if src, ok := block.Find("img[src]").First().Attr("src"); ok {
				alt, _ := block.Find("img[src]").First().Attr("alt")
				parts = append(parts, fmt.Sprintf(`<img src="%s" alt="%s">`, html.EscapeString(src), html.EscapeString(alt)))
			}
			return
		}

		content := richTextHTML(block)
		if content == "" {
			return
		}

		class, _ := block.Attr("class")
		isH2 := goquery.NodeName(block) == "h2" || strings.Contains(class, "longform-header-two")
		isH3 := strings.Contains(class, "longform-header-three")
		isUl := strings.Contains(class, "longform-unordered-list-item")
		isOl := strings.Contains(class, "longform-ordered-list-item")

		if !isUl && state == listUnordered {
			closeList()
		}
		if !isOl && state == listOrdered {
			closeList()
		}

		switch {
		case isH2:
			parts = append(parts, "<h2>"+content+"</h2>")
		case isH3:
			parts = append(parts, "<h3>"+content+"</h3>")
		case isUl:
			if state != listUnordered {
				parts = append(parts, "<ul>")
				state = listUnordered
			}
			parts = append(parts, "<li>"+content+"</li>")
		case isOl:
			if state != listOrdered {
				parts = append(parts, "<ol>")
				state = listOrdered
			}
			parts = append(parts, "<li>"+content+"</li>")
		default:
			parts = append(parts, "<p>"+content+"</p>")
		}
	})
	closeList()

	if title == "" {
		title = scrubXTitle(doc.Find("title").First().Text())
	}

	return &articlaw.ExtractionResult{
		Title:     title,
		Author:    author,
		SourceURL: pageURL,
		Content:   strings.Join(parts, "\n"),
	}
}

// richTextHTML rebuilds clean inline HTML from a rich-text block's text
// spans, preserving bold emphasis declared via inline styles.
func richTextHTML(block *goquery.Selection) string {
	var out strings.Builder
	block.Find(`[data-text="true"]`).Each(func(_ int, span *goquery.Selection) {
		text := html.EscapeString(span.Text())
		if text == "" {
			return
		}
		if isBoldSpan(span) {
			out.WriteString("<strong>" + text + "</strong>")
		} else {
			out.WriteString(text)
		}
	})
	return out.String()
}

// isBoldSpan walks up to the nearest offset-keyed ancestor and checks its
// inline style for a bold font weight.
func isBoldSpan(span *goquery.Selection) bool {
	parent := span.Closest("[data-offset-key]")
	if parent.Length() == 0 {
		return false
	}
	style, _ := parent.Attr("style")
	style = strings.ReplaceAll(style, " ", "")
	return strings.Contains(style, "font-weight:bold") || strings.Contains(style, "font-weight:700")
}

// extractThread collects the contiguous run of posts authored by the
// subject handle. Collection stops at the first post by anyone else once at
// least one post has been gathered: interleaved replies are not part of the
// thread.
func (e *XExtractor) extractThread(doc *goquery.Document, pageURL, handle, author string) *articlaw.ExtractionResult {
	var (
		fragments  []string
		metas      []articlaw.PostMeta
		firstPlain string
	)

	doc.Find(`article[data-testid="tweet"]`).EachWithBreak(func(_ int, article *goquery.Selection) bool {
		if !authoredBy(article, handle) && len(fragments) > 0 {
			return false
		}

		textSel := article.Find(`[data-testid="tweetText"]`).First()
		if textSel.Length() == 0 {
			textSel = article.Find("div[lang]").First()
		}
		if textSel.Length() == 0 {
			return true
		}

		textHTML, err := textSel.Html()
		if err != nil {
			return true
		}
		// Literal newlines would collapse when the fragment is rendered.
		textHTML = strings.ReplaceAll(textHTML, "\n", "<br>")

		if firstPlain == "" {
			firstPlain = textSel.Text()
		}

		fragment := textHTML
		images := postImages(article)
		for _, src := range images {
			fragment += fmt.Sprintf(`<img src="%s" alt="">`, html.EscapeString(src))
		}
		if quote := quotedPostHTML(article); quote != "" {
			fragment += quote
		}
		fragments = append(fragments, fragment)
		metas = append(metas, postMeta(article, textHTML, images))
		return true
	})

	title := deriveTitle(firstPlain)
	content := ""
	if len(fragments) > 0 {
		wrapped := make([]string, len(fragments))
		for i, f := range fragments {
			wrapped[i] = `<div class="tweet">` + f + `</div>`
		}
		content = strings.Join(wrapped, "<hr>")
	}

	// Fall back to page metadata when DOM scraping yields nothing.
	if title == "" {
		if ogTitle := metaContent(doc, "og:title"); ogTitle != "" {
			title = ogTitle
		} else if docTitle := doc.Find("title").First().Text(); docTitle != "" {
			title = docTitle
		} else {
			title = "Thread by @" + handle
		}
	}
	title = scrubXTitle(title)

	if content == "" {
		if desc := metaContent(doc, "og:description"); desc != "" {
			content = "<p>" + html.EscapeString(desc) + "</p>"
		}
	}

	return &articlaw.ExtractionResult{
		Title:        title,
		Author:       author,
		SourceURL:    pageURL,
		Content:      content,
		PostMetadata: metas,
	}
}

// authoredBy reports whether any profile link in the post points at the
// subject handle. The comparison is an exact path-segment match, not a
// substring match, so "dan" never matches "danfan".
func authoredBy(article *goquery.Selection, handle string) bool {
	if handle == "" {
		return false
	}
	found := false
	article.Find(`a[role="link"]`).EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href, ok := link.Attr("href")
		if !ok {
			return true
		}
		if linkHandle(href) == strings.ToLower(handle) {
			found = true
			return false
		}
		return true
	})
	return found
}

// linkHandle returns the lowercased first path segment of a profile link.
func linkHandle(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	parts := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })
	if len(parts) == 0 {
		return ""
	}
	return strings.ToLower(parts[0])
}

// postImages returns the post's attached media images, excluding avatars
// and emoji glyphs.
func postImages(article *goquery.Selection) []string {
	var images []string
	article.Find("img[src]").Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		if src == "" || strings.Contains(src, "profile_images") || strings.Contains(src, "emoji") {
			return
		}
		images = append(images, src)
	})
	return images
}

// quotedPostHTML renders an embedded quoted post as an attributed
// blockquote, or returns the empty string when the post quotes nothing.
func quotedPostHTML(article *goquery.Selection) string {
	quote := article.Find(`div[role="link"][tabindex="0"]`).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Find(`[data-testid="tweetText"]`).Length() > 0
	}).First()
	if quote.Length() == 0 {
		return ""
	}

	quotedText, err := quote.Find(`[data-testid="tweetText"]`).First().Html()
	if err != nil || quotedText == "" {
		return ""
	}
	quotedText = strings.ReplaceAll(quotedText, "\n", "<br>")

	name := strings.TrimSpace(quote.Find(`[data-testid="User-Name"] span`).First().Text())
	attribution := ""
	if name != "" {
		attribution = "<p><strong>" + html.EscapeString(name) + "</strong></p>"
	}
	return "<blockquote>" + attribution + "<p>" + quotedText + "</p></blockquote>"
}

// postMeta captures the structured per-post metadata used by the card
// renderer.
func postMeta(article *goquery.Selection, textHTML string, images []string) articlaw.PostMeta {
	meta := articlaw.PostMeta{
		TextHTML: textHTML,
		Images:   images,
	}

	userName := article.Find(`[data-testid="User-Name"]`).First()
	userName.Find("span").EachWithBreak(func(_ int, span *goquery.Selection) bool {
		text := strings.TrimSpace(span.Text())
		if text == "" {
			return true
		}
		if strings.HasPrefix(text, "@") {
			if meta.Handle == "" {
				meta.Handle = text
			}
		} else if meta.DisplayName == "" {
			meta.DisplayName = text
		}
		return meta.Handle == "" || meta.DisplayName == ""
	})

	if avatar, ok := article.Find(`img[src*="profile_images"]`).First().Attr("src"); ok {
		meta.AvatarURL = avatar
	}
	if ts, ok := article.Find("time").First().Attr("datetime"); ok {
		meta.Timestamp = ts
	}
	return meta
}
