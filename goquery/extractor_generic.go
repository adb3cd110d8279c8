package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/zoltlabs/articlaw"
)

// Ensure GenericExtractor implements articlaw.Extractor at compile time.
var _ articlaw.Extractor = (*GenericExtractor)(nil)

// GenericExtractor extracts article-like pages with no platform-specific
// structure. It tries a prioritized list of common article body containers
// and falls back to collecting every paragraph on the page.
type GenericExtractor struct{}

// NewGenericExtractor creates a new GenericExtractor.
func NewGenericExtractor() *GenericExtractor {
	return &GenericExtractor{}
}

// Name returns the extractor's identifier.
func (e *GenericExtractor) Name() string {
	return "generic"
}

// genericBodySelectors is the priority list of common article body
// containers, tried in order. First match wins.
var genericBodySelectors = []string{
	"article",
	`[role="article"]`,
	".post-content",
	".article-content",
	".entry-content",
	".story-body",
	"main",
}

// genericAuthorKeys is the metadata priority list for attribution.
var genericAuthorKeys = []string{"author", "og:author", "article:author", "twitter:creator"}

// Extract processes the page and returns the normalized record.
func (e *GenericExtractor) Extract(page articlaw.Page) (*articlaw.ExtractionResult, error) {
	doc, err := parseDocument(page.HTML)
	if err != nil {
		return nil, articlaw.Errorf(articlaw.EINVALID, "failed to parse HTML: %v", err)
	}

	title := metaContent(doc, "og:title")
	if title == "" {
		title = firstText(doc, "h1")
	}
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	author := metaFirst(doc, genericAuthorKeys...)

	for _, sel := range genericBodySelectors {
		if body := doc.Find(sel).First(); body.Length() > 0 {
			return &articlaw.ExtractionResult{
				Title:     title,
				Author:    author,
				SourceURL: page.URL,
				Content:   cleanHTML(body),
			}, nil
		}
	}

	// No recognizable container: collect every paragraph on the page into
	// a synthetic wrapper.
	var parts []string
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		if inner, err := p.Html(); err == nil && strings.TrimSpace(inner) != "" {
			parts = append(parts, "<p>"+inner+"</p>")
		}
	})

	return &articlaw.ExtractionResult{
		Title:     title,
		Author:    author,
		SourceURL: page.URL,
		Content:   strings.Join(parts, "\n"),
	}, nil
}
