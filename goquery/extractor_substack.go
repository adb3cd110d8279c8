package goquery

import (
	"strings"

	"github.com/zoltlabs/articlaw"
)

// Ensure SubstackExtractor implements articlaw.Extractor at compile time.
var _ articlaw.Extractor = (*SubstackExtractor)(nil)

// SubstackExtractor extracts newsletter posts from the Substack platform.
type SubstackExtractor struct{}

// NewSubstackExtractor creates a new SubstackExtractor.
func NewSubstackExtractor() *SubstackExtractor {
	return &SubstackExtractor{}
}

// Name returns the extractor's identifier.
func (e *SubstackExtractor) Name() string {
	return "substack"
}

// substackBodySelectors is the priority list of post body containers.
// First match wins.
var substackBodySelectors = []string{".body.markup", ".post-content"}

// Extract processes the page and returns the normalized record.
func (e *SubstackExtractor) Extract(page articlaw.Page) (*articlaw.ExtractionResult, error) {
	doc, err := parseDocument(page.HTML)
	if err != nil {
		return nil, articlaw.Errorf(articlaw.EINVALID, "failed to parse HTML: %v", err)
	}

	title := firstText(doc, "h1.post-title")
	if title == "" {
		title = metaContent(doc, "og:title")
	}
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	author := firstText(doc, ".author-name")
	if author == "" {
		// The newsletter subdomain is the publication name.
		author = strings.TrimSuffix(page.Host, ".substack.com")
	}

	content := ""
	for _, sel := range substackBodySelectors {
		if body := doc.Find(sel).First(); body.Length() > 0 {
			content = cleanHTML(body)
			break
		}
	}

	return &articlaw.ExtractionResult{
		Title:     title,
		Author:    author,
		SourceURL: page.URL,
		Content:   content,
	}, nil
}
