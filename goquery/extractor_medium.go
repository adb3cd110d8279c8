package goquery

import (
	"strings"

	"github.com/zoltlabs/articlaw"
)

// Ensure MediumExtractor implements articlaw.Extractor at compile time.
var _ articlaw.Extractor = (*MediumExtractor)(nil)

// MediumExtractor extracts long-form posts from the Medium platform.
type MediumExtractor struct{}

// NewMediumExtractor creates a new MediumExtractor.
func NewMediumExtractor() *MediumExtractor {
	return &MediumExtractor{}
}

// Name returns the extractor's identifier.
func (e *MediumExtractor) Name() string {
	return "medium"
}

// mediumBodySelectors is the priority list of story body containers.
var mediumBodySelectors = []string{"article", ".postArticle-content"}

// Extract processes the page and returns the normalized record.
func (e *MediumExtractor) Extract(page articlaw.Page) (*articlaw.ExtractionResult, error) {
	doc, err := parseDocument(page.HTML)
	if err != nil {
		return nil, articlaw.Errorf(articlaw.EINVALID, "failed to parse HTML: %v", err)
	}

	title := firstText(doc, "h1")
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	author := firstText(doc, `a[data-testid="authorName"]`)
	if author == "" {
		author = metaContent(doc, "author")
	}

	content := ""
	for _, sel := range mediumBodySelectors {
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
