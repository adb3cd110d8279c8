// Package readability provides a generic extractor of last resort built on
// go-readability. It is wired behind the selector-driven generic extractor
// for pages where no recognizable container yields content.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/zoltlabs/articlaw"
)

// Ensure Extractor implements articlaw.Extractor at compile time.
var _ articlaw.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name returns the extractor's identifier.
func (e *Extractor) Name() string {
	return "readability"
}

// Extract processes the page and returns the normalized record.
func (e *Extractor) Extract(page articlaw.Page) (*articlaw.ExtractionResult, error) {
	if page.HTML == "" {
		return nil, articlaw.Errorf(articlaw.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(page.HTML), nil)
	if err != nil {
		return nil, err
	}

	return &articlaw.ExtractionResult{
		Title:     article.Title,
		Author:    article.Byline,
		SourceURL: page.URL,
		Content:   article.Content,
	}, nil
}
