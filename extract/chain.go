package extract

import "github.com/zoltlabs/articlaw"

// Ensure Chain implements articlaw.Extractor at compile time.
var _ articlaw.Extractor = (*Chain)(nil)

// Chain tries extractors in order, returning the first result with
// non-empty content. When every extractor comes back empty, the first
// result is returned so partial title/author metadata survives.
type Chain struct {
	extractors []articlaw.Extractor
}

// NewChain creates a Chain over the given extractors.
func NewChain(extractors ...articlaw.Extractor) *Chain {
	return &Chain{extractors: extractors}
}

// Name returns the chain's identifier.
func (c *Chain) Name() string {
	return "chain"
}

// Extract processes the page with each extractor until one yields content.
func (c *Chain) Extract(page articlaw.Page) (*articlaw.ExtractionResult, error) {
	var first *articlaw.ExtractionResult
	var lastErr error
	for _, e := range c.extractors {
		result, err := e.Extract(page)
		if err != nil {
			lastErr = err
			continue
		}
		if result.Content != "" {
			return result, nil
		}
		if first == nil {
			first = result
		}
	}
	if first != nil {
		return first, nil
	}
	if lastErr == nil {
		lastErr = articlaw.Errorf(articlaw.EUNPROCESSABLE, "no extractor produced a result")
	}
	return nil, lastErr
}
