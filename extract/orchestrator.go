// Package extract provides extraction orchestration. It coordinates
// platform detection, extractor selection and the retry loop that waits
// out client-side rendering on the microblog platform.
package extract

import (
	"context"
	"log/slog"
	"time"

	"github.com/zoltlabs/articlaw"
)

// Retry defaults for the microblog platform, whose content tends to
// lazy-render after page load. Retries wait for rendering to settle; they
// do not race alternatives, so the loop is sequential.
const (
	DefaultMaxAttempts = 10
	DefaultRetryDelay  = 300 * time.Millisecond
)

// Orchestrator runs one extraction against a page source.
type Orchestrator struct {
	Source     articlaw.PageSource
	Extractors articlaw.ExtractorRegistry

	// MaxAttempts bounds the retry loop for the microblog platform.
	// Zero means DefaultMaxAttempts. All other platforms get exactly one
	// attempt.
	MaxAttempts int

	// RetryDelay is the fixed inter-attempt delay. Zero means
	// DefaultRetryDelay. Exposed for tests.
	RetryDelay time.Duration

	// Logger, when set, records per-attempt progress.
	Logger *slog.Logger
}

// Run snapshots the page, classifies it and invokes the matching extractor.
// The microblog platform is retried with fresh snapshots until content
// appears or attempts are exhausted. An empty-but-present result is
// success: partial extraction beats total failure. Run errors only when no
// attempt produced a result at all.
func (o *Orchestrator) Run(ctx context.Context) (*articlaw.ExtractionResult, error) {
	page, err := o.Source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	extractor, platform := o.Extractors.GetForPage(page)

	attempts := 1
	if platform == articlaw.PlatformX {
		attempts = o.MaxAttempts
		if attempts <= 0 {
			attempts = DefaultMaxAttempts
		}
	}
	delay := o.RetryDelay
	if delay <= 0 {
		delay = DefaultRetryDelay
	}

	var result *articlaw.ExtractionResult
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			if page, err = o.Source.Snapshot(ctx); err != nil {
				lastErr = err
				continue
			}
		}

		r, err := extractor.Extract(page)
		if err != nil {
			lastErr = err
			if o.Logger != nil {
				o.Logger.Warn("extraction attempt failed",
					"platform", string(platform),
					"attempt", attempt+1,
					"error", err,
				)
			}
			continue
		}
		result = r
		if result.Content != "" {
			break
		}
	}

	if result == nil {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, articlaw.Errorf(articlaw.EUNPROCESSABLE, "could not extract page content")
	}

	if o.Logger != nil {
		o.Logger.Info("extraction complete",
			"platform", string(platform),
			"extractor", extractor.Name(),
			"title", result.Title,
			"posts", len(result.PostMetadata),
		)
	}
	return result, nil
}
