package main

import (
	"fmt"

	"github.com/zoltlabs/articlaw"
	"github.com/zoltlabs/articlaw/clip"
	"github.com/zoltlabs/articlaw/extract"
	"github.com/zoltlabs/articlaw/goquery"
	"github.com/zoltlabs/articlaw/htmltomarkdown"
	articlawhttp "github.com/zoltlabs/articlaw/http"
	"github.com/zoltlabs/articlaw/readability"
	"github.com/zoltlabs/articlaw/rehost"
	"github.com/zoltlabs/articlaw/rod"
	"github.com/zoltlabs/articlaw/s3"
	articlawslog "github.com/zoltlabs/articlaw/slog"
	"golang.org/x/time/rate"
)

// Run executes the clip command: loads the page in a headless browser,
// extracts it, and submits the result as a new article.
func (c *ClipCmd) Run(deps *Dependencies) error {
	session, err := deps.Sessions.Load()
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: run 'articlaw login <email>' first")
		return err
	}

	source, err := rod.NewSource(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer source.Close()

	orchestrator := &extract.Orchestrator{
		Source:     source,
		Extractors: articlawslog.NewLoggingRegistry(newRegistry(), deps.Logger),
		Logger:     deps.Logger,
	}

	result, err := orchestrator.Run(deps.Ctx)
	if err != nil {
		return err
	}

	clipper := &clip.Clipper{
		Articles:  deps.Articles,
		Auth:      deps.Auth,
		Converter: htmltomarkdown.NewConverter(),
		Logger:    deps.Logger,
	}

	if !c.NoImages && deps.Config.S3Bucket != "" {
		store, err := s3.NewStore(deps.Ctx, s3.Config{
			Bucket:        deps.Config.S3Bucket,
			Region:        deps.Config.S3Region,
			PublicBaseURL: deps.Config.S3PublicURL,
		})
		if err != nil {
			return err
		}
		clipper.Rehoster = &rehost.Rehoster{
			Fetcher: articlawhttp.NewImageFetcher(),
			Store:   store,
			Limiter: rate.NewLimiter(rehost.DefaultRate, rehost.DefaultBatchSize),
			Logger:  deps.Logger,
		}
	}

	article, err := clipper.Clip(deps.Ctx, session, result)
	if err != nil {
		return err
	}

	// Persist the session in case the clip refreshed it.
	if err := deps.Sessions.Save(session); err != nil {
		deps.Logger.Warn("session persist failed", "file", deps.Config.SessionFile, "error", err)
	}

	fmt.Fprintf(deps.Stdout, "Clipped %q\n", article.Title)
	if deps.Config.AppURL != "" {
		fmt.Fprintf(deps.Stdout, "%s/a/%s\n", deps.Config.AppURL, article.Slug)
	} else {
		fmt.Fprintln(deps.Stdout, article.Slug)
	}
	return nil
}

// newRegistry wires the platform extractors behind the detector. The
// fallback chain tries the selector-driven generic extractor first, then
// readability as a last resort.
func newRegistry() articlaw.ExtractorRegistry {
	fallback := extract.NewChain(goquery.NewGenericExtractor(), readability.NewExtractor())
	registry := goquery.NewRegistry(goquery.NewDetector(), fallback)
	registry.Register(articlaw.PlatformX, goquery.NewXExtractor())
	registry.Register(articlaw.PlatformSubstack, goquery.NewSubstackExtractor())
	registry.Register(articlaw.PlatformMedium, goquery.NewMediumExtractor())
	registry.Register(articlaw.PlatformNotion, goquery.NewNotionExtractor())
	return registry
}
