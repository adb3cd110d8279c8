// Package rod provides a browser-backed implementation of
// articlaw.PageSource using headless Chrome. The browsing context stays
// open between snapshots so the orchestrator's retry loop observes
// client-side rendering as it settles.
package rod

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/zoltlabs/articlaw"
)

// Ensure Source implements articlaw.PageSource at compile time.
var _ articlaw.PageSource = (*Source)(nil)

// Source navigates a headless Chrome page once and serves fresh snapshots
// of its rendered document on demand.
type Source struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
	url      string
}

// NewSource launches a headless browser and navigates to the URL.
// Close must be called when the Source is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewSource(ctx context.Context, url string) (*Source, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		return nil, err
	}
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		_ = browser.Close()
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		_ = browser.Close()
		return nil, err
	}

	return &Source{launcher: l, browser: browser, page: page, url: url}, nil
}

// Snapshot returns the page's current rendered state. Each call re-reads
// the live document, so lazy-rendered content shows up on later snapshots.
func (s *Source) Snapshot(ctx context.Context) (articlaw.Page, error) {
	if err := ctx.Err(); err != nil {
		return articlaw.Page{}, err
	}

	html, err := s.page.Context(ctx).HTML()
	if err != nil {
		return articlaw.Page{}, err
	}

	// The page may have redirected since navigation.
	info, err := s.page.Info()
	url := s.url
	if err == nil && info.URL != "" {
		url = info.URL
	}

	return articlaw.NewPage(url, html), nil
}

// Close releases browser resources.
func (s *Source) Close() error {
	return s.browser.Close()
}
