package articlaw

import (
	"context"
	"net/url"
	"strings"
)

// Page is a rendered document snapshot together with its origin.
// Extractors receive the page explicitly; there is no ambient document state.
type Page struct {
	// URL is the canonical address of the page.
	URL string

	// Host is the page's hostname with any leading "www." stripped.
	Host string

	// HTML is the rendered markup of the document at snapshot time.
	HTML string
}

// NewPage builds a Page from a URL and rendered HTML, deriving Host.
func NewPage(rawURL, html string) Page {
	host := ""
	if u, err := url.Parse(rawURL); err == nil {
		host = strings.TrimPrefix(u.Hostname(), "www.")
	}
	return Page{URL: rawURL, Host: host, HTML: html}
}

// ExtractionResult is the normalized record produced by one extraction.
// Fields are best-effort: missing signals degrade to empty strings, never
// to an error.
type ExtractionResult struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	SourceURL string `json:"source_url"`

	// Content is a semantic HTML fragment: paragraphs, headings, lists,
	// blockquotes, images and horizontal rules only. No scripts, styles
	// or navigation chrome.
	Content string `json:"content"`

	// PostMetadata is present only for multi-post thread sources, in
	// display order. When non-empty, the rendered card HTML built from it
	// supersedes Content.
	PostMetadata []PostMeta `json:"post_metadata,omitempty"`
}

// PostMeta holds structured metadata for a single micro-post in a thread.
type PostMeta struct {
	DisplayName string   `json:"display_name"`
	Handle      string   `json:"handle"`
	AvatarURL   string   `json:"avatar_url"`
	Timestamp   string   `json:"timestamp"` // ISO-8601 or empty
	Images      []string `json:"images,omitempty"`
	TextHTML    string   `json:"text_html"`
}

// Platform identifies a supported source site family.
type Platform string

// Supported platforms. PlatformGeneric is the ultimate fallback; detection
// never fails.
const (
	PlatformUnknown  Platform = ""
	PlatformX        Platform = "x"
	PlatformSubstack Platform = "substack"
	PlatformMedium   Platform = "medium"
	PlatformNotion   Platform = "notion"
	PlatformGeneric  Platform = "generic"
)

// Extractor turns a page snapshot into a normalized extraction result.
type Extractor interface {
	// Extract processes the page and returns the normalized record.
	// Internal lookup failures degrade to empty fields; an error is
	// returned only when the page markup cannot be parsed at all.
	Extract(page Page) (*ExtractionResult, error)

	// Name returns the extractor's identifier (e.g., "x", "generic").
	Name() string
}

// PlatformDetector classifies a page's source platform.
type PlatformDetector interface {
	// Detect inspects the page origin and, where the origin is ambiguous,
	// structural markers. It is total: every page resolves to a platform,
	// defaulting to PlatformGeneric.
	Detect(page Page) Platform
}

// ExtractorRegistry manages platform-specific extractors.
type ExtractorRegistry interface {
	// Get returns the extractor for a specific platform, or nil if none
	// is registered.
	Get(platform Platform) Extractor

	// GetForPage detects the platform and returns the matching extractor,
	// falling back to the generic extractor.
	GetForPage(page Page) (Extractor, Platform)

	// Register adds an extractor for a platform.
	Register(platform Platform, extractor Extractor)

	// List returns all registered platforms.
	List() []Platform
}

// PageSource produces fresh snapshots of a browsing context. The microblog
// platform lazy-renders content after load, so the orchestrator's retry
// loop takes a new snapshot per attempt.
type PageSource interface {
	Snapshot(ctx context.Context) (Page, error)

	// Close releases any resources held by the source.
	Close() error
}
