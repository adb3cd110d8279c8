package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/zoltlabs/articlaw"
)

// Ensure Detector implements articlaw.PlatformDetector at compile time.
var _ articlaw.PlatformDetector = (*Detector)(nil)

// Detector classifies pages by source platform. Host rules are checked
// first; structural probes cover pages served from ambiguous origins
// (custom domains, embedded apps). Detection is total: every page resolves
// to a platform, with PlatformGeneric as the ultimate fallback.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the platform for a page. It never fails.
func (d *Detector) Detect(page articlaw.Page) articlaw.Platform {
	host := strings.ToLower(page.Host)

	switch {
	case host == "x.com" || host == "twitter.com":
		return articlaw.PlatformX
	case strings.HasSuffix(host, ".substack.com"):
		return articlaw.PlatformSubstack
	case host == "medium.com":
		return articlaw.PlatformMedium
	case host == "notion.so" || strings.HasSuffix(host, ".notion.site"):
		return articlaw.PlatformNotion
	}

	doc, err := parseDocument(page.HTML)
	if err != nil {
		return articlaw.PlatformGeneric
	}

	// Medium publications on custom domains carry the app-link meta tag.
	if d.hasSelector(doc, `meta[property="al:android:app_name"][content="Medium"]`) {
		return articlaw.PlatformMedium
	}

	// Substack newsletters on custom domains keep the platform body marker.
	if d.hasSelector(doc, ".body.markup") && d.hasSelector(doc, "h1.post-title") {
		return articlaw.PlatformSubstack
	}

	// Notion pages behind custom domains still render the block container.
	if d.hasSelector(doc, ".notion-page-content") {
		return articlaw.PlatformNotion
	}

	return articlaw.PlatformGeneric
}

// hasSelector checks if the document contains at least one element matching
// the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
