package goquery

import "github.com/zoltlabs/articlaw"

var _ articlaw.ExtractorRegistry = (*Registry)(nil)

// Registry manages platform-specific extractors and auto-detects the
// platform from page state. It uses a PlatformDetector to classify the page
// and returns the matching extractor, falling back to a generic extractor
// when no specific one is registered.
type Registry struct {
	detector   articlaw.PlatformDetector
	fallback   articlaw.Extractor
	extractors map[articlaw.Platform]articlaw.Extractor
}

// NewRegistry creates a new Registry with the given detector and fallback
// extractor. The fallback is used whenever GetForPage cannot find a
// registered extractor for the detected platform.
func NewRegistry(detector articlaw.PlatformDetector, fallback articlaw.Extractor) *Registry {
	return &Registry{
		detector:   detector,
		fallback:   fallback,
		extractors: make(map[articlaw.Platform]articlaw.Extractor),
	}
}

// Get returns the extractor for a specific platform.
// Returns nil if no extractor is registered for the platform.
func (r *Registry) Get(platform articlaw.Platform) articlaw.Extractor {
	return r.extractors[platform]
}

// GetForPage detects the platform and returns the appropriate extractor.
// Falls back to the fallback extractor if no extractor is registered for
// the detected platform.
func (r *Registry) GetForPage(page articlaw.Page) (articlaw.Extractor, articlaw.Platform) {
	platform := r.detector.Detect(page)
	if extractor, ok := r.extractors[platform]; ok {
		return extractor, platform
	}
	return r.fallback, platform
}

// Register adds an extractor for a platform.
// If an extractor is already registered for the platform, it is replaced.
func (r *Registry) Register(platform articlaw.Platform, extractor articlaw.Extractor) {
	r.extractors[platform] = extractor
}

// List returns all registered platforms.
func (r *Registry) List() []articlaw.Platform {
	platforms := make([]articlaw.Platform, 0, len(r.extractors))
	for p := range r.extractors {
		platforms = append(platforms, p)
	}
	return platforms
}
