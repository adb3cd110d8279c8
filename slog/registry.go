package slog

import (
	"log/slog"
	"time"

	"github.com/zoltlabs/articlaw"
)

// Ensure LoggingRegistry implements articlaw.ExtractorRegistry.
var _ articlaw.ExtractorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps an ExtractorRegistry with debug logging for
// platform detection.
type LoggingRegistry struct {
	next   articlaw.ExtractorRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next articlaw.ExtractorRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(platform articlaw.Platform) articlaw.Extractor {
	return r.next.Get(platform)
}

// GetForPage detects the platform, logs it, and returns the appropriate
// extractor.
func (r *LoggingRegistry) GetForPage(page articlaw.Page) (articlaw.Extractor, articlaw.Platform) {
	begin := time.Now()
	extractor, platform := r.next.GetForPage(page)
	r.logger.Info("platform detection",
		"host", page.Host,
		"platform", string(platform),
		"extractor", extractor.Name(),
		"duration", time.Since(begin),
	)
	return extractor, platform
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(platform articlaw.Platform, extractor articlaw.Extractor) {
	r.next.Register(platform, extractor)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []articlaw.Platform {
	return r.next.List()
}
