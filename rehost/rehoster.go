// Package rehost downloads the images referenced by a clip's HTML,
// deduplicates them by content hash, uploads them to durable storage under
// content-addressed paths and rewrites the HTML to point at the rehosted
// copies. Every per-image failure is swallowed: a failed image keeps its
// original URL rather than breaking the page.
package rehost

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/zoltlabs/articlaw"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Defaults for download batching and per-image limits.
const (
	DefaultBatchSize = 5
	DefaultTimeout   = 15 * time.Second

	// DefaultMinBytes filters out tracking pixels and broken placeholders.
	DefaultMinBytes = 512

	// DefaultRate is the outbound download rate used when the caller does
	// not bring its own limiter.
	DefaultRate = rate.Limit(8)

	// hashLength is the truncated hex length of the content hash used in
	// storage keys.
	hashLength = 16
)

// imgSrcRe matches image source attribute values in an HTML fragment.
var imgSrcRe = regexp.MustCompile(`<img[^>]+src=["']([^"']+)["']`)

// extByType maps declared MIME types to storage file extensions.
var extByType = map[string]string{
	"image/jpeg":    "jpg",
	"image/jpg":     "jpg",
	"image/png":     "png",
	"image/gif":     "gif",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
	"image/avif":    "avif",
}

// defaultExt is used when the declared MIME type is unmapped.
const defaultExt = "jpg"

// Rehoster downloads, stores and rewrites image references.
type Rehoster struct {
	Fetcher articlaw.ImageFetcher
	Store   articlaw.ImageStore

	// BatchSize bounds how many downloads run concurrently. The whole
	// batch is awaited before the next one starts. Zero means
	// DefaultBatchSize.
	BatchSize int

	// Timeout bounds each per-image attempt independently. One slow image
	// never blocks siblings beyond its own batch-completion wait. Zero
	// means DefaultTimeout.
	Timeout time.Duration

	// MinBytes discards payloads below the threshold. Zero means
	// DefaultMinBytes.
	MinBytes int

	// Limiter, when set, paces outbound downloads.
	Limiter *rate.Limiter

	// Logger, when set, records swallowed per-image failures.
	Logger *slog.Logger
}

// Rehost scans html for image references, rehosts each unique eligible URL
// under the namespace and returns the HTML with every successfully rehosted
// URL rewritten. URLs that fail at any step keep their original value; the
// returned error is non-nil only for empty input.
func (r *Rehoster) Rehost(ctx context.Context, html, namespace string) (string, error) {
	if html == "" {
		return "", articlaw.Errorf(articlaw.EINVALID, "empty HTML input")
	}

	urls := r.eligibleURLs(html)
	if len(urls) == 0 {
		return html, nil
	}

	rehosted := r.rehostAll(ctx, urls, namespace)

	// Literal substring replacement, all occurrences. URLs absent from
	// the map keep their original value in the output.
	for _, original := range urls {
		if public, ok := rehosted[original]; ok {
			html = strings.ReplaceAll(html, original, public)
		}
	}
	return html, nil
}

// eligibleURLs returns the unique http(s) image URLs in document order.
// Data URIs and relative paths are left untouched, and URLs already under
// the store's public base need no work (re-running the rehoster on rehosted
// output changes nothing).
func (r *Rehoster) eligibleURLs(html string) []string {
	seen := make(map[string]bool)
	var urls []string
	for _, m := range imgSrcRe.FindAllStringSubmatch(html, -1) {
		src := m[1]
		if seen[src] {
			continue
		}
		seen[src] = true
		if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
			continue
		}
		if base := r.Store.PublicBase(); base != "" && strings.HasPrefix(src, base) {
			continue
		}
		urls = append(urls, src)
	}
	return urls
}

// rehostAll processes URLs in fixed-size batches, issuing all downloads in
// a batch concurrently and awaiting the batch before starting the next.
// Each goroutine writes only its own result slot; the map is assembled
// after the batch completes, so no shared state is mutated concurrently.
func (r *Rehoster) rehostAll(ctx context.Context, urls []string, namespace string) map[string]string {
	batchSize := r.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	rehosted := make(map[string]string, len(urls))
	for start := 0; start < len(urls); start += batchSize {
		end := start + batchSize
		if end > len(urls) {
			end = len(urls)
		}
		batch := urls[start:end]
		results := make([]string, len(batch))

		var g errgroup.Group
		for i, u := range batch {
			i, u := i, u
			g.Go(func() error {
				public, err := r.rehostOne(ctx, u, namespace)
				if err != nil {
					if r.Logger != nil {
						r.Logger.Warn("image rehost failed", "url", u, "error", err)
					}
					return nil
				}
				results[i] = public
				return nil
			})
		}
		_ = g.Wait()

		for i, public := range results {
			if public != "" {
				rehosted[batch[i]] = public
			}
		}
	}
	return rehosted
}

// rehostOne downloads one image, validates it, and uploads it at its
// content-addressed path. The same bytes always map to the same path
// regardless of source URL, so re-uploads of identical content are no-ops
// in effect.
func (r *Rehoster) rehostOne(ctx context.Context, url, namespace string) (string, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if r.Limiter != nil {
		if err := r.Limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	data, contentType, err := r.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	contentType = normalizeContentType(contentType)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("not an image: content type %q", contentType)
	}

	minBytes := r.MinBytes
	if minBytes <= 0 {
		minBytes = DefaultMinBytes
	}
	if len(data) < minBytes {
		return "", fmt.Errorf("payload too small: %d bytes", len(data))
	}

	key := namespace + "/" + ContentKey(data, contentType)
	return r.Store.Put(ctx, key, contentType, data)
}

// ContentKey derives the content-addressed file name for image bytes:
// a truncated cryptographic hash of the payload plus an extension mapped
// from the declared MIME type.
func ContentKey(data []byte, contentType string) string {
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])[:hashLength]

	ext, ok := extByType[normalizeContentType(contentType)]
	if !ok {
		ext = defaultExt
	}
	return hash + "." + ext
}

// normalizeContentType strips parameters and whitespace from a declared
// content type.
func normalizeContentType(contentType string) string {
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
