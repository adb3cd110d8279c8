// Package http provides HTTP-based implementations of outbound
// collaborator interfaces.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/zoltlabs/articlaw"
)

// Ensure ImageFetcher implements articlaw.ImageFetcher at compile time.
var _ articlaw.ImageFetcher = (*ImageFetcher)(nil)

// ImageFetcher downloads images over HTTP. Timeouts are controlled by the
// caller's context so each download attempt is bounded independently.
type ImageFetcher struct {
	client *http.Client
}

// NewImageFetcher creates a new ImageFetcher.
func NewImageFetcher() *ImageFetcher {
	return &ImageFetcher{client: &http.Client{}}
}

// Fetch retrieves the image at url and returns its bytes and declared
// content type. Non-2xx responses are errors.
func (f *ImageFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	return data, resp.Header.Get("Content-Type"), nil
}
