package articlaw

import "context"

// ImageFetcher downloads a single remote image.
type ImageFetcher interface {
	// Fetch retrieves the image bytes and the declared content type.
	// Non-2xx responses are errors. The context bounds the whole attempt.
	Fetch(ctx context.Context, url string) (data []byte, contentType string, err error)
}

// ImageStore is the durable, publicly readable object store images are
// rehosted into.
type ImageStore interface {
	// Put uploads an object at the given key with overwrite-allowed
	// semantics and returns its public URL. Re-uploading identical bytes
	// at the same key is effectively a no-op.
	Put(ctx context.Context, key, contentType string, data []byte) (publicURL string, err error)

	// PublicBase returns the deterministic URL root objects are served
	// from. URLs under this base are already rehosted.
	PublicBase() string
}
