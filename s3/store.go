// Package s3 provides an S3-backed implementation of articlaw.ImageStore.
// Objects are uploaded with overwrite-allowed semantics and served from a
// deterministic public URL.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/zoltlabs/articlaw"
)

// Ensure Store implements articlaw.ImageStore at compile time.
var _ articlaw.ImageStore = (*Store)(nil)

// Config holds the settings needed to reach the bucket.
type Config struct {
	// Bucket is the target bucket name.
	Bucket string

	// Region to use for requests. If empty, the default AWS chain applies.
	Region string

	// PublicBaseURL is the root objects are publicly served from, e.g.
	// a CDN or website-endpoint URL. Required: rehosted URLs are built
	// from it.
	PublicBaseURL string

	// UsePathStyle forces path-style addressing, useful for
	// S3-compatible providers.
	UsePathStyle bool
}

// Store uploads images to an S3 bucket.
type Store struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

// NewStore creates a Store using the default AWS configuration chain with
// optional overrides from cfg.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, articlaw.Errorf(articlaw.EINVALID, "bucket required")
	}
	if cfg.PublicBaseURL == "" {
		return nil, articlaw.Errorf(articlaw.EINVALID, "public base URL required")
	}

	var loadOpts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &Store{
		client:     client,
		bucket:     cfg.Bucket,
		publicBase: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// Put uploads the object at key and returns its public URL. PutObject
// overwrites silently, so re-uploading identical content at the same
// content-addressed key is a no-op in effect.
func (s *Store) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}
	return s.publicBase + "/" + key, nil
}

// PublicBase returns the URL root objects are served from.
func (s *Store) PublicBase() string {
	return s.publicBase
}
