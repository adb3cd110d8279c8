// Package clip implements the clip submission pipeline: credential
// refresh and verification, validation, thread-card rendering, markdown
// conversion, image rehosting and record creation.
package clip

import (
	"context"
	"log/slog"
	"time"

	"github.com/zoltlabs/articlaw"
	"github.com/zoltlabs/articlaw/card"
)

// refreshLeeway is how close to expiry a credential may get before it is
// refreshed ahead of use.
const refreshLeeway = 60 * time.Second

// Rehoster rewrites a clip's image references to durable storage URLs.
type Rehoster interface {
	Rehost(ctx context.Context, html, namespace string) (string, error)
}

// Clipper turns an extraction result into a persisted article.
type Clipper struct {
	Articles  articlaw.ArticleService
	Auth      articlaw.TokenService
	Converter articlaw.Converter
	Rehoster  Rehoster
	Logger    *slog.Logger
}

// Clip validates and persists one extraction result. The session is
// refreshed in place when its token nears expiry. Validation failures are
// rejected before any storage or image work; image rehosting is fail-open
// and never blocks the clip.
func (c *Clipper) Clip(ctx context.Context, session *articlaw.Session, result *articlaw.ExtractionResult) (*articlaw.Article, error) {
	if session == nil || session.AccessToken == "" {
		return nil, articlaw.Errorf(articlaw.EUNAUTHORIZED, "missing auth token")
	}
	if session.NearExpiry(refreshLeeway) {
		refreshed, err := c.Auth.Refresh(ctx, session.RefreshToken)
		if err != nil {
			return nil, err
		}
		*session = *refreshed
	}
	if _, err := c.Auth.User(ctx, session.AccessToken); err != nil {
		return nil, err
	}

	content := result.Content
	if len(result.PostMetadata) > 0 {
		// Rendered cards supersede the plain-content representation.
		content = card.RenderThread(result.PostMetadata, result.SourceURL)
	}

	article := &articlaw.Article{
		Title:     result.Title,
		Author:    result.Author,
		SourceURL: result.SourceURL,
		Content:   content,
	}
	if article.Author == "" {
		article.Author = articlaw.InferAuthor(result.SourceURL)
	}
	if err := article.Validate(); err != nil {
		return nil, err
	}

	article.Slug = articlaw.GenerateSlug(article.Title)

	if c.Rehoster != nil {
		rehosted, err := c.Rehoster.Rehost(ctx, article.Content, article.Slug)
		if err != nil {
			// Fail open: the original references still render.
			if c.Logger != nil {
				c.Logger.Warn("image rehosting skipped", "slug", article.Slug, "error", err)
			}
		} else {
			article.Content = rehosted
		}
	}

	if c.Converter != nil {
		if markdown, err := c.Converter.Convert(article.Content); err == nil {
			article.ContentMarkdown = markdown
		} else if c.Logger != nil {
			c.Logger.Warn("markdown conversion skipped", "slug", article.Slug, "error", err)
		}
	}

	if err := c.Articles.CreateArticle(ctx, article); err != nil {
		return nil, err
	}

	if c.Logger != nil {
		c.Logger.Info("clipped", "slug", article.Slug, "title", article.Title)
	}
	return article, nil
}
