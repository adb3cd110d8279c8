// Package mock provides hand-rolled mock implementations of the articlaw
// domain interfaces for use in tests.
package mock

import (
	"context"

	"github.com/zoltlabs/articlaw"
)

var _ articlaw.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of articlaw.Extractor.
type Extractor struct {
	ExtractFn func(page articlaw.Page) (*articlaw.ExtractionResult, error)
	NameFn    func() string
}

func (e *Extractor) Extract(page articlaw.Page) (*articlaw.ExtractionResult, error) {
	return e.ExtractFn(page)
}

func (e *Extractor) Name() string {
	if e.NameFn == nil {
		return "mock"
	}
	return e.NameFn()
}

var _ articlaw.PlatformDetector = (*PlatformDetector)(nil)

// PlatformDetector is a mock implementation of articlaw.PlatformDetector.
type PlatformDetector struct {
	DetectFn func(page articlaw.Page) articlaw.Platform
}

func (d *PlatformDetector) Detect(page articlaw.Page) articlaw.Platform {
	return d.DetectFn(page)
}

var _ articlaw.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of articlaw.PageSource.
type PageSource struct {
	SnapshotFn func(ctx context.Context) (articlaw.Page, error)
	CloseFn    func() error
}

func (s *PageSource) Snapshot(ctx context.Context) (articlaw.Page, error) {
	return s.SnapshotFn(ctx)
}

func (s *PageSource) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}

var _ articlaw.ImageFetcher = (*ImageFetcher)(nil)

// ImageFetcher is a mock implementation of articlaw.ImageFetcher.
type ImageFetcher struct {
	FetchFn func(ctx context.Context, url string) ([]byte, string, error)
}

func (f *ImageFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	return f.FetchFn(ctx, url)
}

var _ articlaw.ImageStore = (*ImageStore)(nil)

// ImageStore is a mock implementation of articlaw.ImageStore.
type ImageStore struct {
	PutFn        func(ctx context.Context, key, contentType string, data []byte) (string, error)
	PublicBaseFn func() string
}

func (s *ImageStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	return s.PutFn(ctx, key, contentType, data)
}

func (s *ImageStore) PublicBase() string {
	if s.PublicBaseFn == nil {
		return ""
	}
	return s.PublicBaseFn()
}

var _ articlaw.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of articlaw.ArticleService.
type ArticleService struct {
	CreateArticleFn     func(ctx context.Context, article *articlaw.Article) error
	FindArticleBySlugFn func(ctx context.Context, slug string) (*articlaw.Article, error)
	FindArticlesFn      func(ctx context.Context, filter articlaw.ArticleFilter) ([]*articlaw.Article, error)
	UpdateArticleFn     func(ctx context.Context, id string, upd articlaw.ArticleUpdate) (*articlaw.Article, error)
	DeleteArticleFn     func(ctx context.Context, id string) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *articlaw.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleBySlug(ctx context.Context, slug string) (*articlaw.Article, error) {
	return s.FindArticleBySlugFn(ctx, slug)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter articlaw.ArticleFilter) ([]*articlaw.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) UpdateArticle(ctx context.Context, id string, upd articlaw.ArticleUpdate) (*articlaw.Article, error) {
	return s.UpdateArticleFn(ctx, id, upd)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return s.DeleteArticleFn(ctx, id)
}

var _ articlaw.TokenService = (*TokenService)(nil)

// TokenService is a mock implementation of articlaw.TokenService.
type TokenService struct {
	PasswordGrantFn func(ctx context.Context, email, password string) (*articlaw.Session, error)
	RefreshFn       func(ctx context.Context, refreshToken string) (*articlaw.Session, error)
	UserFn          func(ctx context.Context, accessToken string) (*articlaw.User, error)
}

func (s *TokenService) PasswordGrant(ctx context.Context, email, password string) (*articlaw.Session, error) {
	return s.PasswordGrantFn(ctx, email, password)
}

func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (*articlaw.Session, error) {
	return s.RefreshFn(ctx, refreshToken)
}

func (s *TokenService) User(ctx context.Context, accessToken string) (*articlaw.User, error) {
	return s.UserFn(ctx, accessToken)
}

var _ articlaw.Converter = (*Converter)(nil)

// Converter is a mock implementation of articlaw.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
