package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/zoltlabs/articlaw"
)

// Ensure ArticleService implements articlaw.ArticleService at compile time.
var _ articlaw.ArticleService = (*ArticleService)(nil)

// ArticleService implements the record store collaborator over the
// PostgREST articles table. Writes require a user bearer token; row-level
// security on the backend scopes records to their owner.
type ArticleService struct {
	client *Client

	// Bearer supplies the user's access token per call, so a refreshed
	// session is picked up without rebuilding the service.
	Bearer func() string
}

// NewArticleService creates an ArticleService backed by the given client.
func NewArticleService(client *Client, bearer func() string) *ArticleService {
	return &ArticleService{client: client, Bearer: bearer}
}

const articlesPath = "/rest/v1/articles"

// articleRecord is the wire shape of one articles row.
type articleRecord struct {
	ID              string `json:"id,omitempty"`
	Slug            string `json:"slug"`
	Title           string `json:"title"`
	Author          string `json:"author,omitempty"`
	SourceURL       string `json:"source_url,omitempty"`
	Content         string `json:"content"`
	ContentMarkdown string `json:"content_markdown,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}

func (r *articleRecord) article() *articlaw.Article {
	a := &articlaw.Article{
		ID:              r.ID,
		Slug:            r.Slug,
		Title:           r.Title,
		Author:          r.Author,
		SourceURL:       r.SourceURL,
		Content:         r.Content,
		ContentMarkdown: r.ContentMarkdown,
	}
	if t, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
		a.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, r.UpdatedAt); err == nil {
		a.UpdatedAt = t
	}
	return a
}

func (s *ArticleService) bearer() string {
	if s.Bearer == nil {
		return ""
	}
	return s.Bearer()
}

// CreateArticle persists a new article and populates store-assigned fields.
func (s *ArticleService) CreateArticle(ctx context.Context, article *articlaw.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	rec := articleRecord{
		Slug:            article.Slug,
		Title:           article.Title,
		Author:          article.Author,
		SourceURL:       article.SourceURL,
		Content:         article.Content,
		ContentMarkdown: article.ContentMarkdown,
	}

	var created []articleRecord
	_, err := s.client.do(ctx, http.MethodPost, articlesPath, s.bearer(),
		map[string]string{"Prefer": "return=representation"}, rec, &created)
	if err != nil {
		return err
	}
	if len(created) == 0 {
		return articlaw.Errorf(articlaw.EINTERNAL, "record store returned no row")
	}

	*article = *created[0].article()
	return nil
}

// FindArticleBySlug retrieves an article by its slug.
func (s *ArticleService) FindArticleBySlug(ctx context.Context, slug string) (*articlaw.Article, error) {
	path := articlesPath + "?slug=eq." + url.QueryEscape(slug) + "&limit=1"

	var rows []articleRecord
	if _, err := s.client.do(ctx, http.MethodGet, path, s.bearer(), nil, nil, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, articlaw.Errorf(articlaw.ENOTFOUND, "article %q not found", slug)
	}
	return rows[0].article(), nil
}

// FindArticles retrieves articles matching the filter, most recent first.
func (s *ArticleService) FindArticles(ctx context.Context, filter articlaw.ArticleFilter) ([]*articlaw.Article, error) {
	path := articlesPath + "?order=created_at.desc"
	if filter.Slug != nil {
		path += "&slug=eq." + url.QueryEscape(*filter.Slug)
	}
	if filter.Author != nil {
		path += "&author=eq." + url.QueryEscape(*filter.Author)
	}
	if filter.Limit > 0 {
		path += fmt.Sprintf("&limit=%d", filter.Limit)
	}
	if filter.Offset > 0 {
		path += fmt.Sprintf("&offset=%d", filter.Offset)
	}

	var rows []articleRecord
	if _, err := s.client.do(ctx, http.MethodGet, path, s.bearer(), nil, nil, &rows); err != nil {
		return nil, err
	}

	articles := make([]*articlaw.Article, len(rows))
	for i := range rows {
		articles[i] = rows[i].article()
	}
	return articles, nil
}

// UpdateArticle updates an existing article.
func (s *ArticleService) UpdateArticle(ctx context.Context, id string, upd articlaw.ArticleUpdate) (*articlaw.Article, error) {
	patch := map[string]any{"updated_at": time.Now().UTC().Format(time.RFC3339)}
	if upd.Title != nil {
		patch["title"] = *upd.Title
	}
	if upd.Author != nil {
		patch["author"] = *upd.Author
	}
	if upd.Content != nil {
		patch["content"] = *upd.Content
	}
	if upd.ContentMarkdown != nil {
		patch["content_markdown"] = *upd.ContentMarkdown
	}

	path := articlesPath + "?id=eq." + url.QueryEscape(id)

	var rows []articleRecord
	_, err := s.client.do(ctx, http.MethodPatch, path, s.bearer(),
		map[string]string{"Prefer": "return=representation"}, patch, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, articlaw.Errorf(articlaw.ENOTFOUND, "article %q not found", id)
	}
	return rows[0].article(), nil
}

// DeleteArticle permanently removes an article.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	path := articlesPath + "?id=eq." + url.QueryEscape(id)
	_, err := s.client.do(ctx, http.MethodDelete, path, s.bearer(), nil, nil, nil)
	return err
}
