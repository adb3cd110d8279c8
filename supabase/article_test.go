package supabase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoltlabs/articlaw"
	"github.com/zoltlabs/articlaw/supabase"
)

// Ensure ArticleService implements articlaw.ArticleService at compile time.
var _ articlaw.ArticleService = (*supabase.ArticleService)(nil)

func newArticleService(srvURL string) *supabase.ArticleService {
	return supabase.NewArticleService(
		supabase.NewClient(srvURL, "anon-key"),
		func() string { return "user-token" },
	)
}

func TestArticleService_CreateArticle(t *testing.T) {
	t.Parallel()

	t.Run("inserts a row and adopts store-assigned fields", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/rest/v1/articles", r.URL.Path)
			assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
			assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

			var rec map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&rec))
			assert.Equal(t, "my-slug", rec["slug"])

			json.NewEncoder(w).Encode([]map[string]any{{
				"id":         "id-1",
				"slug":       "my-slug",
				"title":      "T",
				"content":    "<p>C</p>",
				"created_at": "2024-05-01T10:00:00Z",
			}})
		}))
		defer srv.Close()

		article := &articlaw.Article{Slug: "my-slug", Title: "T", Content: "<p>C</p>"}
		err := newArticleService(srv.URL).CreateArticle(context.Background(), article)

		require.NoError(t, err)
		assert.Equal(t, "id-1", article.ID)
		assert.Equal(t, 2024, article.CreatedAt.Year())
	})

	t.Run("validates before any round trip", func(t *testing.T) {
		t.Parallel()

		article := &articlaw.Article{Slug: "s"}
		err := newArticleService("http://unreachable.invalid").CreateArticle(context.Background(), article)

		require.Error(t, err)
		assert.Equal(t, articlaw.EINVALID, articlaw.ErrorCode(err))
	})
}

func TestArticleService_FindArticleBySlug(t *testing.T) {
	t.Parallel()

	t.Run("filters by slug", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "eq.my-slug", r.URL.Query().Get("slug"))

			json.NewEncoder(w).Encode([]map[string]any{{
				"id": "id-1", "slug": "my-slug", "title": "T", "content": "<p>C</p>",
			}})
		}))
		defer srv.Close()

		article, err := newArticleService(srv.URL).FindArticleBySlug(context.Background(), "my-slug")

		require.NoError(t, err)
		assert.Equal(t, "id-1", article.ID)
	})

	t.Run("maps an empty result to ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("[]"))
		}))
		defer srv.Close()

		_, err := newArticleService(srv.URL).FindArticleBySlug(context.Background(), "nope")

		require.Error(t, err)
		assert.Equal(t, articlaw.ENOTFOUND, articlaw.ErrorCode(err))
	})
}

func TestArticleService_FindArticles(t *testing.T) {
	t.Parallel()

	t.Run("orders by recency and applies the filter", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "created_at.desc", q.Get("order"))
			assert.Equal(t, "eq.Jane", q.Get("author"))
			assert.Equal(t, "10", q.Get("limit"))

			json.NewEncoder(w).Encode([]map[string]any{
				{"id": "2", "slug": "b", "title": "B", "content": "c"},
				{"id": "1", "slug": "a", "title": "A", "content": "c"},
			})
		}))
		defer srv.Close()

		author := "Jane"
		articles, err := newArticleService(srv.URL).FindArticles(context.Background(), articlaw.ArticleFilter{
			Author: &author,
			Limit:  10,
		})

		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, "2", articles[0].ID)
	})
}

func TestArticleService_UpdateArticle(t *testing.T) {
	t.Parallel()

	t.Run("patches only the provided fields", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "eq.id-1", r.URL.Query().Get("id"))

			var patch map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
			assert.Equal(t, "New Title", patch["title"])
			assert.NotContains(t, patch, "content")
			assert.Contains(t, patch, "updated_at")

			json.NewEncoder(w).Encode([]map[string]any{{
				"id": "id-1", "slug": "s", "title": "New Title", "content": "c",
			}})
		}))
		defer srv.Close()

		title := "New Title"
		article, err := newArticleService(srv.URL).UpdateArticle(context.Background(), "id-1",
			articlaw.ArticleUpdate{Title: &title})

		require.NoError(t, err)
		assert.Equal(t, "New Title", article.Title)
	})

	t.Run("maps a missing row to ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("[]"))
		}))
		defer srv.Close()

		title := "T"
		_, err := newArticleService(srv.URL).UpdateArticle(context.Background(), "ghost",
			articlaw.ArticleUpdate{Title: &title})

		require.Error(t, err)
		assert.Equal(t, articlaw.ENOTFOUND, articlaw.ErrorCode(err))
	})
}

func TestArticleService_DeleteArticle(t *testing.T) {
	t.Parallel()

	t.Run("issues a scoped delete", func(t *testing.T) {
		t.Parallel()

		deleted := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "eq.id-1", r.URL.Query().Get("id"))
			deleted = true
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		err := newArticleService(srv.URL).DeleteArticle(context.Background(), "id-1")

		require.NoError(t, err)
		assert.True(t, deleted)
	})
}
