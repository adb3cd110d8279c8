package articlaw

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Article represents a clipped page persisted in the record store.
// The store owns the record; the clipping pipeline only produces the
// title/author/content values that seed it.
type Article struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	SourceURL string    `json:"source_url"`
	Content   string    `json:"content"`

	// ContentMarkdown is a best-effort markdown rendering of Content,
	// stored alongside it for export and editing.
	ContentMarkdown string `json:"content_markdown,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.Content == "" {
		return Errorf(EINVALID, "article content required")
	}
	return nil
}

// ArticleService represents the external record store collaborator.
type ArticleService interface {
	// CreateArticle persists a new article and populates store-assigned
	// fields (ID, CreatedAt) on the passed article.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleBySlug retrieves an article by its slug.
	// Returns ENOTFOUND if the article does not exist.
	FindArticleBySlug(ctx context.Context, slug string) (*Article, error)

	// FindArticles retrieves articles matching the filter, most recent first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// UpdateArticle updates an existing article.
	// Returns ENOTFOUND if the article does not exist.
	UpdateArticle(ctx context.Context, id string, upd ArticleUpdate) (*Article, error)

	// DeleteArticle permanently removes an article.
	DeleteArticle(ctx context.Context, id string) error
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	Slug   *string `json:"slug"`
	Author *string `json:"author"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ArticleUpdate represents fields that can be updated on an article.
type ArticleUpdate struct {
	Title           *string `json:"title"`
	Author          *string `json:"author"`
	Content         *string `json:"content"`
	ContentMarkdown *string `json:"content_markdown"`
}

var slugCleanRe = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug derives a URL-safe slug from a title: lowercased,
// non-alphanumeric runs collapsed to hyphens, truncated to 60 characters,
// with a random 5-character suffix for uniqueness.
func GenerateSlug(title string) string {
	base := strings.ToLower(title)
	base = slugCleanRe.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")
	if len(base) > 60 {
		base = base[:60]
		base = strings.TrimRight(base, "-")
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:5]
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

// Truncate strips HTML tags and shortens the text to at most length
// characters, appending an ellipsis when truncated.
func Truncate(text string, length int) string {
	stripped := tagRe.ReplaceAllString(text, "")
	runes := []rune(stripped)
	if len(runes) <= length {
		return stripped
	}
	return strings.TrimRight(string(runes[:length]), " ") + "..."
}

// InferAuthor derives an author attribution from well-known URL shapes.
// Returns the empty string when the URL matches no known pattern.
func InferAuthor(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	parts := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })

	switch {
	case (host == "x.com" || host == "twitter.com") && len(parts) >= 1:
		return "@" + parts[0] + " on X"
	case strings.HasSuffix(host, ".substack.com"):
		return strings.TrimSuffix(host, ".substack.com")
	case host == "medium.com" && len(parts) >= 1 && strings.HasPrefix(parts[0], "@"):
		return parts[0]
	case host == "github.com" && len(parts) >= 1:
		return parts[0]
	case (host == "youtube.com" || host == "m.youtube.com") && len(parts) >= 1 && strings.HasPrefix(parts[0], "@"):
		return parts[0]
	}
	return ""
}
