package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoltlabs/articlaw"
	main "github.com/zoltlabs/articlaw/cmd/articlaw"
	"github.com/zoltlabs/articlaw/mock"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists articles with slug, title, author and date", func(t *testing.T) {
		t.Parallel()

		articles := &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, filter articlaw.ArticleFilter) ([]*articlaw.Article, error) {
				assert.Equal(t, 20, filter.Limit)
				return []*articlaw.Article{
					{
						Slug:      "a-post-ab12c",
						Title:     "A Post",
						Author:    "Jane",
						CreatedAt: time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
					},
					{
						Slug:   "thread-de34f",
						Title:  "Thread",
						Author: "@dan on X",
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Articles: articles,
		}

		cmd := &main.ListCmd{Limit: 20}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "a-post-ab12c")
		assert.Contains(t, output, "A Post")
		assert.Contains(t, output, "Jane")
		assert.Contains(t, output, "2026-08-15")
		assert.Contains(t, output, "thread-de34f")
	})

	t.Run("prints a friendly message when no articles exist", func(t *testing.T) {
		t.Parallel()

		articles := &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, _ articlaw.ArticleFilter) ([]*articlaw.Article, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Articles: articles,
		}

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No articles yet.")
	})
}
