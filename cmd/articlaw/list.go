package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/zoltlabs/articlaw"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	articles, err := deps.Articles.FindArticles(deps.Ctx, articlaw.ArticleFilter{Limit: c.Limit})
	if err != nil {
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles yet.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tTITLE\tAUTHOR\tCLIPPED")
	for _, a := range articles {
		created := ""
		if !a.CreatedAt.IsZero() {
			created = a.CreatedAt.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Slug, articlaw.Truncate(a.Title, 50), a.Author, created)
	}
	return w.Flush()
}
