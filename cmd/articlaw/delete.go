package main

import "fmt"

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.FindArticleBySlug(deps.Ctx, c.Slug)
	if err != nil {
		return err
	}

	if err := deps.Articles.DeleteArticle(deps.Ctx, article.ID); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %q\n", article.Title)
	return nil
}
