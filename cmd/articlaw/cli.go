package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/zoltlabs/articlaw"
	"github.com/zoltlabs/articlaw/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Sessions *fs.SessionStore
	Auth     articlaw.TokenService
	Articles articlaw.ArticleService

	// Config carries the environment-derived settings commands need to
	// build their remaining collaborators (browser source, image store).
	Config Config
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Login  LoginCmd  `cmd:"" help:"Log in and store a session"`
	Logout LogoutCmd `cmd:"" help:"Discard the stored session"`
	Clip   ClipCmd   `cmd:"" help:"Extract a page and save it as an article"`
	List   ListCmd   `cmd:"" help:"List recent articles"`
	Delete DeleteCmd `cmd:"" help:"Delete an article by slug"`
}

// LoginCmd is the "login" subcommand.
type LoginCmd struct {
	Email string `arg:"" help:"Account email"`
}

// LogoutCmd is the "logout" subcommand.
type LogoutCmd struct{}

// ClipCmd is the "clip" subcommand.
type ClipCmd struct {
	URL string `arg:"" help:"Page URL to clip"`

	NoImages bool `help:"Skip image rehosting"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum number of articles"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Slug string `arg:"" help:"Slug of the article to delete"`
}
