package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/zoltlabs/articlaw"
	"github.com/zoltlabs/articlaw/fs"
	"github.com/zoltlabs/articlaw/supabase"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, articlaw.ErrorMessage(err))
		os.Exit(1)
	}
}

// Config holds the environment-derived settings.
type Config struct {
	SupabaseURL     string
	SupabaseAnonKey string
	S3Bucket        string
	S3Region        string
	S3PublicURL     string
	AppURL          string
	SessionFile     string
}

// ConfigFromEnv reads configuration from the environment, after loading a
// .env file when one is present.
func ConfigFromEnv() Config {
	_ = godotenv.Load()

	cfg := Config{
		SupabaseURL:     os.Getenv("ARTICLAW_SUPABASE_URL"),
		SupabaseAnonKey: os.Getenv("ARTICLAW_SUPABASE_ANON_KEY"),
		S3Bucket:        os.Getenv("ARTICLAW_S3_BUCKET"),
		S3Region:        os.Getenv("ARTICLAW_S3_REGION"),
		S3PublicURL:     os.Getenv("ARTICLAW_S3_PUBLIC_URL"),
		AppURL:          os.Getenv("ARTICLAW_APP_URL"),
		SessionFile:     os.Getenv("ARTICLAW_SESSION_FILE"),
	}
	if cfg.SessionFile == "" {
		cfg.SessionFile = fs.DefaultSessionPath()
	}
	return cfg
}

// Main represents the program.
type Main struct {
	// Config is read from the environment before Run. Overridable in
	// tests.
	Config Config

	// Sessions persists the auth session between invocations.
	Sessions *fs.SessionStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Config: ConfigFromEnv()}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	m.Sessions = fs.NewSessionStore(m.Config.SessionFile)

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   logger,
		Sessions: m.Sessions,
		Config:   m.Config,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("articlaw"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'articlaw --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if m.Config.SupabaseURL == "" || m.Config.SupabaseAnonKey == "" {
		fmt.Fprintln(stderr, "Hint: set ARTICLAW_SUPABASE_URL and ARTICLAW_SUPABASE_ANON_KEY (a .env file works)")
		return fmt.Errorf("backend not configured")
	}

	client := supabase.NewClient(m.Config.SupabaseURL, m.Config.SupabaseAnonKey)
	deps.Auth = supabase.NewTokenService(client)
	deps.Articles = supabase.NewArticleService(client, func() string {
		session, err := m.Sessions.Load()
		if err != nil {
			return ""
		}
		return session.AccessToken
	})

	return kongCtx.Run(deps)
}
