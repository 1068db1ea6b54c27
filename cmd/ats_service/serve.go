package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/Kieseatic/Ats/internal/config"
	"github.com/Kieseatic/Ats/internal/matching"
	"github.com/Kieseatic/Ats/internal/nlp"
	"github.com/Kieseatic/Ats/internal/parsing"
	"github.com/Kieseatic/Ats/internal/server"
	"github.com/Kieseatic/Ats/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume parsing and job matching.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	parser, matcher, gemini, err := buildEngines(ctx, cfg)
	if err != nil {
		return err
	}
	if gemini != nil {
		defer gemini.Close()
	}

	jobs, closeStore, err := buildJobStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	srv := server.New(cfg, parser, matcher, jobs)
	return srv.Start()
}

// buildEngines wires the parser and matcher, upgrading both with Gemini when
// an API key is configured.
func buildEngines(ctx context.Context, cfg *config.Config) (*parsing.Parser, *matching.Matcher, *nlp.GeminiClient, error) {
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY not set; NLP parsing and embedding similarity disabled")
		return parsing.NewParser(nlp.NullRecognizer{}), matching.NewMatcher(nil), nil, nil
	}

	gemini, err := nlp.NewGeminiClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return parsing.NewParser(gemini), matching.NewMatcher(gemini), gemini, nil
}

// buildJobStore selects PostgreSQL when DATABASE_URL is set, otherwise the
// in-memory store.
func buildJobStore(ctx context.Context, cfg *config.Config) (store.JobStore, func(), error) {
	if cfg.DatabaseURL == "" {
		return store.NewMemoryStore(), func() {}, nil
	}

	pg, err := store.ConnectPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to job store: %w", err)
	}
	log.Println("using PostgreSQL job store")
	return pg, pg.Close, nil
}
