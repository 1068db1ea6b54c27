package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kieseatic/Ats/internal/config"
	"github.com/Kieseatic/Ats/internal/ingestion"
)

var parseCmd = &cobra.Command{
	Use:   "parse <resume-file>",
	Short: "Parse a resume file into structured career data",
	Long:  `Extract text from a resume file (PDF, DOCX, or plain text) and run the full parse cascade, printing the structured result as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	parser, _, gemini, err := buildEngines(ctx, cfg)
	if err != nil {
		return err
	}
	if gemini != nil {
		defer gemini.Close()
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	text := ingestion.ExtractText(args[0], data)
	parsed, err := parser.Parse(ctx, text)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(parsed)
}
