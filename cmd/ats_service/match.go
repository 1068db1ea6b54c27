package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kieseatic/Ats/internal/config"
	"github.com/Kieseatic/Ats/internal/ingestion"
	"github.com/Kieseatic/Ats/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match <resume-file> <jobs-file>",
	Short: "Score a resume against one or more jobs",
	Long:  `Extract text from a resume file and score it against the jobs in a JSON file (a single job object or an array), printing ranked match results as JSON.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, matcher, gemini, err := buildEngines(ctx, cfg)
	if err != nil {
		return err
	}
	if gemini != nil {
		defer gemini.Close()
	}

	resumeData, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	resumeText := ingestion.ExtractText(args[0], resumeData)

	jobsData, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read jobs file: %w", err)
	}
	jobs, err := ingestion.ParseJobsJSON(jobsData)
	if err != nil {
		return err
	}

	results, err := matcher.MatchAll(ctx, jobs, resumeText)
	if err != nil {
		return err
	}

	type rankedMatch struct {
		types.MatchResult
		Recommendation string `json:"recommendation"`
	}
	ranked := make([]rankedMatch, len(results))
	for i := range results {
		ranked[i] = rankedMatch{
			MatchResult:    results[i],
			Recommendation: types.Recommendation(results[i].Score),
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(ranked)
}
