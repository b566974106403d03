package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-roadmap/internal/observability"
	"github.com/jonathan/skill-roadmap/internal/ranking"
	"github.com/jonathan/skill-roadmap/internal/schemas"
	"github.com/jonathan/skill-roadmap/internal/types"
)

var rankResourcesCmd = &cobra.Command{
	Use:   "rank-resources",
	Short: "Rank a JSON list of learning resources for a skill and level",
	Long: `Rank candidate learning resources by 0.7 x TF-IDF title relevance to "<skill> <level> tutorial course"
plus 0.3 x popularity and print the top 5 without ranking fields.`,
	RunE: runRankResources,
}

var (
	rankInputFile  string
	rankOutputFile string
	rankSkill      string
	rankLevel      string
)

func init() {
	rankResourcesCmd.Flags().StringVarP(&rankInputFile, "in", "i", "", "Path to resources JSON array (required)")
	rankResourcesCmd.Flags().StringVarP(&rankOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	rankResourcesCmd.Flags().StringVar(&rankSkill, "skill", "", "Skill name (required)")
	rankResourcesCmd.Flags().StringVar(&rankLevel, "level", string(types.LevelBeginner), "Level: beginner, intermediate or advanced")
	_ = rankResourcesCmd.MarkFlagRequired("in")
	_ = rankResourcesCmd.MarkFlagRequired("skill")

	rootCmd.AddCommand(rankResourcesCmd)
}

func runRankResources(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(rankInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	if err := validateDocument(schemas.ResourcesSchema, data, "input resources"); err != nil {
		return err
	}

	req := types.RankRequest{Skill: rankSkill, Level: types.Level(rankLevel)}
	if err := json.Unmarshal(data, &req.Resources); err != nil {
		return fmt.Errorf("failed to parse resources JSON: %w", err)
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid ranking request: %w", err)
	}

	if verbose {
		observability.NewPrinter(os.Stderr).PrintScoredResources(req.Skill, req.Level, ranking.Ranked(req.Resources, req.Skill, req.Level))
	}

	return writeJSON(rankOutputFile, ranking.RankResources(req.Resources, req.Skill, req.Level))
}
