package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-roadmap/internal/config"
	"github.com/jonathan/skill-roadmap/internal/observability"
	"github.com/jonathan/skill-roadmap/internal/roadmap"
	"github.com/jonathan/skill-roadmap/internal/schemas"
	"github.com/jonathan/skill-roadmap/internal/types"
)

var generateRoadmapCmd = &cobra.Command{
	Use:   "generate-roadmap",
	Short: "Build a ranked learning roadmap from skill levels",
	Long: `Gather videos, courses and practice sites for every skill and keep the 5 best ranked per skill.
Skill levels come from --skills (python=beginner,docker=advanced) or a skill_levels JSON file via --in.
Without YOUTUBE_API_KEY / GOOGLE_API_KEY sample resources are used.`,
	RunE: runGenerateRoadmap,
}

var (
	roadmapSkills      string
	roadmapInputFile   string
	roadmapOutputFile  string
	roadmapUserID      string
	roadmapDatabaseURL string
	roadmapConcurrency int
)

func init() {
	generateRoadmapCmd.Flags().StringVar(&roadmapSkills, "skills", "", "Comma separated skill=level pairs")
	generateRoadmapCmd.Flags().StringVarP(&roadmapInputFile, "in", "i", "", "Path to skill levels JSON ({\"skill_levels\": {...}})")
	generateRoadmapCmd.Flags().StringVarP(&roadmapOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	generateRoadmapCmd.Flags().StringVar(&roadmapUserID, "user-id", "", "Owner of the stored roadmap (default anonymous)")
	generateRoadmapCmd.Flags().StringVar(&roadmapDatabaseURL, "db-url", "", "Database URL; stores the roadmap when set")
	generateRoadmapCmd.Flags().IntVar(&roadmapConcurrency, "concurrency", 0, "Skills processed in parallel (default 4)")

	rootCmd.AddCommand(generateRoadmapCmd)
}

func runGenerateRoadmap(cmd *cobra.Command, _ []string) error {
	if (roadmapSkills == "") == (roadmapInputFile == "") {
		return fmt.Errorf("exactly one of --skills or --in is required")
	}

	cfg, err := loadConfig(config.Config{
		DatabaseURL: roadmapDatabaseURL,
		UserID:      roadmapUserID,
		Concurrency: roadmapConcurrency,
	})
	if err != nil {
		return err
	}

	req, err := loadSkillLevels()
	if err != nil {
		return err
	}
	if req.UserID == "" {
		req.UserID = cfg.UserID
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	providers, err := buildProviders(ctx, cfg)
	if err != nil {
		return err
	}

	opts := []roadmap.Option{roadmap.WithConcurrency(cfg.Concurrency), roadmap.WithVerbose(verbose)}
	if verbose {
		opts = append(opts, roadmap.WithProgress(func(e roadmap.ProgressEvent) {
			fmt.Fprintf(os.Stderr, "[VERBOSE] [%d/%d] %s (%s): kept %d of %d resources\n",
				e.Completed, e.Total, e.Skill, e.Level, e.Kept, e.Gathered)
		}))
	}
	rm, err := roadmap.NewGenerator(providers, opts...).Generate(ctx, req.SkillLevels)
	if err != nil {
		return fmt.Errorf("failed to generate roadmap: %w", err)
	}

	if err := schemas.ValidateValue(schemas.RoadmapSchema, rm); err != nil {
		return fmt.Errorf("generated roadmap does not validate against schema: %w", err)
	}
	if verbose {
		observability.NewPrinter(os.Stderr).PrintRoadmap(rm)
	}

	database, err := openStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if database != nil {
		defer database.Close()
		userID := req.UserIDOrAnonymous()
		if err := database.SaveSkillLevels(ctx, userID, req.SkillLevels); err != nil {
			return err
		}
		id, err := database.SaveRoadmap(ctx, userID, rm)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stderr, "Saved roadmap %s for %s\n", id, userID)
	}

	return writeJSON(roadmapOutputFile, rm)
}

// loadSkillLevels reads skill levels from --skills or from the --in JSON file.
func loadSkillLevels() (*types.SkillLevelsRequest, error) {
	req := &types.SkillLevelsRequest{}
	if roadmapSkills != "" {
		levels, err := parseSkillLevels(roadmapSkills)
		if err != nil {
			return nil, err
		}
		req.SkillLevels = levels
	} else {
		data, err := os.ReadFile(roadmapInputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		if err := validateDocument(schemas.SkillLevelsSchema, data, "skill levels"); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, req); err != nil {
			return nil, fmt.Errorf("failed to parse skill levels JSON: %w", err)
		}
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid skill levels: %w", err)
	}
	return req, nil
}
