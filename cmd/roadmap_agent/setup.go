package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/skill-roadmap/internal/config"
	"github.com/jonathan/skill-roadmap/internal/db"
	"github.com/jonathan/skill-roadmap/internal/resources"
	"github.com/jonathan/skill-roadmap/internal/schemas"
	"github.com/jonathan/skill-roadmap/internal/types"
)

// loadConfig layers flags over the config file over the environment.
func loadConfig(flags config.Config) (config.Config, error) {
	base := config.FromEnv()
	if configFile != "" {
		fileCfg, err := config.LoadConfig(configFile)
		if err != nil {
			return config.Config{}, err
		}
		base = fileCfg.MergeWithDefaults(base)
		if fileCfg.Verbose {
			verbose = true
		}
	}
	cfg := flags.MergeWithDefaults(base)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// buildProviders returns the video, search and practice providers in ranking order.
func buildProviders(ctx context.Context, cfg config.Config) ([]resources.Provider, error) {
	video, err := resources.NewVideoProvider(ctx, cfg.YouTubeAPIKey, verbose)
	if err != nil {
		return nil, err
	}
	search, err := resources.NewSearchProvider(ctx, cfg.GoogleAPIKey, cfg.SearchEngineID, verbose)
	if err != nil {
		return nil, err
	}
	if verbose {
		if cfg.YouTubeAPIKey == "" {
			fmt.Fprintln(os.Stderr, "[VERBOSE] YOUTUBE_API_KEY not set, using sample videos")
		}
		if cfg.GoogleAPIKey == "" {
			fmt.Fprintln(os.Stderr, "[VERBOSE] GOOGLE_API_KEY not set, using sample courses")
		}
	}
	return []resources.Provider{video, search, resources.NewPracticeProvider()}, nil
}

// openStore connects to the database when a URL is configured. It returns nil, nil otherwise.
func openStore(ctx context.Context, databaseURL string) (*db.DB, error) {
	if databaseURL == "" {
		return nil, nil
	}
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// validateDocument checks data against an embedded schema. Schema load problems
// are reported as warnings; only real validation failures are errors.
func validateDocument(schemaName string, data []byte, what string) error {
	err := schemas.Validate(schemaName, data)
	if err == nil {
		return nil
	}
	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Errorf("%s does not validate against schema: %w", what, err)
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate %s against schema: %v\n", what, err)
	return nil
}

// writeJSON writes v as indented JSON to path, or to stdout when path is empty.
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}
	if err := os.WriteFile(path, append(jsonBytes, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// parseSkillLevels parses "python=beginner,docker=advanced".
func parseSkillLevels(spec string) (map[string]types.Level, error) {
	levels := make(map[string]types.Level)
	for _, pair := range strings.Split(spec, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, level, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		lvl := types.Level(strings.ToLower(strings.TrimSpace(level)))
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid skill level %q (want skill=level)", pair)
		}
		if !lvl.Valid() {
			return nil, fmt.Errorf("invalid level %q for %s (want beginner, intermediate or advanced)", level, name)
		}
		levels[name] = lvl
	}
	return levels, nil
}
