package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-roadmap/internal/config"
	"github.com/jonathan/skill-roadmap/internal/resume"
	"github.com/jonathan/skill-roadmap/internal/roadmap"
	"github.com/jonathan/skill-roadmap/internal/server"
)

var (
	servePort        int
	serveDatabaseURL string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes /parse-resume, /update-skill-levels, /generate-roadmap and /health.
Results are stored in PostgreSQL when DATABASE_URL (or --db-url) is set.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default $PORT or 5000)")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(config.Config{Port: servePort, DatabaseURL: serveDatabaseURL})
	if err != nil {
		return err
	}

	ctx := context.Background()
	providers, err := buildProviders(ctx, cfg)
	if err != nil {
		return err
	}

	srvCfg := server.Config{
		Port:      cfg.Port,
		Parser:    resume.NewParser(nil, resume.WithVerbose(verbose)),
		Generator: roadmap.NewGenerator(providers, roadmap.WithConcurrency(cfg.Concurrency), roadmap.WithVerbose(verbose)),
		Verbose:   verbose,
	}

	database, err := openStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if database != nil {
		srvCfg.Store = database
	}

	srv, err := server.New(srvCfg)
	if err != nil {
		if database != nil {
			database.Close()
		}
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
