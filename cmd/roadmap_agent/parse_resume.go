package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-roadmap/internal/config"
	"github.com/jonathan/skill-roadmap/internal/db"
	"github.com/jonathan/skill-roadmap/internal/ingestion"
	"github.com/jonathan/skill-roadmap/internal/observability"
	"github.com/jonathan/skill-roadmap/internal/resume"
	"github.com/jonathan/skill-roadmap/internal/schemas"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a resume into skills, education and experience JSON",
	Long: `Parse a resume document (PDF, DOCX, DOC, TXT, RTF or HTML) into a ParseResult JSON that
validates against the parse_result schema. Short or unreadable resumes produce {"success": false}.`,
	RunE: runParseResume,
}

var (
	parseInputFile   string
	parseOutputFile  string
	parseFormat      string
	parseUserID      string
	parseDatabaseURL string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume document (required)")
	parseResumeCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	parseResumeCmd.Flags().StringVar(&parseFormat, "format", "", "Document format (default from file extension or content)")
	parseResumeCmd.Flags().StringVar(&parseUserID, "user-id", "", "Owner of the stored result (default anonymous)")
	parseResumeCmd.Flags().StringVar(&parseDatabaseURL, "db-url", "", "Database URL; stores the result when set")
	_ = parseResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(config.Config{DatabaseURL: parseDatabaseURL, UserID: parseUserID})
	if err != nil {
		return err
	}

	data, err := os.ReadFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	format := resolveFormat(parseFormat, parseInputFile, data)
	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Parsing %s as %q (%d bytes)\n", parseInputFile, format, len(data))
	}

	result := resume.NewParser(nil, resume.WithVerbose(verbose)).Parse(data, format)

	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := validateDocument(schemas.ParseResultSchema, jsonBytes, "parse result"); err != nil {
		return err
	}

	if verbose {
		observability.NewPrinter(os.Stderr).PrintParseResult(&result)
	}

	ctx := context.Background()
	database, err := openStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if database != nil {
		defer database.Close()
		userID := cfg.UserID
		if userID == "" {
			userID = "anonymous"
		}
		meta := ingestion.NewMetadata(filepath.Base(parseInputFile), format, data)
		upload := db.ResumeUpload{Filename: meta.Filename, Format: string(meta.Format), ContentHash: meta.Hash}
		id, err := database.SaveParsedResume(ctx, userID, upload, result)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stderr, "Saved parse result %s for %s\n", id, userID)
	}

	if err := writeJSON(parseOutputFile, result); err != nil {
		return err
	}
	if parseOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", parseOutputFile)
	}
	return nil
}

// resolveFormat picks the explicit format, then the file extension, then magic bytes.
func resolveFormat(explicit, path string, data []byte) ingestion.Format {
	if explicit != "" {
		return ingestion.Format(explicit)
	}
	if format := ingestion.FormatFromFilename(path); format != "" {
		return format
	}
	if format := ingestion.DetectFormat(data); format != "" {
		return format
	}
	return ingestion.FormatTXT
}
