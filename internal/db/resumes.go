package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/skill-roadmap/internal/types"
)

// SaveParsedResume stores a parse result (successful or not) and returns its ID
func (db *DB) SaveParsedResume(ctx context.Context, userID string, upload ResumeUpload, result types.ParseResult) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal parse result: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO parsed_resumes (id, user_id, filename, format, content_hash, success, result)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, userID, upload.Filename, upload.Format, upload.ContentHash, result.Success, jsonBytes,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save parsed resume: %w", err)
	}
	return id, nil
}

// GetLatestParsedResume returns the user's most recent parse, or nil if there is none
func (db *DB) GetLatestParsedResume(ctx context.Context, userID string) (*ParsedResume, error) {
	var pr ParsedResume
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, filename, format, content_hash, result, created_at
		 FROM parsed_resumes WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT 1`,
		userID,
	).Scan(&pr.ID, &pr.UserID, &pr.Filename, &pr.Format, &pr.ContentHash, &content, &pr.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get parsed resume: %w", err)
	}
	if err := json.Unmarshal(content, &pr.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal parse result: %w", err)
	}
	return &pr, nil
}
