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

// SaveRoadmap stores a generated roadmap and returns its ID
func (db *DB) SaveRoadmap(ctx context.Context, userID string, roadmap *types.Roadmap) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(roadmap)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal roadmap: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO roadmaps (id, user_id, roadmap) VALUES ($1, $2, $3)`,
		id, userID, jsonBytes,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save roadmap: %w", err)
	}
	return id, nil
}

// GetLatestRoadmap returns the user's most recent roadmap, or nil if there is none
func (db *DB) GetLatestRoadmap(ctx context.Context, userID string) (*StoredRoadmap, error) {
	var sr StoredRoadmap
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, roadmap, created_at
		 FROM roadmaps WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT 1`,
		userID,
	).Scan(&sr.ID, &sr.UserID, &content, &sr.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get roadmap: %w", err)
	}
	if err := json.Unmarshal(content, &sr.Roadmap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roadmap: %w", err)
	}
	return &sr, nil
}
