package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/skill-roadmap/internal/types"
)

// SaveSkillLevels replaces the user's stored skill levels
func (db *DB) SaveSkillLevels(ctx context.Context, userID string, levels map[string]types.Level) error {
	if levels == nil {
		levels = map[string]types.Level{}
	}
	jsonBytes, err := json.Marshal(levels)
	if err != nil {
		return fmt.Errorf("failed to marshal skill levels: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO skill_levels (user_id, levels)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET levels = $2, updated_at = NOW()`,
		userID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save skill levels: %w", err)
	}
	return nil
}

// GetSkillLevels returns the user's stored skill levels, or nil if there are none
func (db *DB) GetSkillLevels(ctx context.Context, userID string) (*StoredSkillLevels, error) {
	var sl StoredSkillLevels
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, levels, updated_at FROM skill_levels WHERE user_id = $1`,
		userID,
	).Scan(&sl.UserID, &content, &sl.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill levels: %w", err)
	}
	if err := json.Unmarshal(content, &sl.Levels); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skill levels: %w", err)
	}
	return &sl, nil
}
