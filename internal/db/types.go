package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skill-roadmap/internal/types"
)

// ParsedResume is a stored resume parse
type ParsedResume struct {
	ID          uuid.UUID         `json:"id"`
	UserID      string            `json:"user_id"`
	Filename    string            `json:"filename"`
	Format      string            `json:"format"`
	ContentHash string            `json:"content_hash"`
	Result      types.ParseResult `json:"result"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ResumeUpload describes the document a parse came from
type ResumeUpload struct {
	Filename    string
	Format      string
	ContentHash string
}

// StoredSkillLevels is a user's latest self-assessment
type StoredSkillLevels struct {
	UserID    string                 `json:"user_id"`
	Levels    map[string]types.Level `json:"skill_levels"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// StoredRoadmap is a generated roadmap
type StoredRoadmap struct {
	ID        uuid.UUID     `json:"id"`
	UserID    string        `json:"user_id"`
	Roadmap   types.Roadmap `json:"roadmap"`
	CreatedAt time.Time     `json:"created_at"`
}
