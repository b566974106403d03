// Package types provides type definitions for structured data used throughout the skill-roadmap system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports failing fields by their JSON names.
var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// Roadmap is a personalized learning plan, one entry per assessed skill.
type Roadmap struct {
	Skills []SkillRoadmap `json:"skills"`
}

// SkillRoadmap holds the ranked resources for one skill at one level.
type SkillRoadmap struct {
	Name      string           `json:"name"`
	Level     Level            `json:"level"`
	Resources []RankedResource `json:"resources"`
}

// SkillLevelsRequest is the body of skill-level updates and roadmap generation requests.
type SkillLevelsRequest struct {
	UserID      string           `json:"user_id" validate:"omitempty,max=128"`
	SkillLevels map[string]Level `json:"skill_levels" validate:"required,dive,keys,required,max=100,endkeys,oneof=beginner intermediate advanced"`
}

// RankRequest is the input of a single ranking call.
type RankRequest struct {
	Skill     string     `json:"skill" validate:"required"`
	Level     Level      `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Resources []Resource `json:"resources" validate:"dive"`
}

// Validate validates the SkillLevelsRequest using the validator.
func (r *SkillLevelsRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the RankRequest using the validator.
func (r *RankRequest) Validate() error {
	return validate.Struct(r)
}

// UserIDOrAnonymous returns the request's user id, defaulting to "anonymous".
func (r *SkillLevelsRequest) UserIDOrAnonymous() string {
	if r.UserID == "" {
		return "anonymous"
	}
	return r.UserID
}
