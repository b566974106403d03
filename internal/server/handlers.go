package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/jonathan/skill-roadmap/internal/db"
	"github.com/jonathan/skill-roadmap/internal/ingestion"
	"github.com/jonathan/skill-roadmap/internal/ranking"
	"github.com/jonathan/skill-roadmap/internal/roadmap"
	"github.com/jonathan/skill-roadmap/internal/schemas"
	"github.com/jonathan/skill-roadmap/internal/types"
)

// anonymousUser owns results posted without a user_id.
const anonymousUser = "anonymous"

// unsupportedFormatMessage is returned for uploads with an unknown extension.
const unsupportedFormatMessage = "Unsupported file format. Please upload PDF, DOCX, DOC, TXT, or RTF"

// SuccessResponse is the body of write endpoints that return no data
type SuccessResponse struct {
	Success bool `json:"success"`
}

// RankResponse is the body of /rank-resources
type RankResponse struct {
	Resources []types.RankedResource `json:"resources"`
}

// HealthResponse is the body of /health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, HealthResponse{Status: "healthy", Version: Version})
}

// handleParseResume parses an uploaded resume into skills, education and experience
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.failureResponse(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		s.failureResponse(w, http.StatusBadRequest, "Invalid upload: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		// A part named "file" without a filename is stored as a plain form value.
		if r.MultipartForm != nil && len(r.MultipartForm.Value["file"]) > 0 {
			log.Printf("Empty filename provided")
			s.failureResponse(w, http.StatusBadRequest, "No file selected")
			return
		}
		log.Printf("No file provided in request")
		s.failureResponse(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		s.failureResponse(w, http.StatusBadRequest, "No file selected")
		return
	}
	if !ingestion.IsSupportedUpload(header.Filename) {
		log.Printf("Unsupported file format: %q", header.Filename)
		s.failureResponse(w, http.StatusBadRequest, unsupportedFormatMessage)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Error reading upload: %v", err)
		s.failureResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to process resume: %v", err))
		return
	}

	format := ingestion.FormatFromFilename(header.Filename)
	result := s.parser.Parse(data, format)

	userID := r.FormValue("user_id")
	if userID == "" {
		userID = anonymousUser
	}
	if s.store != nil {
		meta := ingestion.NewMetadata(header.Filename, format, data)
		upload := db.ResumeUpload{Filename: meta.Filename, Format: string(meta.Format), ContentHash: meta.Hash}
		if _, err := s.store.SaveParsedResume(r.Context(), userID, upload, result); err != nil {
			log.Printf("Error saving parsed resume for %s: %v", userID, err)
			s.failureResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to process resume: %v", err))
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleUpdateSkillLevels stores a user's self-assessed skill levels
func (s *Server) handleUpdateSkillLevels(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSkillLevels(w, r)
	if !ok {
		return
	}

	if s.store != nil {
		if err := s.store.SaveSkillLevels(r.Context(), req.UserIDOrAnonymous(), req.SkillLevels); err != nil {
			log.Printf("Error saving skill levels: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "Failed to save skill levels")
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, SuccessResponse{Success: true})
}

// handleGenerateRoadmap builds a ranked learning roadmap for the posted skill levels
func (s *Server) handleGenerateRoadmap(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSkillLevels(w, r)
	if !ok {
		return
	}

	rm, err := s.buildRoadmap(r.Context(), req, s.generator)
	if err != nil {
		log.Printf("Error generating roadmap: %v", err)
		s.errorResponse(w, HTTPStatus(err), "Failed to generate roadmap")
		return
	}

	s.jsonResponse(w, http.StatusOK, rm)
}

// handleGenerateRoadmapStream builds a roadmap and streams per-skill progress via SSE
func (s *Server) handleGenerateRoadmapStream(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSkillLevels(w, r)
	if !ok {
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	gen := s.generator.WithOptions(roadmap.WithProgress(func(event roadmap.ProgressEvent) {
		if err := sse.WriteEvent("skill", event); err != nil {
			log.Printf("Error writing SSE event: %v", err)
		}
	}))

	rm, err := s.buildRoadmap(r.Context(), req, gen)
	if err != nil {
		log.Printf("Error generating roadmap: %v", err)
		sse.WriteError("Failed to generate roadmap")
		return
	}
	sse.WriteComplete(rm)
}

// buildRoadmap generates, checks and stores a roadmap.
func (s *Server) buildRoadmap(ctx context.Context, req *types.SkillLevelsRequest, gen *roadmap.Generator) (*types.Roadmap, error) {
	rm, err := gen.Generate(ctx, req.SkillLevels)
	if err != nil {
		return nil, err
	}

	if s.verbose {
		if err := schemas.ValidateValue(schemas.RoadmapSchema, rm); err != nil {
			log.Printf("[VERBOSE] Roadmap does not match schema: %v", err)
		}
	}

	if s.store != nil {
		if _, err := s.store.SaveRoadmap(ctx, req.UserIDOrAnonymous(), rm); err != nil {
			return nil, err
		}
	}
	return rm, nil
}

// handleRankResources ranks caller-supplied resources for a skill and level
func (s *Server) handleRankResources(w http.ResponseWriter, r *http.Request) {
	var req types.RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationError(err).Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, RankResponse{
		Resources: ranking.RankResources(req.Resources, req.Skill, req.Level),
	})
}

// handleGetParsedResume returns the user's most recent parse
func (s *Server) handleGetParsedResume(w http.ResponseWriter, r *http.Request) {
	s.getStored(w, r, "parsed resume", func(ctx context.Context, userID string) (any, error) {
		pr, err := s.store.GetLatestParsedResume(ctx, userID)
		if pr == nil {
			return nil, err
		}
		return pr, err
	})
}

// handleGetSkillLevels returns the user's stored skill levels
func (s *Server) handleGetSkillLevels(w http.ResponseWriter, r *http.Request) {
	s.getStored(w, r, "skill levels", func(ctx context.Context, userID string) (any, error) {
		levels, err := s.store.GetSkillLevels(ctx, userID)
		if levels == nil {
			return nil, err
		}
		return levels, err
	})
}

// handleGetRoadmap returns the user's most recent roadmap
func (s *Server) handleGetRoadmap(w http.ResponseWriter, r *http.Request) {
	s.getStored(w, r, "roadmap", func(ctx context.Context, userID string) (any, error) {
		rm, err := s.store.GetLatestRoadmap(ctx, userID)
		if rm == nil {
			return nil, err
		}
		return rm, err
	})
}

// getStored runs a store lookup for the {id} path value and writes the result.
// A nil value from get means nothing is stored.
func (s *Server) getStored(w http.ResponseWriter, r *http.Request, resource string, get func(context.Context, string) (any, error)) {
	userID := r.PathValue("id")
	if userID == "" {
		s.errorResponse(w, http.StatusBadRequest, "User ID is required")
		return
	}
	if s.store == nil {
		err := &ErrPersistenceDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	value, err := get(r.Context(), userID)
	if err != nil {
		log.Printf("Error loading %s for %s: %v", resource, userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load "+resource)
		return
	}
	if value == nil {
		err := &ErrNotFound{Resource: resource, UserID: userID}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, value)
}

// decodeSkillLevels reads and validates a SkillLevelsRequest, writing a 400 on failure.
func (s *Server) decodeSkillLevels(w http.ResponseWriter, r *http.Request) (*types.SkillLevelsRequest, bool) {
	var req types.SkillLevelsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}
	if req.SkillLevels == nil {
		req.SkillLevels = map[string]types.Level{}
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationError(err).Error())
		return nil, false
	}
	return &req, true
}
