package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/foodsentry/backend/internal/application/services"
	"github.com/foodsentry/backend/internal/domain/entities"
	"github.com/foodsentry/backend/internal/domain/repositories"
)

// AnalysisHandler handles analysis pipeline and assessment HTTP requests
type AnalysisHandler struct {
	pipeline       *services.PipelineService
	assessmentRepo repositories.AssessmentRepository
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(pipeline *services.PipelineService, assessmentRepo repositories.AssessmentRepository) *AnalysisHandler {
	return &AnalysisHandler{
		pipeline:       pipeline,
		assessmentRepo: assessmentRepo,
	}
}

// AnalyzeRequest is the request body for POST /api/analysis
type AnalyzeRequest struct {
	Sample entities.FoodSample `json:"sample"`
	Region string              `json:"region,omitempty"`
}

// AnalyzeSample handles POST /api/analysis
func (h *AnalysisHandler) AnalyzeSample(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assessment, err := h.pipeline.AnalyzeSample(r.Context(), req.Sample, req.Region)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, assessment)
}

// ScreenSample handles POST /api/analysis/screen
func (h *AnalysisHandler) ScreenSample(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	screens, err := h.pipeline.ScreenSample(r.Context(), req.Sample)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"screens": screens,
		"count":   len(screens),
	})
}

// ListAssessments handles GET /api/assessments
func (h *AnalysisHandler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", 50)
	offset := parseIntParam(r, "offset", 0)

	var (
		summaries []*entities.SafetySummary
		err       error
	)
	if level := r.URL.Query().Get("risk_level"); level != "" {
		summaries, err = h.assessmentRepo.ListByRiskLevel(r.Context(), entities.RiskLevel(level), limit, offset)
	} else {
		summaries, err = h.assessmentRepo.List(r.Context(), limit, offset)
	}
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"assessments": summaries,
		"count":       len(summaries),
	})
}

// GetAssessment handles GET /api/assessments/{id}
func (h *AnalysisHandler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "assessment ID is required")
		return
	}

	assessment, err := h.assessmentRepo.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, assessment)
}

// GetSampleAssessments handles GET /api/samples/{id}/assessments
func (h *AnalysisHandler) GetSampleAssessments(w http.ResponseWriter, r *http.Request) {
	sampleID := r.PathValue("id")
	if sampleID == "" {
		respondWithError(w, http.StatusBadRequest, "sample ID is required")
		return
	}

	assessments, err := h.assessmentRepo.GetBySampleID(r.Context(), sampleID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"assessments": assessments,
		"count":       len(assessments),
	})
}

// DeleteAssessment handles DELETE /api/assessments/{id}
func (h *AnalysisHandler) DeleteAssessment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "assessment ID is required")
		return
	}

	if err := h.assessmentRepo.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func parseIntParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
