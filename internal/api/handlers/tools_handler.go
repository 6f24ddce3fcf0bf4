package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/foodsentry/backend/internal/application/services"
	"github.com/foodsentry/backend/internal/domain/entities"
)

// ToolsHandler exposes the individual analysis stages as standalone
// endpoints so lab clients can run one computation without a full
// pipeline pass.
type ToolsHandler struct {
	proteins     *services.ProteinAnalysisService
	interactions *services.InteractionService
	kinetics     *services.KineticsService
	compliance   *services.ComplianceService
	risk         *services.RiskScoringService
	advisory     *services.AdvisoryService
}

// NewToolsHandler creates a new tools handler
func NewToolsHandler(
	proteins *services.ProteinAnalysisService,
	interactions *services.InteractionService,
	kinetics *services.KineticsService,
	compliance *services.ComplianceService,
	risk *services.RiskScoringService,
	advisory *services.AdvisoryService,
) *ToolsHandler {
	return &ToolsHandler{
		proteins:     proteins,
		interactions: interactions,
		kinetics:     kinetics,
		compliance:   compliance,
		risk:         risk,
		advisory:     advisory,
	}
}

// ProteinAnalysisRequest is the request body for POST /api/tools/protein-analysis
type ProteinAnalysisRequest struct {
	ProteinName string                         `json:"protein_name"`
	Conditions  entities.ProcessingConditions `json:"conditions"`
}

// AnalyzeProtein handles POST /api/tools/protein-analysis
func (h *ToolsHandler) AnalyzeProtein(w http.ResponseWriter, r *http.Request) {
	var req ProteinAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProteinName == "" {
		respondWithError(w, http.StatusBadRequest, "protein_name is required")
		return
	}

	profile, err := h.proteins.AnalyzeProtein(r.Context(), req.ProteinName, req.Conditions.Normalized())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, profile)
}

// InteractionRequest is the request body for POST /api/tools/interaction
type InteractionRequest struct {
	ToxinName   string                         `json:"toxin_name"`
	ProteinName string                         `json:"protein_name"`
	Conditions  entities.ProcessingConditions `json:"conditions"`
}

// PredictInteraction handles POST /api/tools/interaction
func (h *ToolsHandler) PredictInteraction(w http.ResponseWriter, r *http.Request) {
	var req InteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ToxinName == "" || req.ProteinName == "" {
		respondWithError(w, http.StatusBadRequest, "toxin_name and protein_name are required")
		return
	}

	conditions := req.Conditions.Normalized()
	profile, err := h.proteins.AnalyzeProtein(r.Context(), req.ProteinName, conditions)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	record, err := h.interactions.PredictInteraction(r.Context(), req.ToxinName, profile, conditions)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, record)
}

// KineticsRequest is the request body for POST /api/tools/kinetics
type KineticsRequest struct {
	EnzymeName string                         `json:"enzyme_name"`
	Substrate  string                         `json:"substrate"`
	Conditions entities.ProcessingConditions `json:"conditions"`
}

// ComputeKinetics handles POST /api/tools/kinetics
func (h *ToolsHandler) ComputeKinetics(w http.ResponseWriter, r *http.Request) {
	var req KineticsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.EnzymeName == "" || req.Substrate == "" {
		respondWithError(w, http.StatusBadRequest, "enzyme_name and substrate are required")
		return
	}

	kinetics, err := h.kinetics.ComputeKinetics(r.Context(), req.EnzymeName, req.Substrate, req.Conditions.Normalized())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, kinetics)
}

// InhibitionRequest is the request body for POST /api/tools/inhibition
type InhibitionRequest struct {
	EnzymeName    string                         `json:"enzyme_name"`
	Substrate     string                         `json:"substrate"`
	Inhibitor     string                         `json:"inhibitor"`
	Concentration float64                        `json:"concentration_mm"`
	Conditions    entities.ProcessingConditions `json:"conditions"`
}

// PredictInhibition handles POST /api/tools/inhibition
func (h *ToolsHandler) PredictInhibition(w http.ResponseWriter, r *http.Request) {
	var req InhibitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.EnzymeName == "" || req.Inhibitor == "" {
		respondWithError(w, http.StatusBadRequest, "enzyme_name and inhibitor are required")
		return
	}
	if req.Concentration <= 0 {
		respondWithError(w, http.StatusBadRequest, "concentration_mm must be positive")
		return
	}

	conditions := req.Conditions.Normalized()
	kinetics, err := h.kinetics.ComputeKinetics(r.Context(), req.EnzymeName, req.Substrate, conditions)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	result, err := h.kinetics.PredictInhibition(r.Context(), kinetics, req.Inhibitor, req.Concentration)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// StabilityRequest is the request body for POST /api/tools/stability
type StabilityRequest struct {
	EnzymeName string                         `json:"enzyme_name"`
	Storage    entities.ProcessingConditions `json:"storage"`
}

// PredictStability handles POST /api/tools/stability
func (h *ToolsHandler) PredictStability(w http.ResponseWriter, r *http.Request) {
	var req StabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.EnzymeName == "" {
		respondWithError(w, http.StatusBadRequest, "enzyme_name is required")
		return
	}

	timeline, err := h.kinetics.PredictStability(r.Context(), req.EnzymeName, req.Storage.Normalized())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, timeline)
}

// SafetyScoreRequest is the request body for POST /api/tools/safety-score
type SafetyScoreRequest struct {
	ProteinProfiles []entities.ProteinProfile    `json:"protein_profiles"`
	Interactions    []entities.InteractionRecord `json:"interactions"`
	Compliance      *entities.ComplianceReport   `json:"compliance,omitempty"`
}

// SafetyScoreResponse is the aggregated scoring result.
type SafetyScoreResponse struct {
	OverallSafetyScore float64                 `json:"overall_safety_score"`
	RiskLevel          entities.RiskLevel      `json:"risk_level"`
	ComponentRisks     entities.ComponentRisks `json:"component_risks"`
	ConfidenceScore    float64                 `json:"confidence_score"`
}

// ComputeSafetyScore handles POST /api/tools/safety-score
func (h *ToolsHandler) ComputeSafetyScore(w http.ResponseWriter, r *http.Request) {
	var req SafetyScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	score, level, risks, confidence := h.risk.Score(req.ProteinProfiles, req.Interactions, req.Compliance)

	respondWithJSON(w, http.StatusOK, SafetyScoreResponse{
		OverallSafetyScore: score,
		RiskLevel:          level,
		ComponentRisks:     risks,
		ConfidenceScore:    confidence,
	})
}

// ControlPointsRequest is the request body for POST /api/tools/ccp
type ControlPointsRequest struct {
	Sample entities.FoodSample `json:"sample"`
}

// AssessControlPoints handles POST /api/tools/ccp
func (h *ToolsHandler) AssessControlPoints(w http.ResponseWriter, r *http.Request) {
	var req ControlPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Sample.Name == "" && req.Sample.FoodType == "" {
		respondWithError(w, http.StatusBadRequest, "sample is required")
		return
	}

	req.Sample.Conditions = req.Sample.Conditions.Normalized()
	points := h.advisory.IdentifyControlPoints(req.Sample)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"critical_control_points": points,
		"count":                   len(points),
	})
}

// ComplianceRequest is the request body for POST /api/tools/compliance
type ComplianceRequest struct {
	Region         string             `json:"region"`
	FoodType       string             `json:"food_type"`
	DetectedLevels map[string]float64 `json:"detected_levels"`
}

// AssessCompliance handles POST /api/tools/compliance
func (h *ToolsHandler) AssessCompliance(w http.ResponseWriter, r *http.Request) {
	var req ComplianceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Region == "" {
		respondWithError(w, http.StatusBadRequest, "region is required")
		return
	}
	if len(req.DetectedLevels) == 0 {
		respondWithError(w, http.StatusBadRequest, "detected_levels is required")
		return
	}

	report, err := h.compliance.AssessCompliance(r.Context(), req.Region, req.FoodType, req.DetectedLevels)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}
