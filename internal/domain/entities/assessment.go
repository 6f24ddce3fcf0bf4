package entities

import (
	"time"
)

// RiskLevel is the tiered verdict derived from the overall safety score.
type RiskLevel string

const (
	RiskSafe      RiskLevel = "safe"
	RiskLow       RiskLevel = "low"
	RiskModerate  RiskLevel = "moderate"
	RiskHigh      RiskLevel = "high"
	RiskCritical  RiskLevel = "critical"
)

// ClassifyRiskLevel maps a 0-10 safety score onto its risk tier. Higher
// scores are safer.
func ClassifyRiskLevel(score float64) RiskLevel {
	switch {
	case score >= 8.0:
		return RiskSafe
	case score >= 6.0:
		return RiskLow
	case score >= 4.0:
		return RiskModerate
	case score >= 2.0:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// ComponentRisks breaks the aggregate penalty into its three sources.
type ComponentRisks struct {
	InteractionRisk float64 `json:"interaction_risk"`
	StabilityRisk   float64 `json:"stability_risk"`
	ComplianceRisk  float64 `json:"compliance_risk"`
}

// Recommendation is one actionable mitigation step.
type Recommendation struct {
	Priority  string `json:"priority"` // "immediate", "high", "medium", "low"
	Category  string `json:"category"`
	Action    string `json:"action"`
	Rationale string `json:"rationale,omitempty"`
}

// SafetyAssessment is the final aggregated output of the analysis
// pipeline for a single food sample.
type SafetyAssessment struct {
	ID                 string                `json:"assessment_id"`
	SampleID           string                `json:"sample_id"`
	SampleName         string                `json:"sample_name,omitempty"`
	FoodType           string                `json:"food_type,omitempty"`
	OverallSafetyScore float64               `json:"overall_safety_score"` // [0,10], higher is safer
	RiskLevel          RiskLevel             `json:"risk_level"`
	ComponentRisks     ComponentRisks        `json:"component_risks"`
	ConfidenceScore    float64               `json:"confidence_score"` // [0,1]
	ProteinProfiles    []ProteinProfile      `json:"protein_profiles,omitempty"`
	Interactions       []InteractionRecord   `json:"interactions,omitempty"`
	EnzymeKinetics     []EnzymeKinetics      `json:"enzyme_kinetics,omitempty"`
	StabilityTimelines []StabilityTimeline   `json:"stability_timelines,omitempty"`
	Compliance         *ComplianceReport     `json:"compliance,omitempty"`
	ControlPoints      []CriticalControlPoint `json:"critical_control_points,omitempty"`
	Recommendations    []Recommendation      `json:"recommendations,omitempty"`
	RandomSeed         int64                 `json:"random_seed"`
	CreatedAt          time.Time             `json:"created_at"`
}

// CriticalInteractions returns interactions whose risk score reaches the
// escalation threshold.
func (a *SafetyAssessment) CriticalInteractions() []InteractionRecord {
	var out []InteractionRecord
	for _, ix := range a.Interactions {
		if ix.RiskScore() >= 7.0 {
			out = append(out, ix)
		}
	}
	return out
}

// SafetySummary is the condensed view returned by listing endpoints.
type SafetySummary struct {
	ID                 string    `json:"assessment_id"`
	SampleID           string    `json:"sample_id"`
	SampleName         string    `json:"sample_name,omitempty"`
	FoodType           string    `json:"food_type,omitempty"`
	OverallSafetyScore float64   `json:"overall_safety_score"`
	RiskLevel          RiskLevel `json:"risk_level"`
	ConfidenceScore    float64   `json:"confidence_score"`
	InteractionCount   int       `json:"interaction_count"`
	ViolationCount     int       `json:"violation_count"`
	CreatedAt          time.Time `json:"created_at"`
}

// Summary projects the assessment onto its listing form.
func (a *SafetyAssessment) Summary() SafetySummary {
	violations := 0
	if a.Compliance != nil {
		violations = len(a.Compliance.Violations)
	}
	return SafetySummary{
		ID:                 a.ID,
		SampleID:           a.SampleID,
		SampleName:         a.SampleName,
		FoodType:           a.FoodType,
		OverallSafetyScore: a.OverallSafetyScore,
		RiskLevel:          a.RiskLevel,
		ConfidenceScore:    a.ConfidenceScore,
		InteractionCount:   len(a.Interactions),
		ViolationCount:     violations,
		CreatedAt:          a.CreatedAt,
	}
}
