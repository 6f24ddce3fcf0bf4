package services

import (
	"math"

	"github.com/foodsentry/backend/internal/domain/entities"
)

// RiskScoringService aggregates per-stage results into the overall
// safety score. Pure computation over its inputs.
type RiskScoringService struct{}

// NewRiskScoringService creates a new risk scoring service.
func NewRiskScoringService() *RiskScoringService {
	return &RiskScoringService{}
}

// Score aggregates interaction, stability and compliance risk into a
// 0-10 safety score where higher is safer, plus the matching risk tier
// and an overall confidence estimate.
func (s *RiskScoringService) Score(
	proteins []entities.ProteinProfile,
	interactions []entities.InteractionRecord,
	compliance *entities.ComplianceReport,
) (float64, entities.RiskLevel, entities.ComponentRisks, float64) {
	risks := entities.ComponentRisks{
		InteractionRisk: interactionRisk(interactions),
		StabilityRisk:   stabilityRisk(proteins),
		ComplianceRisk:  complianceRisk(compliance),
	}

	score := math.Max(0, 10.0-risks.InteractionRisk-risks.StabilityRisk-risks.ComplianceRisk)
	confidence := overallConfidence(proteins, interactions)

	return score, entities.ClassifyRiskLevel(score), risks, confidence
}

func interactionRisk(interactions []entities.InteractionRecord) float64 {
	if len(interactions) == 0 {
		return 0
	}
	total := 0.0
	for i := range interactions {
		total += interactions[i].RiskScore()
	}
	return total / float64(len(interactions))
}

// stabilityRisk converts each protein's distance below the stable
// baseline of 7 into a 0-5 penalty and averages.
func stabilityRisk(proteins []entities.ProteinProfile) float64 {
	if len(proteins) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range proteins {
		total += math.Max(0, (7.0-p.StabilityScore)/7.0*5.0)
	}
	return total / float64(len(proteins))
}

func complianceRisk(report *entities.ComplianceReport) float64 {
	if report == nil || report.TotalAssessed == 0 {
		return 0
	}
	return float64(len(report.Violations)) / float64(report.TotalAssessed) * 5.0
}

// overallConfidence averages the mean confidence of each category that
// produced results, plus a data-completeness term, so a thin analysis
// is visibly less certain. Absent categories contribute nothing beyond
// the completeness penalty.
func overallConfidence(proteins []entities.ProteinProfile, interactions []entities.InteractionRecord) float64 {
	var factors []float64

	if len(interactions) > 0 {
		total := 0.0
		for _, ix := range interactions {
			total += ix.Confidence
		}
		factors = append(factors, total/float64(len(interactions)))
	}

	if len(proteins) > 0 {
		total := 0.0
		for _, p := range proteins {
			total += p.AnalysisConfidence
		}
		factors = append(factors, total/float64(len(proteins)))
	}

	completeness := float64(len(factors)) / 2.0
	factors = append(factors, completeness)

	total := 0.0
	for _, f := range factors {
		total += f
	}
	return total / float64(len(factors))
}
