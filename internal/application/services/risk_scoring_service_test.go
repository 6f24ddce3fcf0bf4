package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodsentry/backend/internal/domain/entities"
)

func TestRiskScoringService_CleanSampleScoresHigh(t *testing.T) {
	svc := NewRiskScoringService()

	proteins := []entities.ProteinProfile{
		{Name: "casein", StabilityScore: 7.0, AnalysisConfidence: 0.8},
	}
	interactions := []entities.InteractionRecord{
		{BindingAffinity: -1.5, ToxicityEnhancement: 1.0, Confidence: 0.8},
	}

	score, level, risks, confidence := svc.Score(proteins, interactions, nil)

	assert.Greater(t, score, 8.0)
	assert.Equal(t, entities.RiskSafe, level)
	assert.Equal(t, 0.0, risks.StabilityRisk)
	assert.Equal(t, 0.0, risks.ComplianceRisk)
	assert.Greater(t, confidence, 0.7)
}

func TestRiskScoringService_ComponentMath(t *testing.T) {
	svc := NewRiskScoringService()

	proteins := []entities.ProteinProfile{
		{StabilityScore: 3.5, AnalysisConfidence: 0.8}, // (7-3.5)/7*5 = 2.5
		{StabilityScore: 7.0, AnalysisConfidence: 0.8}, // 0
	}
	interactions := []entities.InteractionRecord{
		{BindingAffinity: -6.0, ToxicityEnhancement: 1.5,
			StructuralChanges: map[string]float64{"overall_structural_change": 10}}, // 3 + 0.5 + 1 = 4.5
	}
	compliance := &entities.ComplianceReport{
		TotalAssessed: 2,
		Violations:    []entities.CompoundAssessment{{Compound: "patulin"}}, // 1/2*5 = 2.5
	}

	score, level, risks, _ := svc.Score(proteins, interactions, compliance)

	assert.InDelta(t, 4.5, risks.InteractionRisk, 1e-9)
	assert.InDelta(t, 1.25, risks.StabilityRisk, 1e-9)
	assert.InDelta(t, 2.5, risks.ComplianceRisk, 1e-9)
	assert.InDelta(t, 10.0-4.5-1.25-2.5, score, 1e-9)
	assert.Equal(t, entities.RiskCritical, level)
}

func TestRiskScoringService_ScoreNeverNegative(t *testing.T) {
	svc := NewRiskScoringService()

	interactions := []entities.InteractionRecord{
		{BindingAffinity: -20, ToxicityEnhancement: 10,
			StructuralChanges: map[string]float64{"overall_structural_change": 100}},
	}
	proteins := []entities.ProteinProfile{{StabilityScore: 0}}
	compliance := &entities.ComplianceReport{
		TotalAssessed: 1,
		Violations:    []entities.CompoundAssessment{{}},
	}

	score, level, _, _ := svc.Score(proteins, interactions, compliance)
	assert.Equal(t, 0.0, score)
	assert.Equal(t, entities.RiskCritical, level)
}

func TestRiskScoringService_MoreViolationsLowerScore(t *testing.T) {
	svc := NewRiskScoringService()
	proteins := []entities.ProteinProfile{{StabilityScore: 7, AnalysisConfidence: 0.8}}

	clean, _, _, _ := svc.Score(proteins, nil, &entities.ComplianceReport{TotalAssessed: 2})
	dirty, _, _, _ := svc.Score(proteins, nil, &entities.ComplianceReport{
		TotalAssessed: 2,
		Violations:    []entities.CompoundAssessment{{}, {}},
	})

	assert.Greater(t, clean, dirty)
}

func TestRiskScoringService_ConfidenceOverPresentCategories(t *testing.T) {
	svc := NewRiskScoringService()

	// nothing analyzed: only the zero completeness term remains
	_, _, _, confidence := svc.Score(nil, nil, nil)
	assert.Equal(t, 0.0, confidence)

	// proteins only: mean of protein confidence and half completeness
	proteins := []entities.ProteinProfile{{StabilityScore: 7, AnalysisConfidence: 0.8}}
	_, _, _, confidence = svc.Score(proteins, nil, nil)
	assert.InDelta(t, (0.8+0.5)/2.0, confidence, 1e-9)

	// both categories present raises completeness to 1
	interactions := []entities.InteractionRecord{{Confidence: 0.9, ToxicityEnhancement: 1}}
	_, _, _, confidence = svc.Score(proteins, interactions, nil)
	assert.InDelta(t, (0.9+0.8+1.0)/3.0, confidence, 1e-9)
}
