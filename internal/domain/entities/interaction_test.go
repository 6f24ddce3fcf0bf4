package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractionRecord_RiskScore(t *testing.T) {
	tests := []struct {
		name     string
		record   InteractionRecord
		expected float64
	}{
		{
			name: "moderate interaction",
			record: InteractionRecord{
				BindingAffinity:     -6.0,
				ToxicityEnhancement: 1.5,
				StructuralChanges:   map[string]float64{"helix_content_change": 10.0, "sheet_content_change": 20.0},
			},
			// affinity 3.0 + enhancement 0.5 + structure 1.5
			expected: 5.0,
		},
		{
			name: "all components capped",
			record: InteractionRecord{
				BindingAffinity:     -20.0,
				ToxicityEnhancement: 9.0,
				StructuralChanges:   map[string]float64{"overall_change": 100.0},
			},
			// 5.0 + 2.0 + 3.0
			expected: 10.0,
		},
		{
			name: "no structural changes",
			record: InteractionRecord{
				BindingAffinity:     -4.0,
				ToxicityEnhancement: 1.0,
			},
			expected: 2.0,
		},
		{
			name: "enhancement below one contributes nothing",
			record: InteractionRecord{
				BindingAffinity:     -2.0,
				ToxicityEnhancement: 0.5,
			},
			expected: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.record.RiskScore(), 1e-9)
		})
	}
}

func TestInteractionRecord_RiskScore_MonotonicInAffinity(t *testing.T) {
	weak := InteractionRecord{BindingAffinity: -3.0, ToxicityEnhancement: 1.2}
	strong := InteractionRecord{BindingAffinity: -6.5, ToxicityEnhancement: 1.2}

	assert.Greater(t, strong.RiskScore(), weak.RiskScore())
}

func TestSafetyAssessment_CriticalInteractions(t *testing.T) {
	assessment := SafetyAssessment{
		Interactions: []InteractionRecord{
			{ToxinName: "aflatoxin_b1", BindingAffinity: -20.0, ToxicityEnhancement: 9.0, StructuralChanges: map[string]float64{"overall_change": 80.0}},
			{ToxinName: "patulin", BindingAffinity: -2.0, ToxicityEnhancement: 1.1},
		},
	}

	critical := assessment.CriticalInteractions()
	require.Len(t, critical, 1)
	assert.Equal(t, "aflatoxin_b1", critical[0].ToxinName)
}

func TestClassifyRiskLevel(t *testing.T) {
	assert.Equal(t, RiskSafe, ClassifyRiskLevel(9.1))
	assert.Equal(t, RiskSafe, ClassifyRiskLevel(8.0))
	assert.Equal(t, RiskLow, ClassifyRiskLevel(7.9))
	assert.Equal(t, RiskModerate, ClassifyRiskLevel(4.0))
	assert.Equal(t, RiskHigh, ClassifyRiskLevel(2.5))
	assert.Equal(t, RiskCritical, ClassifyRiskLevel(1.9))
}

func TestSafetyAssessment_JSONRoundTrip(t *testing.T) {
	original := SafetyAssessment{
		ID:                 "a1b2c3",
		SampleID:           "sample-001",
		SampleName:         "peanut butter batch 42",
		FoodType:           "nut_product",
		OverallSafetyScore: 6.4,
		RiskLevel:          RiskLow,
		ComponentRisks: ComponentRisks{
			InteractionRisk: 2.1,
			StabilityRisk:   0.8,
			ComplianceRisk:  0.7,
		},
		ConfidenceScore: 0.72,
		ProteinProfiles: []ProteinProfile{
			{
				Name:                "albumin",
				Type:                ProteinTypeMeat,
				Sequence:            "MKWVTFISLL",
				MolecularWeight:     66500,
				IsoelectricPoint:    4.7,
				HydrophobicityIndex: -0.3,
				StabilityScore:      6.5,
				ProcessingSensitivity: map[string]float64{
					"temperature": 0.3,
					"ph":          0.2,
				},
				FunctionalImportance: ImportanceHigh,
				AnalysisConfidence:   0.8,
			},
		},
		Interactions: []InteractionRecord{
			{
				ToxinName:           "aflatoxin_b1",
				ProteinName:         "albumin",
				BindingAffinity:     -7.2,
				InteractionType:     InteractionStrongHydrophobic,
				StructuralChanges:   map[string]float64{"helix_content_change": 12.3},
				ToxicityEnhancement: 2.4,
				Confidence:          0.85,
			},
		},
		EnzymeKinetics: []EnzymeKinetics{
			{
				EnzymeName: "amylase",
				Substrate:  "starch",
				Km:         2.5,
				Vmax:       45.0,
				Kcat:       1200,
			},
		},
		StabilityTimelines: []StabilityTimeline{
			{
				EnzymeName:        "amylase",
				DegradationRate:   0.0096,
				PredictedHalfLife: 72.0,
				Points: []StabilityPoint{
					{TimeHours: 0, RemainingActivity: 100},
					{TimeHours: 24, RemainingActivity: 79.4},
				},
				Classification: StabilityStable,
			},
		},
		Compliance: &ComplianceReport{
			Region:        "us_fda",
			FoodType:      "general",
			OverallStatus: OverallFullyCompliant,
			Results: map[string]CompoundAssessment{
				"aflatoxin_b1": {
					Compound:       "aflatoxin_b1",
					Status:         StatusCompliant,
					DetectedLevel:  1.5,
					Limit:          20.0,
					Unit:           "ppb",
					MarginOfSafety: 92.5,
				},
			},
			TotalAssessed: 1,
			AssessedAt:    time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		},
		Recommendations: []Recommendation{
			{Priority: "medium", Category: "storage", Action: "refrigerate below 4C"},
		},
		RandomSeed: 42,
		CreatedAt:  time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded SafetyAssessment
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, original, decoded)
}

func TestSafetyAssessment_Summary(t *testing.T) {
	a := SafetyAssessment{
		ID:                 "x",
		SampleID:           "s",
		OverallSafetyScore: 3.2,
		RiskLevel:          RiskModerate,
		Interactions:       []InteractionRecord{{}, {}},
		Compliance: &ComplianceReport{
			Violations: []CompoundAssessment{{Compound: "patulin"}},
		},
	}

	s := a.Summary()
	assert.Equal(t, 2, s.InteractionCount)
	assert.Equal(t, 1, s.ViolationCount)
	assert.Equal(t, RiskModerate, s.RiskLevel)
}
