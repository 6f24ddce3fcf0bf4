package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodsentry/backend/internal/adapters/catalog"
	"github.com/foodsentry/backend/internal/adapters/providers/structure"
	"github.com/foodsentry/backend/internal/domain/entities"
)

func newProteinService(seed int64) *ProteinAnalysisService {
	return NewProteinAnalysisService(
		catalog.NewMemoryProteinCatalog(),
		structure.NewHeuristicProvider(seed),
		seed,
	)
}

func mildConditions() entities.ProcessingConditions {
	return entities.ProcessingConditions{Temperature: 25, PH: 7.0, Duration: 30, IonicStrength: 0.15}
}

func TestMolecularWeight(t *testing.T) {
	// G + A = 75.07 + 89.09 - 18.015
	assert.InDelta(t, 146.145, MolecularWeight("GA"), 1e-6)

	// unknown residues use the average weight
	assert.InDelta(t, 110.0, MolecularWeight("X"), 1e-6)

	assert.Equal(t, 0.0, MolecularWeight(""))
}

func TestIsoelectricPoint(t *testing.T) {
	// balanced charges stay at neutral
	assert.InDelta(t, 7.0, IsoelectricPoint("KD"), 1e-9)

	// two net basic residues over four positions
	assert.InDelta(t, 7.0+2.0/4.0*4.0, IsoelectricPoint("KRGG"), 1e-9)

	// two net acidic residues shift below neutral
	assert.InDelta(t, 5.0, IsoelectricPoint("DEGG"), 1e-9)

	assert.Equal(t, 7.0, IsoelectricPoint(""))
}

func TestHydrophobicityIndex(t *testing.T) {
	// I (4.5) and R (-4.5) cancel
	assert.InDelta(t, 0.0, HydrophobicityIndex("IR"), 1e-9)
	assert.InDelta(t, 4.5, HydrophobicityIndex("I"), 1e-9)
}

func TestStabilityScore(t *testing.T) {
	tests := []struct {
		name       string
		sequence   string
		conditions entities.ProcessingConditions
		expected   float64
	}{
		{
			name:       "neutral baseline",
			sequence:   "GGGG",
			conditions: entities.ProcessingConditions{Temperature: 25, PH: 7, IonicStrength: 0.15},
			expected:   7.0,
		},
		{
			name:       "extreme pH and high heat",
			sequence:   "GGGG",
			conditions: entities.ProcessingConditions{Temperature: 90, PH: 11, IonicStrength: 0.15},
			expected:   2.0,
		},
		{
			name:       "mild pH and moderate heat",
			sequence:   "GGGG",
			conditions: entities.ProcessingConditions{Temperature: 65, PH: 4.5, IonicStrength: 0.15},
			expected:   4.5,
		},
		{
			name:       "disulfide bonus",
			sequence:   "CCGG",
			conditions: entities.ProcessingConditions{Temperature: 25, PH: 7, IonicStrength: 0.15},
			expected:   7.5,
		},
		{
			name:       "proline fraction credit",
			sequence:   "PPPP",
			conditions: entities.ProcessingConditions{Temperature: 25, PH: 7, IonicStrength: 0.15},
			expected:   9.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, StabilityScore(tt.sequence, tt.conditions), 1e-9)
		})
	}
}

func TestStabilityScore_AlwaysInRange(t *testing.T) {
	conditions := []entities.ProcessingConditions{
		{Temperature: 121, PH: 0.5},
		{Temperature: -20, PH: 14},
		{Temperature: 200, PH: 1},
	}
	for _, c := range conditions {
		score := StabilityScore("PPPPCCPP", c)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 10.0)
	}
}

func TestAnalyzeProtein_KnownProtein(t *testing.T) {
	svc := newProteinService(42)

	profile, err := svc.AnalyzeProtein(context.Background(), "casein", mildConditions())
	require.NoError(t, err)

	assert.Equal(t, "casein", profile.Name)
	assert.Equal(t, entities.ProteinTypeDairy, profile.Type)
	assert.Greater(t, profile.MolecularWeight, 10000.0)
	assert.Equal(t, 0.8, profile.AnalysisConfidence)
	assert.NotEmpty(t, profile.Structure.SecondaryStructure)
	assert.NotEmpty(t, profile.FunctionalSites)
	assert.LessOrEqual(t, len(profile.FunctionalSites), 15)
	assert.Contains(t, profile.ProcessingSensitivity, "temperature")
}

func TestAnalyzeProtein_UnknownProteinFallsBack(t *testing.T) {
	svc := newProteinService(42)

	profile, err := svc.AnalyzeProtein(context.Background(), "mystery_protein", mildConditions())
	require.NoError(t, err)

	assert.Equal(t, 0.5, profile.AnalysisConfidence)
	assert.Equal(t, entities.ImportanceMedium, profile.FunctionalImportance)
	assert.NotEmpty(t, profile.Sequence)
}

func TestAnalyzeProtein_Deterministic(t *testing.T) {
	a, err := newProteinService(7).AnalyzeProtein(context.Background(), "gluten", mildConditions())
	require.NoError(t, err)
	b, err := newProteinService(7).AnalyzeProtein(context.Background(), "gluten", mildConditions())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestAnalyzeProtein_HarshConditionsRaiseSensitivity(t *testing.T) {
	svc := newProteinService(42)
	harsh := entities.ProcessingConditions{Temperature: 85, PH: 3.0, Duration: 60, IonicStrength: 0.15}

	mild, err := svc.AnalyzeProtein(context.Background(), "whey_protein", mildConditions())
	require.NoError(t, err)
	stressed, err := svc.AnalyzeProtein(context.Background(), "whey_protein", harsh)
	require.NoError(t, err)

	assert.Less(t, stressed.StabilityScore, mild.StabilityScore)
	assert.Greater(t, stressed.ProcessingSensitivity["temperature"], mild.ProcessingSensitivity["temperature"])
	assert.Greater(t, stressed.ProcessingSensitivity["ph"], mild.ProcessingSensitivity["ph"])
}
