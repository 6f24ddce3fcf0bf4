package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodsentry/backend/internal/adapters/catalog"
	"github.com/foodsentry/backend/internal/adapters/providers/descriptors"
	"github.com/foodsentry/backend/internal/domain/entities"
)

func newInteractionService(seed int64) *InteractionService {
	return NewInteractionService(
		catalog.NewMemoryToxinCatalog(),
		catalog.NewMemoryProteinCatalog(),
		descriptors.NewFallbackProvider(seed),
		seed,
	)
}

func caseinProfile() entities.ProteinProfile {
	return entities.ProteinProfile{
		Name:                 "casein",
		Type:                 entities.ProteinTypeDairy,
		MolecularWeight:      24000,
		IsoelectricPoint:     4.6,
		HydrophobicityIndex:  -0.5,
		StabilityScore:       6.5,
		FunctionalImportance: entities.ImportanceHigh,
	}
}

func TestPredictInteraction_ProducesRankedPoses(t *testing.T) {
	svc := newInteractionService(42)

	record, err := svc.PredictInteraction(context.Background(), "aflatoxin_b1", caseinProfile(), mildConditions())
	require.NoError(t, err)

	assert.Equal(t, "aflatoxin_b1", record.ToxinName)
	assert.Equal(t, "casein", record.ProteinName)

	// casein has three catalog sites, one pose each
	require.Len(t, record.Poses, 3)
	for i := 1; i < len(record.Poses); i++ {
		assert.LessOrEqual(t, record.Poses[i-1].BindingAffinity, record.Poses[i].BindingAffinity)
	}
	assert.Equal(t, record.Poses[0].BindingAffinity, record.BindingAffinity)
	assert.InDelta(t, record.Poses[0].BindingAffinity*1.2, record.Poses[0].InteractionEnergy, 1e-9)
	assert.NotEmpty(t, record.Poses[0].ContactResidues)
}

func TestPredictInteraction_DerivedFieldsInRange(t *testing.T) {
	svc := newInteractionService(42)

	record, err := svc.PredictInteraction(context.Background(), "patulin", caseinProfile(), mildConditions())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, record.ToxicityEnhancement, 1.0)
	assert.LessOrEqual(t, record.ToxicityEnhancement, 10.0)
	assert.GreaterOrEqual(t, record.Confidence, 0.0)
	assert.LessOrEqual(t, record.Confidence, 1.0)
	assert.Contains(t, record.StructuralChanges, "helix_content_change")
	assert.Contains(t, record.StructuralChanges, "overall_structural_change")
	assert.Contains(t, record.EnvironmentalEffects, "temperature")
}

func TestPredictInteraction_Deterministic(t *testing.T) {
	a, err := newInteractionService(9).PredictInteraction(context.Background(), "ochratoxin_a", caseinProfile(), mildConditions())
	require.NoError(t, err)
	b, err := newInteractionService(9).PredictInteraction(context.Background(), "ochratoxin_a", caseinProfile(), mildConditions())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestPredictInteraction_LiteratureSupport(t *testing.T) {
	svc := newInteractionService(42)
	albumin := caseinProfile()
	albumin.Name = "albumin"

	record, err := svc.PredictInteraction(context.Background(), "aflatoxin_b1", albumin, mildConditions())
	require.NoError(t, err)
	assert.NotEmpty(t, record.LiteratureSupport)

	record, err = svc.PredictInteraction(context.Background(), "aflatoxin_b1", caseinProfile(), mildConditions())
	require.NoError(t, err)
	assert.Empty(t, record.LiteratureSupport)
}

func TestPredictInteraction_UnknownProteinUsesDefaultSite(t *testing.T) {
	svc := newInteractionService(42)
	profile := caseinProfile()
	profile.Name = "mystery_protein"

	record, err := svc.PredictInteraction(context.Background(), "patulin", profile, mildConditions())
	require.NoError(t, err)
	require.Len(t, record.Poses, 1)
	assert.Equal(t, []int{50, 51, 52}, record.Poses[0].Site)
}

func TestClassifyInteraction(t *testing.T) {
	assert.Equal(t, entities.InteractionCompetitiveInhibition, ClassifyInteraction(-8, entities.SiteTypeElectrostatic))
	assert.Equal(t, entities.InteractionAllostericBinding, ClassifyInteraction(-7.5, entities.SiteTypeHydrogenBond))
	assert.Equal(t, entities.InteractionStrongHydrophobic, ClassifyInteraction(-9, entities.SiteTypeHydrophobic))
	assert.Equal(t, entities.InteractionModerateBinding, ClassifyInteraction(-5, entities.SiteTypeHydrophobic))
	assert.Equal(t, entities.InteractionWeakBinding, ClassifyInteraction(-2, entities.SiteTypeHydrophobic))
}

func TestToxicityEnhancement(t *testing.T) {
	potent := 0.48
	mild := 500.0

	// potent toxin on a critical protein climbs fast
	high := ToxicityEnhancement(-8, &potent, entities.ImportanceCritical)
	low := ToxicityEnhancement(-3, &mild, entities.ImportanceLow)

	assert.Greater(t, high, low)
	assert.GreaterOrEqual(t, low, 1.0)
	assert.LessOrEqual(t, high, 10.0)

	// nil LD50 uses the default potency multiplier
	assert.InDelta(t, (1.0+(5.0-3.0)/10.0)*1.2*1.5, ToxicityEnhancement(-5, nil, entities.ImportanceMedium), 1e-9)
}

func TestStructuralChanges_EnvironmentalStress(t *testing.T) {
	calm := StructuralChanges(-6, 6.5, entities.ProcessingConditions{Temperature: 25, PH: 7, IonicStrength: 0.15})
	hot := StructuralChanges(-6, 6.5, entities.ProcessingConditions{Temperature: 85, PH: 3.5, IonicStrength: 0.15})

	assert.Greater(t, hot["helix_content_change"], calm["helix_content_change"])
	assert.Greater(t, hot["sheet_content_change"], calm["sheet_content_change"])
	assert.InDelta(t, calm["coil_content_change"], hot["coil_content_change"], 1e-9)
}

func TestScreenPairs(t *testing.T) {
	svc := newInteractionService(42)
	albumin := caseinProfile()
	albumin.Name = "albumin"
	albumin.MolecularWeight = 66500

	screens := svc.ScreenPairs(context.Background(), []string{"aflatoxin_b1", "solanine"},
		[]entities.ProteinProfile{caseinProfile(), albumin})
	require.Len(t, screens, 4)

	// sorted by priority, descending
	for i := 1; i < len(screens); i++ {
		assert.GreaterOrEqual(t, screens[i-1].PriorityScore, screens[i].PriorityScore)
	}

	var albuminScreen *entities.InteractionScreen
	for i := range screens {
		if screens[i].ToxinName == "aflatoxin_b1" && screens[i].ProteinName == "albumin" {
			albuminScreen = &screens[i]
		}
	}
	require.NotNil(t, albuminScreen)
	assert.True(t, albuminScreen.KnownInteraction)
	assert.Equal(t, 0.9, albuminScreen.Confidence)
	assert.Equal(t, "high", albuminScreen.RiskTier)
}

func TestPotencyScore_Tiers(t *testing.T) {
	for _, tt := range []struct {
		ld50     float64
		expected float64
	}{
		{0.001, 1.0},
		{0.5, 0.8},
		{50, 0.6},
		{500, 0.4},
		{5000, 0.2},
	} {
		v := tt.ld50
		assert.Equal(t, tt.expected, potencyScore(&v))
	}
	assert.Equal(t, 0.5, potencyScore(nil))
}

func TestRelevantToxins_FiltersByFoodType(t *testing.T) {
	svc := newInteractionService(42)

	grain := svc.RelevantToxins(context.Background(), "grain")
	assert.ElementsMatch(t, []string{
		"aflatoxin_b1", "deoxynivalenol", "fumonisin_b1", "ochratoxin_a", "patulin",
	}, grain)

	seafood := svc.RelevantToxins(context.Background(), "seafood")
	assert.Contains(t, seafood, "saxitoxin")
	assert.Contains(t, seafood, "botulinum_toxin")
	assert.NotContains(t, seafood, "aflatoxin_b1")
}

func TestRelevantToxins_UnknownFoodTypeScreensAll(t *testing.T) {
	svc := newInteractionService(42)

	all := svc.RelevantToxins(context.Background(), "mystery")
	assert.Len(t, all, 10)
}
