package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodsentry/backend/internal/adapters/catalog"
	"github.com/foodsentry/backend/internal/domain/entities"
)

func newKineticsService() *KineticsService {
	return NewKineticsService(catalog.NewMemoryEnzymeCatalog())
}

func TestComputeKinetics_AtOptimum(t *testing.T) {
	svc := newKineticsService()
	optimal := entities.ProcessingConditions{Temperature: 55, PH: 6.8, Duration: 30, IonicStrength: 0.15}

	kin, err := svc.ComputeKinetics(context.Background(), "amylase", "starch", optimal)
	require.NoError(t, err)

	// all correction factors are 1 at the optimum
	assert.InDelta(t, 45.0, kin.Vmax, 45.0*0.01)
	assert.InDelta(t, 2.5, kin.Km, 2.5*0.01)
	assert.InDelta(t, 1200.0, kin.Kcat, 1200.0*0.01)
	assert.Equal(t, []string{"Ca2+", "Cl-"}, kin.Cofactors)
	assert.InDelta(t, 1.0, kin.ActivityFactors["temperature"], 1e-9)
	assert.InDelta(t, 1.0, kin.ActivityFactors["ph"], 1e-9)
}

func TestComputeKinetics_ColdSlowsCatalysis(t *testing.T) {
	svc := newKineticsService()
	cold := entities.ProcessingConditions{Temperature: 25, PH: 6.8, Duration: 30, IonicStrength: 0.15}

	kin, err := svc.ComputeKinetics(context.Background(), "amylase", "starch", cold)
	require.NoError(t, err)

	assert.Less(t, kin.Vmax, 45.0)
	assert.Less(t, kin.Kcat, 1200.0)
}

func TestComputeKinetics_HeatDenaturation(t *testing.T) {
	svc := newKineticsService()
	warm := entities.ProcessingConditions{Temperature: 75, PH: 6.8, Duration: 30, IonicStrength: 0.15}
	scalding := entities.ProcessingConditions{Temperature: 95, PH: 6.8, Duration: 30, IonicStrength: 0.15}

	kinWarm, err := svc.ComputeKinetics(context.Background(), "amylase", "starch", warm)
	require.NoError(t, err)
	kinHot, err := svc.ComputeKinetics(context.Background(), "amylase", "starch", scalding)
	require.NoError(t, err)

	// far above the optimum the denaturation term wins
	assert.Less(t, kinHot.Vmax, kinWarm.Vmax)
}

func TestComputeKinetics_PHShiftRaisesKm(t *testing.T) {
	svc := newKineticsService()
	offPH := entities.ProcessingConditions{Temperature: 55, PH: 4.0, Duration: 30, IonicStrength: 0.15}

	kin, err := svc.ComputeKinetics(context.Background(), "amylase", "starch", offPH)
	require.NoError(t, err)

	assert.Greater(t, kin.Km, 2.5)
	assert.Less(t, kin.Vmax, 45.0)
}

func TestComputeKinetics_UnknownEnzymeDefaults(t *testing.T) {
	svc := newKineticsService()

	kin, err := svc.ComputeKinetics(context.Background(), "telomerase", "generic", mildConditions())
	require.NoError(t, err)

	assert.Equal(t, 1.0, kin.Km)
	assert.Equal(t, 20.0, kin.Vmax)
	assert.Equal(t, 500.0, kin.Kcat)
	assert.Equal(t, 0.8, kin.ActivityFactors["temperature"])
	assert.Equal(t, 50000.0, kin.MolecularWeight)
}

func TestComputeKinetics_UnknownSubstrateDefaults(t *testing.T) {
	svc := newKineticsService()
	optimal := entities.ProcessingConditions{Temperature: 55, PH: 6.8, Duration: 30, IonicStrength: 0.15}

	kin, err := svc.ComputeKinetics(context.Background(), "amylase", "cellulose", optimal)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, kin.Vmax, 20.0*0.01)
}

func TestPredictInhibition_Categories(t *testing.T) {
	svc := newKineticsService()
	kin := entities.EnzymeKinetics{EnzymeName: "lipase", Vmax: 35}

	tests := []struct {
		inhibitor string
		kind      string
		ki        float64
	}{
		{"lead", "competitive", 0.01},
		{"tannin_extract", "non_competitive", 0.5},
		{"citric_acid", "competitive", 2.0},
		{"nacl", "uncompetitive", 10.0},
		{"unknown_compound", "non_competitive", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.inhibitor, func(t *testing.T) {
			res, err := svc.PredictInhibition(context.Background(), kin, tt.inhibitor, 1.0)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, res.InhibitionType)
			assert.Equal(t, tt.ki, res.Ki)
		})
	}
}

func TestPredictInhibition_EnzymeSpecificSensitivity(t *testing.T) {
	svc := newKineticsService()

	amylase, err := svc.PredictInhibition(context.Background(), entities.EnzymeKinetics{EnzymeName: "amylase", Vmax: 45}, "tannin", 1.0)
	require.NoError(t, err)
	assert.Equal(t, 0.25, amylase.Ki) // phenolics hit amylase twice as hard

	protease, err := svc.PredictInhibition(context.Background(), entities.EnzymeKinetics{EnzymeName: "protease", Vmax: 25}, "mercury", 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.002, protease.Ki, 1e-12)
	assert.Greater(t, protease.PercentInhibition, 99.0)
}

func TestPredictInhibition_FractionalActivity(t *testing.T) {
	svc := newKineticsService()
	kin := entities.EnzymeKinetics{EnzymeName: "lipase", Vmax: 35}

	res, err := svc.PredictInhibition(context.Background(), kin, "citric_acid", 2.0)
	require.NoError(t, err)

	// [I] = Ki gives half activity
	assert.InDelta(t, 0.5, res.FractionalActivity, 1e-9)
	assert.InDelta(t, 17.5, res.InhibitedActivity, 1e-9)
	assert.InDelta(t, 50.0, res.PercentInhibition, 1e-9)
}

func TestPredictInhibition_UnknownEnzymeGeneric(t *testing.T) {
	svc := newKineticsService()

	res, err := svc.PredictInhibition(context.Background(), entities.EnzymeKinetics{EnzymeName: "telomerase", Vmax: 20}, "lead", 1.0)
	require.NoError(t, err)
	assert.Equal(t, "mixed", res.InhibitionType)
	assert.InDelta(t, 30.0, res.PercentInhibition, 1e-9)
	assert.InDelta(t, 14.0, res.InhibitedActivity, 1e-9)
}

func TestPredictStability_Timeline(t *testing.T) {
	svc := newKineticsService()
	fridge := entities.ProcessingConditions{Temperature: 4, PH: 7, Duration: 0, IonicStrength: 0.15}

	timeline, err := svc.PredictStability(context.Background(), "amylase", fridge)
	require.NoError(t, err)

	require.NotEmpty(t, timeline.Points)
	assert.Equal(t, 0.0, timeline.Points[0].TimeHours)
	assert.InDelta(t, 100.0, timeline.Points[0].RemainingActivity, 1e-9)

	for i := 1; i < len(timeline.Points); i++ {
		assert.Less(t, timeline.Points[i].RemainingActivity, timeline.Points[i-1].RemainingActivity)
	}

	// at 4C and neutral pH the rate reduces to the catalog half-life
	assert.InDelta(t, 72.0, timeline.PredictedHalfLife, 0.1)
	assert.Equal(t, entities.StabilityModeratelyStable, timeline.Classification)
}

func TestPredictStability_HeatAcceleratesDecay(t *testing.T) {
	svc := newKineticsService()
	fridge := entities.ProcessingConditions{Temperature: 4, PH: 7, IonicStrength: 0.15}
	counter := entities.ProcessingConditions{Temperature: 30, PH: 7, IonicStrength: 0.15}

	cold, err := svc.PredictStability(context.Background(), "peroxidase", fridge)
	require.NoError(t, err)
	warm, err := svc.PredictStability(context.Background(), "peroxidase", counter)
	require.NoError(t, err)

	assert.Greater(t, warm.DegradationRate, cold.DegradationRate)
	assert.Less(t, warm.PredictedHalfLife, cold.PredictedHalfLife)
}

func TestPredictStability_UnknownEnzymeDefaults(t *testing.T) {
	svc := newKineticsService()

	timeline, err := svc.PredictStability(context.Background(), "telomerase",
		entities.ProcessingConditions{Temperature: 4, PH: 7, IonicStrength: 0.15})
	require.NoError(t, err)
	assert.InDelta(t, 48.0, timeline.PredictedHalfLife, 0.1)
}

func TestClassifyStability(t *testing.T) {
	assert.Equal(t, entities.StabilityVeryStable, classifyStability(200))
	assert.Equal(t, entities.StabilityStable, classifyStability(100))
	assert.Equal(t, entities.StabilityModeratelyStable, classifyStability(48))
	assert.Equal(t, entities.StabilityUnstable, classifyStability(12))
	assert.Equal(t, entities.StabilityVeryUnstable, classifyStability(3))
}
