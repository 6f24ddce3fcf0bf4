package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodsentry/backend/internal/domain/entities"
)

func TestMemoryProteinCatalog_Lookup(t *testing.T) {
	c := NewMemoryProteinCatalog()
	ctx := context.Background()

	entry, ok := c.GetProtein(ctx, "casein")
	require.True(t, ok)
	assert.Equal(t, entities.ProteinTypeDairy, entry.Type)
	assert.NotEmpty(t, entry.Sequence)

	_, ok = c.GetProtein(ctx, "unobtainium")
	assert.False(t, ok)
}

func TestMemoryProteinCatalog_NormalizesNames(t *testing.T) {
	c := NewMemoryProteinCatalog()
	ctx := context.Background()

	_, ok := c.GetProtein(ctx, "Whey Protein")
	assert.True(t, ok)
	_, ok = c.GetProtein(ctx, "whey-protein")
	assert.True(t, ok)
}

func TestMemoryProteinCatalog_BindingSites(t *testing.T) {
	c := NewMemoryProteinCatalog()
	ctx := context.Background()

	sites, ok := c.GetBindingSites(ctx, "gluten")
	require.True(t, ok)
	require.Len(t, sites, 3)
	assert.Equal(t, entities.SiteTypeHydrophobic, sites[0].Type)
	assert.Equal(t, 180.0, sites[0].Volume)

	_, ok = c.GetBindingSites(ctx, "albumin")
	assert.False(t, ok)
}

func TestMemoryToxinCatalog_Lookup(t *testing.T) {
	c := NewMemoryToxinCatalog()
	ctx := context.Background()

	toxin, ok := c.GetToxin(ctx, "aflatoxin_b1")
	require.True(t, ok)
	assert.Equal(t, 312.27, toxin.MolecularWeight)
	require.NotNil(t, toxin.LD50)
	assert.Equal(t, 0.48, *toxin.LD50)

	assert.Len(t, c.ListToxins(ctx), 10)
}

func TestMemoryToxinCatalog_KnownInteractions(t *testing.T) {
	c := NewMemoryToxinCatalog()
	ctx := context.Background()

	known := c.GetKnownInteractions(ctx, "aflatoxin_b1")
	require.Len(t, known, 2)
	assert.Equal(t, "albumin", known[0].ProteinName)
	assert.Equal(t, -7.2, known[0].BindingAffinity)

	assert.Empty(t, c.GetKnownInteractions(ctx, "patulin"))
}

func TestMemoryEnzymeCatalog_Kinetics(t *testing.T) {
	c := NewMemoryEnzymeCatalog()
	ctx := context.Background()

	entry, ok := c.GetKinetics(ctx, "amylase")
	require.True(t, ok)
	params, ok := entry.Substrates["starch"]
	require.True(t, ok)
	assert.Equal(t, 2.5, params.Km)
	assert.Equal(t, 45.0, params.Vmax)
	assert.Equal(t, 55.0, entry.OptimalTC)

	_, ok = c.GetKinetics(ctx, "telomerase")
	assert.False(t, ok)
}

func TestMemoryEnzymeCatalog_Stability(t *testing.T) {
	c := NewMemoryEnzymeCatalog()

	params, ok := c.GetStability(context.Background(), "catalase")
	require.True(t, ok)
	assert.Equal(t, 120.0, params.HalfLifeHours)
}

func TestMemoryRegulatoryCatalog_RegionalLimits(t *testing.T) {
	c := NewMemoryRegulatoryCatalog()
	ctx := context.Background()

	us, ok := c.GetLimit(ctx, "us_fda", "general", "aflatoxin_b1")
	require.True(t, ok)
	assert.Equal(t, 20.0, us.Limit)

	eu, ok := c.GetLimit(ctx, "eu_efsa", "general", "aflatoxin_b1")
	require.True(t, ok)
	assert.Equal(t, 2.0, eu.Limit)

	_, ok = c.GetLimit(ctx, "us_fda", "general", "unlisted_compound")
	assert.False(t, ok)
}

func TestMemoryRegulatoryCatalog_FoodTypeOverrides(t *testing.T) {
	c := NewMemoryRegulatoryCatalog()
	ctx := context.Background()

	infant, ok := c.GetLimit(ctx, "eu_efsa", "infant_food", "aflatoxin_b1")
	require.True(t, ok)
	assert.Equal(t, 0.1, infant.Limit)
	assert.Equal(t, "infant_food", infant.FoodType)

	// override applies regardless of region
	infantUS, ok := c.GetLimit(ctx, "us_fda", "infant_food", "aflatoxin_b1")
	require.True(t, ok)
	assert.Equal(t, 0.1, infantUS.Limit)
}

func TestMemoryRegulatoryCatalog_CompoundNormalization(t *testing.T) {
	c := NewMemoryRegulatoryCatalog()

	limit, ok := c.GetLimit(context.Background(), "us_fda", "general", "Aflatoxin B1")
	require.True(t, ok)
	assert.Equal(t, 20.0, limit.Limit)
}
