package descriptors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodsentry/backend/internal/domain/entities"
)

func TestFallbackProvider_KeepsCatalogMolecularWeight(t *testing.T) {
	p := NewFallbackProvider(42)

	d, err := p.ComputeDescriptors(context.Background(), entities.ToxinProfile{
		Name:            "aflatoxin_b1",
		MolecularWeight: 312.27,
	})
	require.NoError(t, err)
	assert.Equal(t, 312.27, d.MolecularWeight)
}

func TestFallbackProvider_SyntheticRanges(t *testing.T) {
	p := NewFallbackProvider(42)

	d, err := p.ComputeDescriptors(context.Background(), entities.ToxinProfile{Name: "mystery_compound"})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, d.MolecularWeight, 200.0)
	assert.LessOrEqual(t, d.MolecularWeight, 800.0)
	assert.GreaterOrEqual(t, d.LogP, -2.0)
	assert.LessOrEqual(t, d.LogP, 6.0)
	assert.GreaterOrEqual(t, d.HBondAcceptors, 2)
	assert.LessOrEqual(t, d.HBondAcceptors, 12)
	assert.GreaterOrEqual(t, d.TPSA, 20.0)
	assert.LessOrEqual(t, d.TPSA, 200.0)
	assert.Equal(t, 0, d.FormalCharge)
}

func TestFallbackProvider_DeterministicPerToxin(t *testing.T) {
	toxin := entities.ToxinProfile{Name: "patulin", MolecularWeight: 154.12}

	a, err := NewFallbackProvider(9).ComputeDescriptors(context.Background(), toxin)
	require.NoError(t, err)
	b, err := NewFallbackProvider(9).ComputeDescriptors(context.Background(), toxin)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := NewFallbackProvider(10).ComputeDescriptors(context.Background(), toxin)
	require.NoError(t, err)
	assert.NotEqual(t, a.LogP, c.LogP)
}
