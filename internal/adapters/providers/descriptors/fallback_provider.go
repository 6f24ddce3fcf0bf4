package descriptors

import (
	"context"
	"hash/fnv"
	"math/rand"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/foodsentry/backend/internal/domain/entities"
)

// FallbackProvider generates synthetic molecular descriptors when no
// cheminformatics backend is available. Values are drawn from plausible
// drug-like ranges and are deterministic per toxin for a given seed.
type FallbackProvider struct {
	seed int64
}

// NewFallbackProvider creates a provider whose outputs are derived from
// seed.
func NewFallbackProvider(seed int64) *FallbackProvider {
	return &FallbackProvider{seed: seed}
}

// ComputeDescriptors fills the descriptor set for a toxin. Catalog
// molecular weight is kept when present; everything else is sampled
// from the per-toxin stream.
func (p *FallbackProvider) ComputeDescriptors(ctx context.Context, toxin entities.ToxinProfile) (entities.ToxinDescriptors, error) {
	rng := p.rngFor(toxin.Name)

	mw := toxin.MolecularWeight
	if mw <= 0 {
		mw = 200 + rng.Float64()*600
		log.Ctx(ctx).Debug().
			Str("toxin", toxin.Name).
			Float64("molecular_weight", mw).
			Msg("no catalog molecular weight, using synthetic value")
	}

	return entities.ToxinDescriptors{
		MolecularWeight:    mw,
		LogP:               -2 + rng.Float64()*8,
		HBondDonors:        rng.Intn(9),
		HBondAcceptors:     2 + rng.Intn(11),
		RotatableBonds:     rng.Intn(16),
		AromaticRings:      rng.Intn(5),
		TPSA:               20 + rng.Float64()*180,
		HeavyAtoms:         10 + rng.Intn(41),
		FormalCharge:       0,
		LipinskiViolations: rng.Intn(4),
	}, nil
}

func (p *FallbackProvider) rngFor(name string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(name)))
	return rand.New(rand.NewSource(p.seed ^ int64(h.Sum64())))
}
