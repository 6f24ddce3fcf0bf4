package providers

import (
	"context"

	"github.com/foodsentry/backend/internal/domain/entities"
)

// StructureProvider predicts protein structural features from sequence.
// Production deployments may back this with an external prediction
// service; the default implementation is a deterministic sequence
// heuristic.
type StructureProvider interface {
	// PredictStructure returns secondary structure and binding site
	// candidates for a sequence. Implementations set StructureData.Source
	// so downstream confidence scoring can discount heuristic output.
	PredictStructure(ctx context.Context, proteinName, sequence string) (entities.StructureData, error)
}

// DescriptorProvider computes molecular descriptors for a toxin.
// Catalog-backed for known toxins; unknown toxins fall back to a seeded
// synthetic generator so the pipeline stays deterministic end to end.
type DescriptorProvider interface {
	ComputeDescriptors(ctx context.Context, toxin entities.ToxinProfile) (entities.ToxinDescriptors, error)
}
