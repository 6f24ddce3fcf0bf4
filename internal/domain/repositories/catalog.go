package repositories

import (
	"context"

	"github.com/foodsentry/backend/internal/domain/entities"
)

// ProteinCatalogEntry is the static reference record for a known food
// protein. Sequence may be a representative fragment.
type ProteinCatalogEntry struct {
	Name                 string
	Type                 entities.ProteinType
	Sequence             string
	FunctionalImportance entities.FunctionalImportance
}

// EnzymeCatalogEntry holds baseline Michaelis-Menten parameters at the
// enzyme's optimal conditions, per substrate.
type EnzymeCatalogEntry struct {
	Name            string
	Substrates      map[string]KineticParams
	OptimalPH       float64
	OptimalTC       float64 // Celsius
	MolecularWeight float64
	Cofactors       []string
}

// KineticParams is the (Km, Vmax, kcat) triple for one substrate.
type KineticParams struct {
	Km   float64 // mM
	Vmax float64 // μmol/min/mg
	Kcat float64 // s⁻¹
}

// StabilityParams drives the first-order thermal degradation model.
type StabilityParams struct {
	HalfLifeHours   float64
	TempSensitivity float64
	PHSensitivity   float64
}

// KnownInteraction is a literature-backed toxin-protein binding record.
type KnownInteraction struct {
	ToxinName       string
	ProteinName     string
	BindingAffinity float64 // kcal/mol
	InteractionType string
	BindingSiteNote string
	References      []string
}

// ProteinCatalog resolves protein reference data. Lookups for unknown
// names return ok=false; callers substitute documented defaults and log
// the substitution rather than failing the pipeline.
type ProteinCatalog interface {
	GetProtein(ctx context.Context, name string) (ProteinCatalogEntry, bool)
	GetBindingSites(ctx context.Context, proteinName string) ([]entities.BindingSite, bool)
	ListProteins(ctx context.Context) []string
}

// ToxinCatalog resolves toxin reference data.
type ToxinCatalog interface {
	GetToxin(ctx context.Context, name string) (entities.ToxinProfile, bool)
	GetKnownInteractions(ctx context.Context, toxinName string) []KnownInteraction
	ListToxins(ctx context.Context) []string
}

// EnzymeCatalog resolves enzyme kinetic and stability reference data.
type EnzymeCatalog interface {
	GetKinetics(ctx context.Context, enzymeName string) (EnzymeCatalogEntry, bool)
	GetStability(ctx context.Context, enzymeName string) (StabilityParams, bool)
}

// RegulatoryCatalog resolves region-specific compound limits. Food-type
// overrides (infant food, dairy) take precedence over the general table
// for the same compound.
type RegulatoryCatalog interface {
	GetLimit(ctx context.Context, region, foodType, compound string) (entities.RegulatoryLimit, bool)
	ListRegions(ctx context.Context) []string
}
