package catalog

import (
	"context"
	"sync"

	"github.com/foodsentry/backend/internal/domain/repositories"
)

// MemoryEnzymeCatalog serves the built-in enzyme kinetics and stability
// reference tables.
type MemoryEnzymeCatalog struct {
	mu        sync.RWMutex
	kinetics  map[string]repositories.EnzymeCatalogEntry
	stability map[string]repositories.StabilityParams
}

// NewMemoryEnzymeCatalog builds the catalog with the default dataset.
func NewMemoryEnzymeCatalog() *MemoryEnzymeCatalog {
	return &MemoryEnzymeCatalog{
		kinetics:  defaultEnzymeKinetics(),
		stability: defaultEnzymeStability(),
	}
}

func (c *MemoryEnzymeCatalog) GetKinetics(_ context.Context, enzymeName string) (repositories.EnzymeCatalogEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.kinetics[normalizeName(enzymeName)]
	return entry, ok
}

func (c *MemoryEnzymeCatalog) GetStability(_ context.Context, enzymeName string) (repositories.StabilityParams, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	params, ok := c.stability[normalizeName(enzymeName)]
	return params, ok
}

func defaultEnzymeKinetics() map[string]repositories.EnzymeCatalogEntry {
	return map[string]repositories.EnzymeCatalogEntry{
		"amylase": {
			Name: "amylase",
			Substrates: map[string]repositories.KineticParams{
				"starch":      {Km: 2.5, Vmax: 45, Kcat: 1200},
				"amylose":     {Km: 1.8, Vmax: 38, Kcat: 980},
				"amylopectin": {Km: 3.2, Vmax: 52, Kcat: 1350},
			},
			OptimalPH:       6.8,
			OptimalTC:       55,
			MolecularWeight: 56000,
			Cofactors:       []string{"Ca2+", "Cl-"},
		},
		"protease": {
			Name: "protease",
			Substrates: map[string]repositories.KineticParams{
				"casein":   {Km: 0.8, Vmax: 25, Kcat: 450},
				"albumin":  {Km: 1.2, Vmax: 18, Kcat: 320},
				"globulin": {Km: 1.5, Vmax: 22, Kcat: 380},
			},
			OptimalPH:       8.5,
			OptimalTC:       45,
			MolecularWeight: 35000,
			Cofactors:       []string{"Zn2+"},
		},
		"lipase": {
			Name: "lipase",
			Substrates: map[string]repositories.KineticParams{
				"triglycerides": {Km: 0.5, Vmax: 35, Kcat: 890},
				"phospholipids": {Km: 0.3, Vmax: 28, Kcat: 720},
			},
			OptimalPH:       8.0,
			OptimalTC:       40,
			MolecularWeight: 42000,
			Cofactors:       []string{"Ca2+"},
		},
		"peroxidase": {
			Name: "peroxidase",
			Substrates: map[string]repositories.KineticParams{
				"hydrogen_peroxide":  {Km: 0.1, Vmax: 75, Kcat: 2500},
				"phenolic_compounds": {Km: 0.05, Vmax: 65, Kcat: 2100},
			},
			OptimalPH:       7.0,
			OptimalTC:       25,
			MolecularWeight: 44000,
			Cofactors:       []string{"heme"},
		},
		"catalase": {
			Name: "catalase",
			Substrates: map[string]repositories.KineticParams{
				"hydrogen_peroxide": {Km: 25, Vmax: 150, Kcat: 40000},
			},
			OptimalPH:       7.0,
			OptimalTC:       37,
			MolecularWeight: 250000,
			Cofactors:       []string{"heme", "Fe3+"},
		},
		"lysozyme": {
			Name: "lysozyme",
			Substrates: map[string]repositories.KineticParams{
				"peptidoglycan": {Km: 0.006, Vmax: 85, Kcat: 3500},
			},
			OptimalPH:       9.2,
			OptimalTC:       25,
			MolecularWeight: 14300,
		},
	}
}

func defaultEnzymeStability() map[string]repositories.StabilityParams {
	return map[string]repositories.StabilityParams{
		"amylase":    {HalfLifeHours: 72, TempSensitivity: 0.1, PHSensitivity: 0.05},
		"protease":   {HalfLifeHours: 48, TempSensitivity: 0.15, PHSensitivity: 0.08},
		"lipase":     {HalfLifeHours: 96, TempSensitivity: 0.08, PHSensitivity: 0.06},
		"peroxidase": {HalfLifeHours: 24, TempSensitivity: 0.2, PHSensitivity: 0.1},
		"catalase":   {HalfLifeHours: 120, TempSensitivity: 0.05, PHSensitivity: 0.03},
	}
}
