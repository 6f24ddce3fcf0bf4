package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/foodsentry/backend/internal/domain/entities"
)

// MemoryRegulatoryCatalog serves the built-in regulatory limit tables.
// Limits are in ppb. Food-type overrides shadow the general table for
// the same region and compound.
type MemoryRegulatoryCatalog struct {
	mu        sync.RWMutex
	general   map[string]map[string]entities.RegulatoryLimit // region -> compound
	overrides map[string]map[string]entities.RegulatoryLimit // food type -> compound
}

// NewMemoryRegulatoryCatalog builds the catalog with the default tables.
func NewMemoryRegulatoryCatalog() *MemoryRegulatoryCatalog {
	return &MemoryRegulatoryCatalog{
		general:   defaultRegulatoryLimits(),
		overrides: defaultFoodTypeOverrides(),
	}
}

func (c *MemoryRegulatoryCatalog) GetLimit(_ context.Context, region, foodType, compound string) (entities.RegulatoryLimit, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	compound = normalizeName(compound)
	if byCompound, ok := c.overrides[normalizeName(foodType)]; ok {
		if limit, ok := byCompound[compound]; ok {
			return limit, true
		}
	}
	byCompound, ok := c.general[normalizeName(region)]
	if !ok {
		return entities.RegulatoryLimit{}, false
	}
	limit, ok := byCompound[compound]
	return limit, ok
}

func (c *MemoryRegulatoryCatalog) ListRegions(_ context.Context) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	regions := make([]string, 0, len(c.general))
	for region := range c.general {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}

func limitTable(foodType, regulation string, limits map[string]float64) map[string]entities.RegulatoryLimit {
	table := make(map[string]entities.RegulatoryLimit, len(limits))
	for compound, limit := range limits {
		table[compound] = entities.RegulatoryLimit{
			Compound:   compound,
			Limit:      limit,
			Unit:       "ppb",
			FoodType:   foodType,
			Regulation: regulation,
		}
	}
	return table
}

func defaultRegulatoryLimits() map[string]map[string]entities.RegulatoryLimit {
	return map[string]map[string]entities.RegulatoryLimit{
		"us_fda": limitTable("general", "21 CFR 109", map[string]float64{
			"aflatoxin_b1":    20,
			"aflatoxin_total": 20,
			"ochratoxin_a":    10,
			"fumonisin":       4000,
			"deoxynivalenol":  1000,
			"patulin":         50,
		}),
		"eu_efsa": limitTable("general", "EC 1881/2006", map[string]float64{
			"aflatoxin_b1":    2.0,
			"aflatoxin_total": 4.0,
			"ochratoxin_a":    5.0,
			"fumonisin":       1000,
			"deoxynivalenol":  750,
			"patulin":         25,
		}),
		"codex_alimentarius": limitTable("general", "CODEX STAN 193", map[string]float64{
			"aflatoxin_total": 10,
			"ochratoxin_a":    5,
			"fumonisin":       2000,
			"deoxynivalenol":  1000,
		}),
	}
}

func defaultFoodTypeOverrides() map[string]map[string]entities.RegulatoryLimit {
	return map[string]map[string]entities.RegulatoryLimit{
		"infant_food": limitTable("infant_food", "EC 1881/2006", map[string]float64{
			"aflatoxin_b1": 0.1,
			"ochratoxin_a": 0.5,
		}),
		"dairy": limitTable("dairy", "EC 1881/2006", map[string]float64{
			"aflatoxin_m1": 0.5,
		}),
	}
}
