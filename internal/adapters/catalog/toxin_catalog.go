package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/foodsentry/backend/internal/domain/entities"
	"github.com/foodsentry/backend/internal/domain/repositories"
)

// MemoryToxinCatalog serves the built-in toxin reference set and the
// literature-backed interaction table.
type MemoryToxinCatalog struct {
	mu           sync.RWMutex
	toxins       map[string]entities.ToxinProfile
	interactions map[string][]repositories.KnownInteraction
}

// NewMemoryToxinCatalog builds the catalog with the default dataset.
func NewMemoryToxinCatalog() *MemoryToxinCatalog {
	return &MemoryToxinCatalog{
		toxins:       defaultToxins(),
		interactions: defaultKnownInteractions(),
	}
}

func (c *MemoryToxinCatalog) GetToxin(_ context.Context, name string) (entities.ToxinProfile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	toxin, ok := c.toxins[normalizeName(name)]
	return toxin, ok
}

func (c *MemoryToxinCatalog) GetKnownInteractions(_ context.Context, toxinName string) []repositories.KnownInteraction {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.interactions[normalizeName(toxinName)]
}

func (c *MemoryToxinCatalog) ListToxins(_ context.Context) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.toxins))
	for name := range c.toxins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ptrFloat(v float64) *float64 { return &v }

func defaultToxins() map[string]entities.ToxinProfile {
	return map[string]entities.ToxinProfile{
		"aflatoxin_b1": {
			Name:              "aflatoxin_b1",
			DisplayName:       "Aflatoxin B1",
			Type:              entities.ToxinTypeMycotoxin,
			MolecularFormula:  "C17H12O6",
			MolecularWeight:   312.27,
			SMILES:            "COc1cc2c(c3oc4cc(OC)c(O)cc4c(=O)c3c1)C1C=COC1O2",
			LD50:              ptrFloat(0.48),
			RegulatoryLimit:   ptrFloat(2.0),
			MechanismOfAction: "DNA intercalation and adduct formation",
		},
		"ochratoxin_a": {
			Name:              "ochratoxin_a",
			DisplayName:       "Ochratoxin A",
			Type:              entities.ToxinTypeMycotoxin,
			MolecularFormula:  "C20H18ClNO6",
			MolecularWeight:   403.8,
			LD50:              ptrFloat(20.0),
			RegulatoryLimit:   ptrFloat(5.0),
			MechanismOfAction: "phenylalanine-tRNA synthetase inhibition",
		},
		"botulinum_toxin": {
			Name:              "botulinum_toxin",
			DisplayName:       "Botulinum toxin",
			Type:              entities.ToxinTypeBacterial,
			MolecularFormula:  "Variable",
			MolecularWeight:   150000,
			LD50:              ptrFloat(0.000001),
			RegulatoryLimit:   ptrFloat(0.0),
			MechanismOfAction: "SNARE protein cleavage blocking acetylcholine release",
		},
		"solanine": {
			Name:              "solanine",
			DisplayName:       "Solanine",
			Type:              entities.ToxinTypePlant,
			MolecularFormula:  "C45H73NO15",
			MolecularWeight:   868.06,
			LD50:              ptrFloat(590),
			RegulatoryLimit:   ptrFloat(200),
			MechanismOfAction: "cholinesterase inhibition and membrane disruption",
		},
		"acrylamide": {
			Name:              "acrylamide",
			DisplayName:       "Acrylamide",
			Type:              entities.ToxinTypeChemical,
			MolecularFormula:  "C3H5NO",
			MolecularWeight:   71.08,
			LD50:              ptrFloat(150),
			RegulatoryLimit:   ptrFloat(1000),
			MechanismOfAction: "protein adduct formation, neurotoxicity",
		},
		"fumonisin_b1": {
			Name:              "fumonisin_b1",
			DisplayName:       "Fumonisin B1",
			Type:              entities.ToxinTypeMycotoxin,
			MolecularFormula:  "C34H59NO15",
			MolecularWeight:   721.84,
			LD50:              ptrFloat(100),
			RegulatoryLimit:   ptrFloat(4000),
			MechanismOfAction: "ceramide synthase inhibition",
		},
		"deoxynivalenol": {
			Name:              "deoxynivalenol",
			DisplayName:       "Deoxynivalenol",
			Type:              entities.ToxinTypeMycotoxin,
			MolecularFormula:  "C15H20O6",
			MolecularWeight:   296.32,
			LD50:              ptrFloat(70),
			RegulatoryLimit:   ptrFloat(1000),
			MechanismOfAction: "ribosomal protein synthesis inhibition",
		},
		"patulin": {
			Name:              "patulin",
			DisplayName:       "Patulin",
			Type:              entities.ToxinTypeMycotoxin,
			MolecularFormula:  "C7H6O4",
			MolecularWeight:   154.12,
			LD50:              ptrFloat(55),
			RegulatoryLimit:   ptrFloat(50),
			MechanismOfAction: "sulfhydryl group reactivity",
		},
		"ricin": {
			Name:              "ricin",
			DisplayName:       "Ricin",
			Type:              entities.ToxinTypePlant,
			MolecularFormula:  "Variable",
			MolecularWeight:   60000,
			LD50:              ptrFloat(0.002),
			RegulatoryLimit:   ptrFloat(0.0),
			MechanismOfAction: "ribosome inactivation",
		},
		"saxitoxin": {
			Name:              "saxitoxin",
			DisplayName:       "Saxitoxin",
			Type:              entities.ToxinTypeMarine,
			MolecularFormula:  "C10H17N7O4",
			MolecularWeight:   299.29,
			LD50:              ptrFloat(0.01),
			RegulatoryLimit:   ptrFloat(0.8),
			MechanismOfAction: "voltage-gated sodium channel blockade",
		},
	}
}

func defaultKnownInteractions() map[string][]repositories.KnownInteraction {
	return map[string][]repositories.KnownInteraction{
		"aflatoxin_b1": {
			{
				ToxinName:       "aflatoxin_b1",
				ProteinName:     "albumin",
				BindingAffinity: -7.2,
				InteractionType: "hydrophobic",
				BindingSiteNote: "Sudlow site I",
				References:      []string{"PMID:8448344", "PMID:15582589"},
			},
			{
				ToxinName:       "aflatoxin_b1",
				ProteinName:     "p53",
				BindingAffinity: -6.8,
				InteractionType: "intercalation",
				References:      []string{"PMID:8387750"},
			},
		},
		"ochratoxin_a": {
			{
				ToxinName:       "ochratoxin_a",
				ProteinName:     "albumin",
				BindingAffinity: -6.5,
				InteractionType: "hydrogen_bonding",
				References:      []string{"PMID:11876003"},
			},
		},
	}
}
