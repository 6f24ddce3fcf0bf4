package services

import (
	"context"
	"hash/fnv"
	"math"
	"math/rand"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/foodsentry/backend/internal/domain/entities"
	"github.com/foodsentry/backend/internal/domain/providers"
	"github.com/foodsentry/backend/internal/domain/repositories"
)

// Per-residue monoisotopic-adjacent average masses in Da.
var residueWeights = map[byte]float64{
	'A': 89.09, 'R': 174.20, 'N': 132.12, 'D': 133.10, 'C': 121.15,
	'E': 147.13, 'Q': 146.15, 'G': 75.07, 'H': 155.16, 'I': 131.17,
	'L': 131.17, 'K': 146.19, 'M': 149.21, 'F': 165.19, 'P': 115.13,
	'S': 105.09, 'T': 119.12, 'W': 204.23, 'Y': 181.19, 'V': 117.15,
}

// Kyte-Doolittle hydropathy scale.
var hydropathyIndex = map[byte]float64{
	'A': 1.8, 'R': -4.5, 'N': -3.5, 'D': -3.5, 'C': 2.5,
	'E': -3.5, 'Q': -3.5, 'G': -0.4, 'H': -3.2, 'I': 4.5,
	'L': 3.8, 'K': -3.9, 'M': 1.9, 'F': 2.8, 'P': -1.6,
	'S': -0.8, 'T': -0.7, 'W': -0.9, 'Y': -1.3, 'V': 4.2,
}

const (
	unknownResidueWeight = 110.0
	waterMass            = 18.015

	maxFunctionalSites = 15

	// Sequence used when a protein is not in the catalog. Keeps the
	// pipeline running with lowered confidence instead of failing.
	genericSequence = "MKVLILACLVALALARELEELNVPGEIVESLSSSEESITRINKKIEKFQSEEQQQTEDELQDKIHPF"

	knownProteinConfidence   = 0.8
	unknownProteinConfidence = 0.5
)

// ProteinAnalysisService derives molecular property profiles for food
// proteins under given processing conditions.
type ProteinAnalysisService struct {
	catalog   repositories.ProteinCatalog
	structure providers.StructureProvider
	seed      int64
}

// NewProteinAnalysisService creates a new protein analysis service.
func NewProteinAnalysisService(catalog repositories.ProteinCatalog, structure providers.StructureProvider, seed int64) *ProteinAnalysisService {
	return &ProteinAnalysisService{catalog: catalog, structure: structure, seed: seed}
}

// AnalyzeProtein computes the full property profile for one protein.
// Unknown proteins fall back to a generic sequence with lowered
// confidence rather than failing.
func (s *ProteinAnalysisService) AnalyzeProtein(ctx context.Context, name string, conditions entities.ProcessingConditions) (entities.ProteinProfile, error) {
	conditions = conditions.Normalized()

	entry, known := s.catalog.GetProtein(ctx, name)
	if !known {
		log.Ctx(ctx).Warn().
			Str("protein", name).
			Msg("protein not in catalog, using generic defaults")
		entry = repositories.ProteinCatalogEntry{
			Name:                 name,
			Type:                 entities.ProteinTypeFruitVegetable,
			Sequence:             genericSequence,
			FunctionalImportance: entities.ImportanceMedium,
		}
	}
	sequence := strings.ToUpper(entry.Sequence)

	structure, err := s.structure.PredictStructure(ctx, name, sequence)
	if err != nil {
		return entities.ProteinProfile{}, err
	}

	rng := s.rngFor(name)

	confidence := knownProteinConfidence
	if !known {
		confidence = unknownProteinConfidence
	}

	return entities.ProteinProfile{
		Name:                  name,
		Type:                  entry.Type,
		Sequence:              sequence,
		MolecularWeight:       MolecularWeight(sequence),
		IsoelectricPoint:      IsoelectricPoint(sequence),
		HydrophobicityIndex:   HydrophobicityIndex(sequence),
		StabilityScore:        StabilityScore(sequence, conditions),
		ProcessingSensitivity: ProcessingSensitivity(sequence, conditions),
		FunctionalSites:       PredictFunctionalSites(sequence, rng),
		Structure:             structure,
		FunctionalImportance:  entry.FunctionalImportance,
		AnalysisConfidence:    confidence,
	}, nil
}

// MolecularWeight estimates mass from residue composition less the
// water lost per peptide bond.
func MolecularWeight(sequence string) float64 {
	if sequence == "" {
		return 0
	}
	total := 0.0
	for i := 0; i < len(sequence); i++ {
		w, ok := residueWeights[sequence[i]]
		if !ok {
			w = unknownResidueWeight
		}
		total += w
	}
	return total - float64(len(sequence)-1)*waterMass
}

// IsoelectricPoint estimates pI from the charged residue imbalance.
// The shift is signed: acid-dominant sequences fall below 7, basic ones
// rise above it.
func IsoelectricPoint(sequence string) float64 {
	if sequence == "" {
		return 7.0
	}
	basic, acidic := 0, 0
	for i := 0; i < len(sequence); i++ {
		switch sequence[i] {
		case 'R', 'H', 'K':
			basic++
		case 'D', 'E':
			acidic++
		}
	}
	return 7.0 + float64(basic-acidic)/float64(len(sequence))*4.0
}

// HydrophobicityIndex is the mean Kyte-Doolittle hydropathy.
func HydrophobicityIndex(sequence string) float64 {
	if sequence == "" {
		return 0
	}
	total := 0.0
	for i := 0; i < len(sequence); i++ {
		total += hydropathyIndex[sequence[i]]
	}
	return total / float64(len(sequence))
}

// StabilityScore scores conformational stability on [0,10] from a
// neutral baseline of 7, penalized by pH and temperature extremes and
// credited for disulfide potential and proline content.
func StabilityScore(sequence string, conditions entities.ProcessingConditions) float64 {
	score := 7.0

	switch {
	case conditions.PH < 4 || conditions.PH > 10:
		score -= 2.0
	case conditions.PH < 5 || conditions.PH > 9:
		score -= 1.0
	}

	switch {
	case conditions.Temperature > 80:
		score -= 3.0
	case conditions.Temperature > 60:
		score -= 1.5
	}

	cysteines, prolines := 0, 0
	for i := 0; i < len(sequence); i++ {
		switch sequence[i] {
		case 'C':
			cysteines++
		case 'P':
			prolines++
		}
	}
	if cysteines >= 2 {
		score += 0.5
	}
	if len(sequence) > 0 {
		score += float64(prolines) / float64(len(sequence)) * 2.0
	}

	return math.Max(0, math.Min(10, score))
}

// ProcessingSensitivity rates how strongly each processing factor is
// expected to affect the protein, on [0,1] per factor.
func ProcessingSensitivity(sequence string, conditions entities.ProcessingConditions) map[string]float64 {
	sensitivity := map[string]float64{
		"temperature":           0.3,
		"ph":                    0.2,
		"ionic_strength":        0.1,
		"oxidation":             0.15,
		"enzymatic_degradation": 0.25,
	}

	basic := 0
	hasCys, hasMet := false, false
	for i := 0; i < len(sequence); i++ {
		switch sequence[i] {
		case 'C':
			hasCys = true
		case 'M':
			hasMet = true
		case 'R', 'K':
			basic++
		}
	}

	if hasCys {
		sensitivity["oxidation"] += 0.2
	}
	if float64(basic) > 0.1*float64(len(sequence)) {
		sensitivity["ph"] += 0.1
	}
	if hasMet {
		sensitivity["oxidation"] += 0.1
	}
	if math.Abs(conditions.PH-7.0) > 2.0 {
		sensitivity["ph"] += 0.2
	}
	if conditions.Temperature > 60 {
		sensitivity["temperature"] += 0.3
	}
	return sensitivity
}

// PredictFunctionalSites scans the sequence for catalytic, binding and
// allosteric motifs, capped to the most N-terminal hits.
func PredictFunctionalSites(sequence string, rng *rand.Rand) []entities.FunctionalSite {
	var sites []entities.FunctionalSite
	add := func(siteType string, pos int, residues string) bool {
		if len(sites) >= maxFunctionalSites {
			return false
		}
		sites = append(sites, entities.FunctionalSite{
			Type:       siteType,
			Position:   pos + 1,
			Residues:   residues,
			Confidence: 0.6 + rng.Float64()*0.3,
		})
		return true
	}

	for i := 0; i < len(sequence); i++ {
		switch sequence[i] {
		case 'H':
			if !add("active_site", i, "HIS") {
				return sites
			}
		case 'C':
			if !add("active_site", i, "CYS") {
				return sites
			}
		case 'S':
			if !add("active_site", i, "SER") {
				return sites
			}
		case 'W':
			if !add("binding_site", i, "TRP") {
				return sites
			}
		case 'F':
			if !add("binding_site", i, "PHE") {
				return sites
			}
		}
		if i+1 < len(sequence) {
			pair := sequence[i : i+2]
			switch pair {
			case "LI":
				if !add("binding_site", i, "LEU-ILE") {
					return sites
				}
			case "GP":
				if !add("allosteric_site", i, "GLY-PRO") {
					return sites
				}
			case "PG":
				if !add("allosteric_site", i, "PRO-GLY") {
					return sites
				}
			}
		}
	}
	return sites
}

func (s *ProteinAnalysisService) rngFor(name string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(name)))
	return rand.New(rand.NewSource(s.seed ^ int64(h.Sum64())))
}
