package entities

// ProteinType classifies food proteins by source
type ProteinType string

const (
	ProteinTypeDairy          ProteinType = "dairy"
	ProteinTypeMeat           ProteinType = "meat"
	ProteinTypeGrain          ProteinType = "grain"
	ProteinTypeLegume         ProteinType = "legume"
	ProteinTypeFruitVegetable ProteinType = "fruit_vegetable"
	ProteinTypeEnzyme         ProteinType = "enzyme"
)

// FunctionalImportance tiers how central a protein is to the food matrix
type FunctionalImportance string

const (
	ImportanceCritical FunctionalImportance = "critical"
	ImportanceHigh     FunctionalImportance = "high"
	ImportanceMedium   FunctionalImportance = "medium"
	ImportanceLow      FunctionalImportance = "low"
)

// StructureData carries structure information for a protein. It may be
// produced by an external structure-prediction service; when absent the
// analyzer fills it from the heuristic fallback estimator.
type StructureData struct {
	SecondaryStructure string                 `json:"secondary_structure,omitempty"`
	Confidence         float64                `json:"confidence_score"`
	BindingSites       []BindingSiteCandidate `json:"binding_sites,omitempty"`
	Source             string                 `json:"source,omitempty"` // "external" or "heuristic"
}

// BindingSiteCandidate is a per-residue binding site candidate derived
// from sequence motifs.
type BindingSiteCandidate struct {
	Position int     `json:"position"` // 1-based
	Residue  string  `json:"residue"`  // 3-letter code
	Type     string  `json:"type"`
	Score    float64 `json:"score"`
}

// FunctionalSite is a predicted active/binding/allosteric site.
type FunctionalSite struct {
	Type       string  `json:"type"`
	Position   int     `json:"position"` // 1-based
	Residues   string  `json:"residues"`
	Confidence float64 `json:"confidence"`
}

// ProteinProfile holds the derived molecular properties of a protein
// under given processing conditions.
type ProteinProfile struct {
	Name                  string               `json:"protein_name"`
	Type                  ProteinType          `json:"protein_type"`
	Sequence              string               `json:"sequence"`
	MolecularWeight       float64              `json:"molecular_weight"` // Da
	IsoelectricPoint      float64              `json:"isoelectric_point"`
	HydrophobicityIndex   float64              `json:"hydrophobicity_index"`
	StabilityScore        float64              `json:"stability_score"` // clamped to [0,10]
	ProcessingSensitivity map[string]float64   `json:"processing_sensitivity"`
	FunctionalSites       []FunctionalSite     `json:"functional_sites"`
	Structure             StructureData        `json:"structure"`
	FunctionalImportance  FunctionalImportance `json:"functional_importance"`
	AnalysisConfidence    float64              `json:"analysis_confidence"`
}
