package entities

// InteractionType classifies a toxin-protein interaction by binding
// strength and the matched site's chemistry.
type InteractionType string

const (
	InteractionCompetitiveInhibition InteractionType = "competitive_inhibition"
	InteractionAllostericBinding     InteractionType = "allosteric_binding"
	InteractionStrongHydrophobic     InteractionType = "strong_hydrophobic_binding"
	InteractionModerateBinding       InteractionType = "moderate_binding"
	InteractionWeakBinding           InteractionType = "weak_binding"
)

// Binding site chemistry tags used by the catalog and the docking scorer.
const (
	SiteTypeHydrophobic   = "hydrophobic"
	SiteTypeElectrostatic = "electrostatic"
	SiteTypeHydrogenBond  = "hydrogen_bond"
)

// BindingSite is a catalog-listed candidate binding site on a protein.
type BindingSite struct {
	Residues []int   `json:"residues"`
	Type     string  `json:"type"`
	Volume   float64 `json:"volume"` // Å³
}

// BindingPose is one scored placement of a toxin in a binding site.
type BindingPose struct {
	PoseID            int     `json:"pose_id"`
	Site              []int   `json:"binding_site"`
	SiteType          string  `json:"interaction_type"`
	BindingAffinity   float64 `json:"binding_affinity"` // kcal/mol, more negative = stronger
	Confidence        float64 `json:"confidence_score"`
	ContactResidues   []string `json:"contact_residues"`
	InteractionEnergy float64 `json:"interaction_energy"`
}

// InteractionRecord is the full prediction for one toxin-protein pair.
type InteractionRecord struct {
	ToxinName            string             `json:"toxin_name"`
	ProteinName          string             `json:"protein_name"`
	BindingAffinity      float64            `json:"binding_affinity"` // best-pose affinity, kcal/mol
	ModelAffinity        float64            `json:"model_affinity"`   // independent linear-model estimate
	Poses                []BindingPose      `json:"docking_poses,omitempty"`
	InteractionType      InteractionType    `json:"interaction_type"`
	StructuralChanges    map[string]float64 `json:"structural_changes"` // named % changes
	ToxicityEnhancement  float64            `json:"toxicity_enhancement"` // [1,10]
	Confidence           float64            `json:"confidence_score"`     // [0,1]
	EnvironmentalEffects map[string]string  `json:"environmental_effects,omitempty"`
	LiteratureSupport    []string           `json:"literature_support,omitempty"`
}

// InteractionScreen is a fast pre-docking triage result for one
// toxin-protein pair.
type InteractionScreen struct {
	ToxinName        string  `json:"toxin_name"`
	ProteinName      string  `json:"protein_name"`
	PotencyScore     float64 `json:"potency_score"`       // [0,1]
	Vulnerability    float64 `json:"vulnerability_score"` // [0,1]
	PriorityScore    float64 `json:"priority_score"`      // potency x vulnerability
	RiskTier         string  `json:"risk_tier"`           // "high", "medium", "low"
	Confidence       float64 `json:"confidence"`
	KnownInteraction bool    `json:"known_interaction"`
}

// RiskScore derives the 0-10 risk contribution of this interaction:
// affinity up to 5 points, toxicity enhancement up to 2, mean
// structural change up to 3.
func (r *InteractionRecord) RiskScore() float64 {
	affinity := r.BindingAffinity
	if affinity < 0 {
		affinity = -affinity
	}
	affinityRisk := affinity / 2.0
	if affinityRisk > 5.0 {
		affinityRisk = 5.0
	}

	enhancementRisk := r.ToxicityEnhancement - 1.0
	if enhancementRisk < 0 {
		enhancementRisk = 0
	}
	if enhancementRisk > 2.0 {
		enhancementRisk = 2.0
	}

	structureRisk := 0.0
	if len(r.StructuralChanges) > 0 {
		sum := 0.0
		for _, v := range r.StructuralChanges {
			sum += v
		}
		structureRisk = sum / float64(len(r.StructuralChanges)) / 10.0
		if structureRisk > 3.0 {
			structureRisk = 3.0
		}
	}

	total := affinityRisk + enhancementRisk + structureRisk
	if total > 10.0 {
		total = 10.0
	}
	return total
}
