package entities

// ToxinType classifies food toxins by origin
type ToxinType string

const (
	ToxinTypeMycotoxin  ToxinType = "mycotoxin"
	ToxinTypeBacterial  ToxinType = "bacterial"
	ToxinTypePlant      ToxinType = "plant"
	ToxinTypeChemical   ToxinType = "chemical"
	ToxinTypeMarine     ToxinType = "marine"
	ToxinTypeHeavyMetal ToxinType = "heavy_metal"
)

// ToxinProfile is the catalog record for a toxin.
type ToxinProfile struct {
	Name              string    `json:"toxin_name"`
	DisplayName       string    `json:"display_name"`
	Type              ToxinType `json:"toxin_type"`
	MolecularFormula  string    `json:"molecular_formula"`
	MolecularWeight   float64   `json:"molecular_weight"` // Da
	SMILES            string    `json:"structure_smiles,omitempty"`
	LD50              *float64  `json:"ld50,omitempty"`             // mg/kg
	RegulatoryLimit   *float64  `json:"regulatory_limit,omitempty"` // ppb unless noted
	MechanismOfAction string    `json:"mechanism_of_action,omitempty"`
}

// ToxinDescriptors is the flat molecular-descriptor set consumed by the
// interaction predictor. Normally produced by an external
// cheminformatics library; absent descriptors are filled by the seeded
// fallback generator.
type ToxinDescriptors struct {
	MolecularWeight    float64 `json:"molecular_weight"`
	LogP               float64 `json:"logp"`
	HBondDonors        int     `json:"hbd"`
	HBondAcceptors     int     `json:"hba"`
	RotatableBonds     int     `json:"rotatable_bonds"`
	AromaticRings      int     `json:"aromatic_rings"`
	TPSA               float64 `json:"tpsa,omitempty"`
	HeavyAtoms         int     `json:"heavy_atoms,omitempty"`
	FormalCharge       int     `json:"formal_charge"`
	LipinskiViolations int     `json:"lipinski_violations"`
}
