package entities

// InhibitionParams describes one inhibitor acting on an enzyme.
type InhibitionParams struct {
	Ki       float64 `json:"ki"` // mM, lower = stronger inhibitor
	Type     string  `json:"type"`
	Severity string  `json:"severity"`
}

// EnzymeKinetics holds environment-corrected Michaelis-Menten
// parameters for an enzyme-substrate pair. All kinetic constants > 0.
type EnzymeKinetics struct {
	EnzymeName        string                      `json:"enzyme_name"`
	Substrate         string                      `json:"substrate"`
	Km                float64                     `json:"km"`   // mM
	Vmax              float64                     `json:"vmax"` // μmol/min/mg
	Kcat              float64                     `json:"kcat"` // s⁻¹
	Inhibition        map[string]InhibitionParams `json:"inhibition_data"`
	OptimalConditions ProcessingConditions        `json:"optimal_conditions"`
	ActivityFactors   map[string]float64          `json:"activity_factors"`
	MolecularWeight   float64                     `json:"molecular_weight,omitempty"`
	Cofactors         []string                    `json:"cofactors,omitempty"`
}

// InhibitionResult is the predicted effect of a single inhibitor at a
// given concentration.
type InhibitionResult struct {
	EnzymeName         string  `json:"enzyme_name"`
	InhibitorName      string  `json:"inhibitor_name"`
	Concentration      float64 `json:"inhibitor_concentration"` // mM
	BaselineActivity   float64 `json:"baseline_activity"`       // Vmax without inhibitor
	InhibitedActivity  float64 `json:"inhibited_activity"`
	PercentInhibition  float64 `json:"percent_inhibition"`
	InhibitionType     string  `json:"inhibition_type"`
	Severity           string  `json:"severity"`
	Ki                 float64 `json:"ki_value"`
	FractionalActivity float64 `json:"fractional_activity"`
}

// StabilityClass is the ordered stability tier implied by the
// degradation half-life.
type StabilityClass string

const (
	StabilityVeryStable       StabilityClass = "very_stable"       // half-life > 1 week
	StabilityStable           StabilityClass = "stable"            // > 3 days
	StabilityModeratelyStable StabilityClass = "moderately_stable" // > 1 day
	StabilityUnstable         StabilityClass = "unstable"          // > 6 hours
	StabilityVeryUnstable     StabilityClass = "very_unstable"
)

// StabilityPoint is remaining activity at one time point.
type StabilityPoint struct {
	TimeHours         float64 `json:"time_hours"`
	RemainingActivity float64 `json:"remaining_activity"` // %
	HalfLifeReached   bool    `json:"half_life_reached"`
}

// StabilityTimeline is the predicted activity decay of an enzyme under
// storage conditions.
type StabilityTimeline struct {
	EnzymeName        string               `json:"enzyme_name"`
	StorageConditions ProcessingConditions `json:"storage_conditions"`
	DegradationRate   float64              `json:"degradation_rate_constant"` // h⁻¹, > 0
	PredictedHalfLife float64              `json:"predicted_half_life"`       // hours
	Points            []StabilityPoint     `json:"stability_timeline"`
	Classification    StabilityClass       `json:"stability_classification"`
}
