package entities

import (
	"time"
)

// ProcessingConditions describes the environment a food sample is
// processed or stored under.
type ProcessingConditions struct {
	Temperature   float64  `json:"temperature" db:"temperature"` // °C
	PH            float64  `json:"ph" db:"ph"`
	Duration      float64  `json:"duration_minutes" db:"duration_minutes"`
	IonicStrength float64  `json:"ionic_strength" db:"ionic_strength"` // M
	Pressure      *float64 `json:"pressure,omitempty" db:"pressure"`   // bar
	Humidity      *float64 `json:"humidity,omitempty" db:"humidity"`   // %
}

// Normalized returns a copy with out-of-range values clamped or
// defaulted: pH to [0,14], negative duration to 0, missing ionic
// strength to 0.15 M. Boundary inputs are repaired here so formula
// code never has to guard them.
func (c ProcessingConditions) Normalized() ProcessingConditions {
	out := c
	if out.PH < 0 {
		out.PH = 0
	}
	if out.PH > 14 {
		out.PH = 14
	}
	if out.Duration < 0 {
		out.Duration = 0
	}
	if out.IonicStrength <= 0 {
		out.IonicStrength = 0.15
	}
	return out
}

// FoodSample represents a food sample submitted for analysis.
// Constructed once per analysis request and immutable thereafter.
type FoodSample struct {
	ID              string               `json:"sample_id" db:"id"`
	Name            string               `json:"name" db:"name"`
	FoodType        string               `json:"food_type" db:"food_type"`
	Proteins        []string             `json:"proteins" db:"-"`
	SuspectedToxins []string             `json:"suspected_toxins" db:"-"`
	Conditions      ProcessingConditions `json:"processing_conditions" db:"-"`
	Composition     map[string]float64   `json:"composition,omitempty" db:"-"` // detected compound levels, ppb
	Origin          string               `json:"origin,omitempty" db:"origin"`
	SampleDate      time.Time            `json:"sample_date" db:"sample_date"`
}
