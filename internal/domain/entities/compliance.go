package entities

import (
	"time"
)

// ComplianceStatus is the per-compound regulatory status.
type ComplianceStatus string

const (
	StatusCompliant ComplianceStatus = "compliant"
	StatusWarning   ComplianceStatus = "warning"
	StatusViolation ComplianceStatus = "violation"
	StatusNoLimit   ComplianceStatus = "no_limit_established"
)

// OverallComplianceStatus is the report-level verdict.
type OverallComplianceStatus string

const (
	OverallFullyCompliant    OverallComplianceStatus = "fully_compliant"
	OverallWithWarnings      OverallComplianceStatus = "compliant_with_warnings"
	OverallNonCompliant      OverallComplianceStatus = "non_compliant"
)

// RegulatoryLimit is one region-specific limit for a compound.
type RegulatoryLimit struct {
	Compound   string  `json:"compound"`
	Limit      float64 `json:"limit"`
	Unit       string  `json:"unit"`
	FoodType   string  `json:"food_type"` // "general" or a specific override
	Regulation string  `json:"regulation,omitempty"`
}

// CompoundAssessment is the compliance result for one detected compound.
type CompoundAssessment struct {
	Compound       string           `json:"compound"`
	Status         ComplianceStatus `json:"status"`
	DetectedLevel  float64          `json:"detected_level"`
	Limit          float64          `json:"regulatory_limit"`
	Unit           string           `json:"unit"`
	Regulation     string           `json:"regulation,omitempty"`
	MarginOfSafety float64          `json:"margin_of_safety"` // %, 0 when violating
	Severity       string           `json:"severity,omitempty"`
	ExcessFactor   float64          `json:"excess_factor,omitempty"`
	PercentOfLimit float64          `json:"percentage_of_limit,omitempty"`
}

// ComplianceReport compares detected compound levels against one
// region's regulatory limits. Derived purely from its inputs; never
// mutates upstream records.
type ComplianceReport struct {
	Region        string                        `json:"region"`
	FoodType      string                        `json:"food_type"`
	OverallStatus OverallComplianceStatus       `json:"overall_status"`
	Results       map[string]CompoundAssessment `json:"compliance_results"`
	Violations    []CompoundAssessment          `json:"violations"`
	Warnings      []CompoundAssessment          `json:"warnings"`
	TotalAssessed int                           `json:"total_compounds_assessed"`
	AssessedAt    time.Time                     `json:"assessment_date"`
}

// CompliantCount returns the number of compliant compounds.
func (r *ComplianceReport) CompliantCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Status == StatusCompliant {
			n++
		}
	}
	return n
}

// CriticalControlPoint is a HACCP process step requiring monitoring.
type CriticalControlPoint struct {
	ID               string `json:"ccp_id"`
	ControlPoint     string `json:"control_point"`
	HazardAddressed  string `json:"hazard_addressed"`
	CriticalLimit    string `json:"critical_limit"`
	CurrentValue     string `json:"current_value"`
	MonitoringMethod string `json:"monitoring_method"`
	CorrectiveAction string `json:"corrective_action"`
	Verification     string `json:"verification"`
	ComplianceStatus string `json:"compliance_status"`
}
