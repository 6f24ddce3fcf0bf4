package services

import (
	"fmt"
	"strings"

	"github.com/foodsentry/backend/internal/domain/entities"
)

// AdvisoryService derives HACCP critical control points and actionable
// recommendations from a completed assessment.
type AdvisoryService struct{}

// NewAdvisoryService creates a new advisory service.
func NewAdvisoryService() *AdvisoryService {
	return &AdvisoryService{}
}

// IdentifyControlPoints maps the sample's processing profile and hazard
// list onto the standard HACCP control point set.
func (s *AdvisoryService) IdentifyControlPoints(sample entities.FoodSample) []entities.CriticalControlPoint {
	var ccps []entities.CriticalControlPoint
	conditions := sample.Conditions.Normalized()

	if conditions.Temperature > 60 {
		status := "non_compliant"
		if conditions.Temperature >= 70 {
			status = "compliant"
		}
		ccps = append(ccps, entities.CriticalControlPoint{
			ID:               "CCP-1",
			ControlPoint:     "heat treatment",
			HazardAddressed:  "vegetative pathogen survival",
			CriticalLimit:    ">= 70C core temperature",
			CurrentValue:     fmt.Sprintf("%.1fC", conditions.Temperature),
			MonitoringMethod: "continuous core temperature logging",
			CorrectiveAction: "extend heating until core temperature reaches 70C",
			Verification:     "calibrated probe check per batch",
			ComplianceStatus: status,
		})
	}

	if conditions.PH < 4.6 {
		ccps = append(ccps, entities.CriticalControlPoint{
			ID:               "CCP-2",
			ControlPoint:     "acidification",
			HazardAddressed:  "Clostridium botulinum outgrowth",
			CriticalLimit:    "pH < 4.6",
			CurrentValue:     fmt.Sprintf("pH %.2f", conditions.PH),
			MonitoringMethod: "inline pH measurement",
			CorrectiveAction: "adjust acidulant dosing and re-test",
			Verification:     "bench pH meter verification per lot",
			ComplianceStatus: "compliant",
		})
	}

	foodType := strings.ToLower(sample.FoodType)
	if strings.Contains(foodType, "dried") || strings.Contains(foodType, "dehydrated") || strings.Contains(foodType, "powder") {
		ccps = append(ccps, entities.CriticalControlPoint{
			ID:               "CCP-3",
			ControlPoint:     "water activity control",
			HazardAddressed:  "mold growth and mycotoxin formation",
			CriticalLimit:    "aw <= 0.85",
			CurrentValue:     "not measured",
			MonitoringMethod: "water activity meter per batch",
			CorrectiveAction: "extend drying cycle",
			Verification:     "weekly meter calibration",
			ComplianceStatus: "pending",
		})
	}

	for i, toxin := range sample.SuspectedToxins {
		ccps = append(ccps, entities.CriticalControlPoint{
			ID:               fmt.Sprintf("CCP-CHEM-%d", i+1),
			ControlPoint:     "incoming material screening",
			HazardAddressed:  fmt.Sprintf("chemical hazard: %s", toxin),
			CriticalLimit:    "below applicable regulatory limit",
			CurrentValue:     "per lab analysis",
			MonitoringMethod: "certificate of analysis plus periodic lab verification",
			CorrectiveAction: "reject or divert contaminated lots",
			Verification:     "supplier audit program",
			ComplianceStatus: "pending",
		})
	}

	if strings.Contains(foodType, "processed") || strings.Contains(foodType, "packaged") {
		ccps = append(ccps, entities.CriticalControlPoint{
			ID:               "CCP-METAL",
			ControlPoint:     "metal detection",
			HazardAddressed:  "physical hazard: metal fragments",
			CriticalLimit:    "no detectable ferrous > 1.5mm",
			CurrentValue:     "inline detector active",
			MonitoringMethod: "inline metal detector with reject gate",
			CorrectiveAction: "isolate lot and inspect upstream equipment",
			Verification:     "hourly test piece challenge",
			ComplianceStatus: "compliant",
		})
	}

	return ccps
}

// GenerateRecommendations turns assessment findings into prioritized
// mitigation actions.
func (s *AdvisoryService) GenerateRecommendations(assessment *entities.SafetyAssessment) []entities.Recommendation {
	var recs []entities.Recommendation

	switch assessment.RiskLevel {
	case entities.RiskCritical:
		recs = append(recs, entities.Recommendation{
			Priority:  "immediate",
			Category:  "disposition",
			Action:    "quarantine the batch and block release",
			Rationale: fmt.Sprintf("overall safety score %.1f is in the critical band", assessment.OverallSafetyScore),
		})
	case entities.RiskHigh:
		recs = append(recs, entities.Recommendation{
			Priority:  "immediate",
			Category:  "disposition",
			Action:    "hold the batch pending confirmatory lab analysis",
			Rationale: fmt.Sprintf("overall safety score %.1f is in the high risk band", assessment.OverallSafetyScore),
		})
	}

	if assessment.Compliance != nil {
		for _, v := range assessment.Compliance.Violations {
			recs = append(recs, entities.Recommendation{
				Priority:  "high",
				Category:  "regulatory",
				Action:    fmt.Sprintf("reduce %s below %.4g %s before release", v.Compound, v.Limit, v.Unit),
				Rationale: fmt.Sprintf("detected %.4g %s exceeds the limit %.1fx", v.DetectedLevel, v.Unit, v.ExcessFactor),
			})
		}
		for _, w := range assessment.Compliance.Warnings {
			recs = append(recs, entities.Recommendation{
				Priority:  "medium",
				Category:  "regulatory",
				Action:    fmt.Sprintf("increase sampling frequency for %s", w.Compound),
				Rationale: fmt.Sprintf("detected level is at %.0f%% of the regulatory limit", w.PercentOfLimit),
			})
		}
	}

	for _, ix := range assessment.CriticalInteractions() {
		recs = append(recs, entities.Recommendation{
			Priority:  "high",
			Category:  "molecular",
			Action:    fmt.Sprintf("investigate %s binding to %s with confirmatory assays", ix.ToxinName, ix.ProteinName),
			Rationale: fmt.Sprintf("predicted binding affinity %.1f kcal/mol with %.1fx toxicity enhancement", ix.BindingAffinity, ix.ToxicityEnhancement),
		})
	}

	for _, p := range assessment.ProteinProfiles {
		if p.StabilityScore < 4.0 {
			recs = append(recs, entities.Recommendation{
				Priority:  "medium",
				Category:  "processing",
				Action:    fmt.Sprintf("moderate processing temperature or pH to protect %s", p.Name),
				Rationale: fmt.Sprintf("stability score %.1f indicates denaturation under current conditions", p.StabilityScore),
			})
		}
	}

	if len(recs) == 0 {
		recs = append(recs, entities.Recommendation{
			Priority: "low",
			Category: "monitoring",
			Action:   "continue routine monitoring at the current sampling plan",
		})
	}
	return recs
}
