package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/foodsentry/backend/internal/domain/entities"
	"github.com/foodsentry/backend/internal/domain/repositories"
)

// ComplianceService checks detected compound levels against regional
// regulatory limits.
type ComplianceService struct {
	catalog repositories.RegulatoryCatalog
}

// NewComplianceService creates a new compliance service.
func NewComplianceService(catalog repositories.RegulatoryCatalog) *ComplianceService {
	return &ComplianceService{catalog: catalog}
}

// AssessCompliance evaluates every detected compound against the
// region's limit table, honoring food-type overrides. Levels are in
// ppb. Compounds without an established limit are reported but never
// counted as violations.
func (s *ComplianceService) AssessCompliance(ctx context.Context, region, foodType string, detectedLevels map[string]float64) (*entities.ComplianceReport, error) {
	report := &entities.ComplianceReport{
		Region:        region,
		FoodType:      foodType,
		Results:       make(map[string]entities.CompoundAssessment, len(detectedLevels)),
		TotalAssessed: len(detectedLevels),
		AssessedAt:    time.Now().UTC(),
	}

	for compound, level := range detectedLevels {
		key := normalizeKey(compound)
		limit, ok := s.catalog.GetLimit(ctx, region, foodType, compound)
		if !ok {
			log.Ctx(ctx).Warn().
				Str("compound", compound).
				Str("region", region).
				Msg("no regulatory limit established for compound")
			report.Results[key] = entities.CompoundAssessment{
				Compound:      key,
				Status:        entities.StatusNoLimit,
				DetectedLevel: level,
				Unit:          "ppb",
			}
			continue
		}

		assessment := entities.CompoundAssessment{
			Compound:      key,
			DetectedLevel: level,
			Limit:         limit.Limit,
			Unit:          limit.Unit,
			Regulation:    limit.Regulation,
		}

		switch {
		case level > limit.Limit:
			assessment.Status = entities.StatusViolation
			assessment.Severity = "medium"
			if level > 2*limit.Limit {
				assessment.Severity = "high"
			}
			if limit.Limit > 0 {
				assessment.ExcessFactor = level / limit.Limit
			}
			report.Violations = append(report.Violations, assessment)
		case limit.Limit > 0 && level > 0.8*limit.Limit:
			assessment.Status = entities.StatusWarning
			assessment.PercentOfLimit = level / limit.Limit * 100
			assessment.MarginOfSafety = (limit.Limit - level) / limit.Limit * 100
			report.Warnings = append(report.Warnings, assessment)
		default:
			assessment.Status = entities.StatusCompliant
			if limit.Limit > 0 {
				assessment.MarginOfSafety = (limit.Limit - level) / limit.Limit * 100
			}
		}
		report.Results[key] = assessment
	}

	switch {
	case len(report.Violations) > 0:
		report.OverallStatus = entities.OverallNonCompliant
	case len(report.Warnings) > 0:
		report.OverallStatus = entities.OverallWithWarnings
	default:
		report.OverallStatus = entities.OverallFullyCompliant
	}
	return report, nil
}
