package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodsentry/backend/internal/adapters/catalog"
	"github.com/foodsentry/backend/internal/domain/entities"
)

func newComplianceService() *ComplianceService {
	return NewComplianceService(catalog.NewMemoryRegulatoryCatalog())
}

func TestAssessCompliance_CompliantUnderUSLimit(t *testing.T) {
	svc := newComplianceService()

	report, err := svc.AssessCompliance(context.Background(), "us_fda", "general",
		map[string]float64{"aflatoxin_b1": 1.5})
	require.NoError(t, err)

	assert.Equal(t, entities.OverallFullyCompliant, report.OverallStatus)
	result := report.Results["aflatoxin_b1"]
	assert.Equal(t, entities.StatusCompliant, result.Status)
	assert.InDelta(t, 92.5, result.MarginOfSafety, 1e-9)
}

func TestAssessCompliance_SameLevelDiffersByRegion(t *testing.T) {
	svc := newComplianceService()
	levels := map[string]float64{"aflatoxin_b1": 1.5}

	us, err := svc.AssessCompliance(context.Background(), "us_fda", "general", levels)
	require.NoError(t, err)
	eu, err := svc.AssessCompliance(context.Background(), "eu_efsa", "general", levels)
	require.NoError(t, err)

	assert.Equal(t, entities.StatusCompliant, us.Results["aflatoxin_b1"].Status)
	// 1.5 ppb sits just under the 80% warning threshold of the 2.0 ppb EU limit
	assert.Equal(t, entities.StatusCompliant, eu.Results["aflatoxin_b1"].Status)
	assert.InDelta(t, 25.0, eu.Results["aflatoxin_b1"].MarginOfSafety, 1e-9)
}

func TestAssessCompliance_Violation(t *testing.T) {
	svc := newComplianceService()

	report, err := svc.AssessCompliance(context.Background(), "eu_efsa", "general",
		map[string]float64{"aflatoxin_b1": 5.0})
	require.NoError(t, err)

	assert.Equal(t, entities.OverallNonCompliant, report.OverallStatus)
	require.Len(t, report.Violations, 1)
	v := report.Violations[0]
	assert.Equal(t, entities.StatusViolation, v.Status)
	assert.Equal(t, "high", v.Severity) // more than twice the limit
	assert.InDelta(t, 2.5, v.ExcessFactor, 1e-9)
	assert.Equal(t, 0.0, v.MarginOfSafety)
}

func TestAssessCompliance_Warning(t *testing.T) {
	svc := newComplianceService()

	report, err := svc.AssessCompliance(context.Background(), "eu_efsa", "general",
		map[string]float64{"aflatoxin_b1": 1.8})
	require.NoError(t, err)

	assert.Equal(t, entities.OverallWithWarnings, report.OverallStatus)
	require.Len(t, report.Warnings, 1)
	assert.InDelta(t, 90.0, report.Warnings[0].PercentOfLimit, 1e-9)
}

func TestAssessCompliance_ModerateViolationSeverity(t *testing.T) {
	svc := newComplianceService()

	report, err := svc.AssessCompliance(context.Background(), "eu_efsa", "general",
		map[string]float64{"aflatoxin_b1": 3.0})
	require.NoError(t, err)
	require.Len(t, report.Violations, 1)
	assert.Equal(t, "medium", report.Violations[0].Severity)
}

func TestAssessCompliance_InfantFoodOverride(t *testing.T) {
	svc := newComplianceService()

	report, err := svc.AssessCompliance(context.Background(), "eu_efsa", "infant_food",
		map[string]float64{"aflatoxin_b1": 1.5})
	require.NoError(t, err)

	// the infant food limit of 0.1 ppb turns the same level into a violation
	assert.Equal(t, entities.OverallNonCompliant, report.OverallStatus)
	require.Len(t, report.Violations, 1)
	assert.InDelta(t, 15.0, report.Violations[0].ExcessFactor, 1e-9)
}

func TestAssessCompliance_UnknownCompound(t *testing.T) {
	svc := newComplianceService()

	report, err := svc.AssessCompliance(context.Background(), "us_fda", "general",
		map[string]float64{"novel_compound": 10})
	require.NoError(t, err)

	assert.Equal(t, entities.OverallFullyCompliant, report.OverallStatus)
	assert.Equal(t, entities.StatusNoLimit, report.Results["novel_compound"].Status)
	assert.Empty(t, report.Violations)
}

func TestAssessCompliance_NormalizesCompoundNames(t *testing.T) {
	svc := newComplianceService()

	report, err := svc.AssessCompliance(context.Background(), "us_fda", "general",
		map[string]float64{"Aflatoxin B1": 25})
	require.NoError(t, err)
	require.Len(t, report.Violations, 1)
	assert.Equal(t, "aflatoxin_b1", report.Violations[0].Compound)
}
