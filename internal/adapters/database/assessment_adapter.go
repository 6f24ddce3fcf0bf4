package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/foodsentry/backend/internal/domain/entities"
	"github.com/foodsentry/backend/internal/domain/repositories"
	"github.com/foodsentry/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/foodsentry/backend/pkg/errors"
)

// AssessmentAdapter implements assessment persistence in Postgres.
// Stage outputs are stored as JSONB documents; scalar scores are kept
// as columns so listings can filter without deserializing.
type AssessmentAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewAssessmentAdapter creates a new assessment adapter.
func NewAssessmentAdapter(client *postgres.Client) repositories.AssessmentRepository {
	return &AssessmentAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

type assessmentRow struct {
	ID                 string
	SampleID           string
	SampleName         sql.NullString
	FoodType           sql.NullString
	OverallSafetyScore float64
	RiskLevel          string
	ConfidenceScore    float64
	InteractionRisk    float64
	StabilityRisk      float64
	ComplianceRisk     float64
	Details            []byte
	RandomSeed         int64
	CreatedAt          sql.NullTime
}

// assessmentDetails is the JSONB payload holding the full stage
// outputs.
type assessmentDetails struct {
	ProteinProfiles    []entities.ProteinProfile      `json:"protein_profiles,omitempty"`
	Interactions       []entities.InteractionRecord   `json:"interactions,omitempty"`
	EnzymeKinetics     []entities.EnzymeKinetics      `json:"enzyme_kinetics,omitempty"`
	StabilityTimelines []entities.StabilityTimeline   `json:"stability_timelines,omitempty"`
	Compliance         *entities.ComplianceReport     `json:"compliance,omitempty"`
	ControlPoints      []entities.CriticalControlPoint `json:"critical_control_points,omitempty"`
	Recommendations    []entities.Recommendation      `json:"recommendations,omitempty"`
}

// Create inserts an assessment record.
func (a *AssessmentAdapter) Create(ctx context.Context, assessment *entities.SafetyAssessment) error {
	if assessment == nil {
		return apperrors.NewInternalError("assessment is nil", fmt.Errorf("assessment is nil"))
	}

	details, err := json.Marshal(assessmentDetails{
		ProteinProfiles:    assessment.ProteinProfiles,
		Interactions:       assessment.Interactions,
		EnzymeKinetics:     assessment.EnzymeKinetics,
		StabilityTimelines: assessment.StabilityTimelines,
		Compliance:         assessment.Compliance,
		ControlPoints:      assessment.ControlPoints,
		Recommendations:    assessment.Recommendations,
	})
	if err != nil {
		return apperrors.NewInternalError("failed to serialize assessment details", err)
	}

	record := goqu.Record{
		"id":                   assessment.ID,
		"sample_id":            assessment.SampleID,
		"sample_name":          sql.NullString{String: assessment.SampleName, Valid: assessment.SampleName != ""},
		"food_type":            sql.NullString{String: assessment.FoodType, Valid: assessment.FoodType != ""},
		"overall_safety_score": assessment.OverallSafetyScore,
		"risk_level":           string(assessment.RiskLevel),
		"confidence_score":     assessment.ConfidenceScore,
		"interaction_risk":     assessment.ComponentRisks.InteractionRisk,
		"stability_risk":       assessment.ComponentRisks.StabilityRisk,
		"compliance_risk":      assessment.ComponentRisks.ComplianceRisk,
		"details":              details,
		"random_seed":          assessment.RandomSeed,
		"created_at":           assessment.CreatedAt,
	}

	query, args, err := a.db.Insert("safety_assessments").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build assessment insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create assessment", err)
	}
	return nil
}

// GetByID retrieves one assessment with its full stage outputs.
func (a *AssessmentAdapter) GetByID(ctx context.Context, id string) (*entities.SafetyAssessment, error) {
	query, args, err := a.selectQuery().Where(goqu.C("id").Eq(id)).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build assessment query", err)
	}

	row := a.client.DB().QueryRowContext(ctx, query, args...)
	assessment, err := scanAssessment(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("assessment %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to scan assessment", err)
	}
	return assessment, nil
}

// GetBySampleID retrieves all assessments for a sample, newest first.
func (a *AssessmentAdapter) GetBySampleID(ctx context.Context, sampleID string) ([]*entities.SafetyAssessment, error) {
	query, args, err := a.selectQuery().
		Where(goqu.C("sample_id").Eq(sampleID)).
		Order(goqu.C("created_at").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build assessment query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query assessments", err)
	}
	defer rows.Close()

	var out []*entities.SafetyAssessment
	for rows.Next() {
		assessment, err := scanAssessment(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan assessment", err)
		}
		out = append(out, assessment)
	}
	return out, rows.Err()
}

// List returns assessment summaries ordered newest first.
func (a *AssessmentAdapter) List(ctx context.Context, limit, offset int) ([]*entities.SafetySummary, error) {
	return a.listSummaries(ctx, limit, offset)
}

// ListByRiskLevel returns summaries filtered to one risk tier.
func (a *AssessmentAdapter) ListByRiskLevel(ctx context.Context, level entities.RiskLevel, limit, offset int) ([]*entities.SafetySummary, error) {
	return a.listSummaries(ctx, limit, offset, goqu.C("risk_level").Eq(string(level)))
}

// Delete removes an assessment.
func (a *AssessmentAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("safety_assessments").Where(goqu.C("id").Eq(id)).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build assessment delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete assessment", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("assessment %s not found", id))
	}
	return nil
}

func (a *AssessmentAdapter) selectQuery() *goqu.SelectDataset {
	return a.db.From("safety_assessments").Select(
		"id", "sample_id", "sample_name", "food_type",
		"overall_safety_score", "risk_level", "confidence_score",
		"interaction_risk", "stability_risk", "compliance_risk",
		"details", "random_seed", "created_at",
	)
}

func (a *AssessmentAdapter) listSummaries(ctx context.Context, limit, offset int, conds ...goqu.Expression) ([]*entities.SafetySummary, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	ds := a.db.From("safety_assessments").Select(
		"id", "sample_id", "sample_name", "food_type",
		"overall_safety_score", "risk_level", "confidence_score", "details", "created_at",
	).Order(goqu.C("created_at").Desc()).
		Limit(uint(limit)).
		Offset(uint(offset))
	if len(conds) > 0 {
		ds = ds.Where(conds...)
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build assessment list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list assessments", err)
	}
	defer rows.Close()

	var out []*entities.SafetySummary
	for rows.Next() {
		var r assessmentRow
		if err := rows.Scan(&r.ID, &r.SampleID, &r.SampleName, &r.FoodType,
			&r.OverallSafetyScore, &r.RiskLevel, &r.ConfidenceScore, &r.Details, &r.CreatedAt); err != nil {
			return nil, apperrors.NewInternalError("failed to scan assessment summary", err)
		}

		var details assessmentDetails
		if len(r.Details) > 0 {
			if err := json.Unmarshal(r.Details, &details); err != nil {
				return nil, apperrors.NewInternalError("failed to deserialize assessment details", err)
			}
		}
		violations := 0
		if details.Compliance != nil {
			violations = len(details.Compliance.Violations)
		}
		out = append(out, &entities.SafetySummary{
			ID:                 r.ID,
			SampleID:           r.SampleID,
			SampleName:         r.SampleName.String,
			FoodType:           r.FoodType.String,
			OverallSafetyScore: r.OverallSafetyScore,
			RiskLevel:          entities.RiskLevel(r.RiskLevel),
			ConfidenceScore:    r.ConfidenceScore,
			InteractionCount:   len(details.Interactions),
			ViolationCount:     violations,
			CreatedAt:          r.CreatedAt.Time,
		})
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAssessment(row rowScanner) (*entities.SafetyAssessment, error) {
	var r assessmentRow
	if err := row.Scan(&r.ID, &r.SampleID, &r.SampleName, &r.FoodType,
		&r.OverallSafetyScore, &r.RiskLevel, &r.ConfidenceScore,
		&r.InteractionRisk, &r.StabilityRisk, &r.ComplianceRisk,
		&r.Details, &r.RandomSeed, &r.CreatedAt); err != nil {
		return nil, err
	}

	var details assessmentDetails
	if len(r.Details) > 0 {
		if err := json.Unmarshal(r.Details, &details); err != nil {
			return nil, err
		}
	}

	return &entities.SafetyAssessment{
		ID:                 r.ID,
		SampleID:           r.SampleID,
		SampleName:         r.SampleName.String,
		FoodType:           r.FoodType.String,
		OverallSafetyScore: r.OverallSafetyScore,
		RiskLevel:          entities.RiskLevel(r.RiskLevel),
		ComponentRisks: entities.ComponentRisks{
			InteractionRisk: r.InteractionRisk,
			StabilityRisk:   r.StabilityRisk,
			ComplianceRisk:  r.ComplianceRisk,
		},
		ConfidenceScore:    r.ConfidenceScore,
		ProteinProfiles:    details.ProteinProfiles,
		Interactions:       details.Interactions,
		EnzymeKinetics:     details.EnzymeKinetics,
		StabilityTimelines: details.StabilityTimelines,
		Compliance:         details.Compliance,
		ControlPoints:      details.ControlPoints,
		Recommendations:    details.Recommendations,
		RandomSeed:         r.RandomSeed,
		CreatedAt:          r.CreatedAt.Time,
	}, nil
}
