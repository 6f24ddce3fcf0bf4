package repositories

import (
	"context"

	"github.com/foodsentry/backend/internal/domain/entities"
)

// AssessmentRepository persists completed safety assessments.
type AssessmentRepository interface {
	Create(ctx context.Context, assessment *entities.SafetyAssessment) error
	GetByID(ctx context.Context, id string) (*entities.SafetyAssessment, error)
	GetBySampleID(ctx context.Context, sampleID string) ([]*entities.SafetyAssessment, error)
	List(ctx context.Context, limit, offset int) ([]*entities.SafetySummary, error)
	ListByRiskLevel(ctx context.Context, level entities.RiskLevel, limit, offset int) ([]*entities.SafetySummary, error)
	Delete(ctx context.Context, id string) error
}
