package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/foodsentry/backend/internal/domain/entities"
	"github.com/foodsentry/backend/internal/domain/providers"
	"github.com/foodsentry/backend/internal/domain/repositories"
	"github.com/foodsentry/backend/internal/infrastructure/observability"
	apperrors "github.com/foodsentry/backend/pkg/errors"
)

// Substrate analyzed by default for each catalog enzyme.
var defaultSubstrates = map[string]string{
	"amylase":    "starch",
	"protease":   "casein",
	"lipase":     "triglycerides",
	"peroxidase": "hydrogen_peroxide",
	"catalase":   "hydrogen_peroxide",
	"lysozyme":   "peptidoglycan",
	"pepsin":     "casein",
}

const defaultInhibitorConcentration = 1.0 // mM

// PipelineService orchestrates the full analysis of a food sample:
// protein profiling, interaction prediction, enzyme kinetics,
// compliance and risk aggregation. Stage outputs are deterministic for
// a given seed regardless of worker scheduling.
type PipelineService struct {
	proteins     *ProteinAnalysisService
	interactions *InteractionService
	kinetics     *KineticsService
	compliance   *ComplianceService
	risk         *RiskScoringService
	advisory     *AdvisoryService

	repo     repositories.AssessmentRepository
	eventBus providers.EventBus
	metrics  *observability.Metrics

	seed          int64
	defaultRegion string
	maxWorkers    int
}

// NewPipelineService wires the full pipeline. repo, eventBus and
// metrics may be nil; the corresponding side effects are skipped.
func NewPipelineService(
	proteins *ProteinAnalysisService,
	interactions *InteractionService,
	kinetics *KineticsService,
	compliance *ComplianceService,
	risk *RiskScoringService,
	advisory *AdvisoryService,
	repo repositories.AssessmentRepository,
	eventBus providers.EventBus,
	metrics *observability.Metrics,
	seed int64,
	defaultRegion string,
	maxWorkers int,
) *PipelineService {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &PipelineService{
		proteins:      proteins,
		interactions:  interactions,
		kinetics:      kinetics,
		compliance:    compliance,
		risk:          risk,
		advisory:      advisory,
		repo:          repo,
		eventBus:      eventBus,
		metrics:       metrics,
		seed:          seed,
		defaultRegion: defaultRegion,
		maxWorkers:    maxWorkers,
	}
}

// AnalyzeSample runs every pipeline stage for one sample and returns
// the persisted assessment.
func (s *PipelineService) AnalyzeSample(ctx context.Context, sample entities.FoodSample, region string) (*entities.SafetyAssessment, error) {
	if len(sample.Proteins) == 0 {
		return nil, apperrors.NewValidationError("sample must list at least one protein")
	}
	if region == "" {
		region = s.defaultRegion
	}
	start := time.Now()
	sample.Conditions = sample.Conditions.Normalized()
	sample.SuspectedToxins = s.resolveToxins(ctx, sample)

	s.publish(ctx, &entities.AnalysisEvent{
		ID:        uuid.New().String(),
		Type:      entities.EventAnalysisStarted,
		SampleID:  sample.ID,
		Timestamp: time.Now().UTC(),
	})

	profiles, err := s.analyzeProteins(ctx, sample)
	if err != nil {
		s.publishFailure(ctx, sample.ID, err)
		return nil, err
	}
	s.recordStage(ctx, "protein_analysis")

	interactions, err := s.predictInteractions(ctx, sample, profiles)
	if err != nil {
		s.publishFailure(ctx, sample.ID, err)
		return nil, err
	}
	s.recordStage(ctx, "interaction_prediction")

	kinetics, timelines, err := s.analyzeEnzymes(ctx, sample, profiles)
	if err != nil {
		s.publishFailure(ctx, sample.ID, err)
		return nil, err
	}
	s.recordStage(ctx, "enzyme_kinetics")

	var report *entities.ComplianceReport
	if len(sample.Composition) > 0 {
		report, err = s.compliance.AssessCompliance(ctx, region, sample.FoodType, sample.Composition)
		if err != nil {
			s.publishFailure(ctx, sample.ID, err)
			return nil, err
		}
	}
	s.recordStage(ctx, "compliance")

	score, level, risks, confidence := s.risk.Score(profiles, interactions, report)

	assessment := &entities.SafetyAssessment{
		ID:                 uuid.New().String(),
		SampleID:           sample.ID,
		SampleName:         sample.Name,
		FoodType:           sample.FoodType,
		OverallSafetyScore: score,
		RiskLevel:          level,
		ComponentRisks:     risks,
		ConfidenceScore:    confidence,
		ProteinProfiles:    profiles,
		Interactions:       interactions,
		EnzymeKinetics:     kinetics,
		StabilityTimelines: timelines,
		Compliance:         report,
		ControlPoints:      s.advisory.IdentifyControlPoints(sample),
		RandomSeed:         s.seed,
		CreatedAt:          time.Now().UTC(),
	}
	assessment.Recommendations = s.advisory.GenerateRecommendations(assessment)
	s.recordStage(ctx, "risk_aggregation")

	if s.repo != nil {
		if err := s.repo.Create(ctx, assessment); err != nil {
			return nil, err
		}
	}

	s.publish(ctx, &entities.AnalysisEvent{
		ID:           uuid.New().String(),
		Type:         entities.EventAnalysisCompleted,
		SampleID:     sample.ID,
		AssessmentID: assessment.ID,
		RiskLevel:    level,
		Timestamp:    time.Now().UTC(),
	})
	if level == entities.RiskHigh || level == entities.RiskCritical {
		s.publish(ctx, &entities.AnalysisEvent{
			ID:           uuid.New().String(),
			Type:         entities.EventCriticalRisk,
			SampleID:     sample.ID,
			AssessmentID: assessment.ID,
			RiskLevel:    level,
			Message:      "sample requires immediate review",
			Timestamp:    time.Now().UTC(),
		})
	}

	if s.metrics != nil {
		observability.RecordPipelineMetric(ctx, s.metrics, sample.FoodType, time.Since(start))
	}
	log.Ctx(ctx).Info().
		Str("sample_id", sample.ID).
		Str("risk_level", string(level)).
		Float64("safety_score", score).
		Dur("duration", time.Since(start)).
		Msg("sample analysis completed")

	return assessment, nil
}

// ScreenSample runs only the fast pair triage without docking.
func (s *PipelineService) ScreenSample(ctx context.Context, sample entities.FoodSample) ([]entities.InteractionScreen, error) {
	sample.Conditions = sample.Conditions.Normalized()
	profiles, err := s.analyzeProteins(ctx, sample)
	if err != nil {
		return nil, err
	}
	return s.interactions.ScreenPairs(ctx, s.resolveToxins(ctx, sample), profiles), nil
}

// resolveToxins falls back to the food-type relevance screen when a
// sample arrives without a suspected-toxin list.
func (s *PipelineService) resolveToxins(ctx context.Context, sample entities.FoodSample) []string {
	if len(sample.SuspectedToxins) > 0 {
		return sample.SuspectedToxins
	}
	toxins := s.interactions.RelevantToxins(ctx, sample.FoodType)
	log.Ctx(ctx).Debug().
		Str("sample_id", sample.ID).
		Str("food_type", sample.FoodType).
		Int("candidates", len(toxins)).
		Msg("no suspected toxins listed, screening food-type relevant classes")
	return toxins
}

func (s *PipelineService) analyzeProteins(ctx context.Context, sample entities.FoodSample) ([]entities.ProteinProfile, error) {
	profiles := make([]entities.ProteinProfile, len(sample.Proteins))
	err := s.forEach(ctx, len(sample.Proteins), func(i int) error {
		profile, err := s.proteins.AnalyzeProtein(ctx, sample.Proteins[i], sample.Conditions)
		if err != nil {
			return err
		}
		profiles[i] = profile
		return nil
	})
	return profiles, err
}

func (s *PipelineService) predictInteractions(ctx context.Context, sample entities.FoodSample, profiles []entities.ProteinProfile) ([]entities.InteractionRecord, error) {
	type pair struct {
		toxin   string
		protein int
	}
	var pairs []pair
	for _, toxin := range sample.SuspectedToxins {
		for i := range profiles {
			pairs = append(pairs, pair{toxin: toxin, protein: i})
		}
	}

	records := make([]entities.InteractionRecord, len(pairs))
	err := s.forEach(ctx, len(pairs), func(i int) error {
		record, err := s.interactions.PredictInteraction(ctx, pairs[i].toxin, profiles[pairs[i].protein], sample.Conditions)
		if err != nil {
			return err
		}
		records[i] = record
		return nil
	})
	return records, err
}

func (s *PipelineService) analyzeEnzymes(ctx context.Context, sample entities.FoodSample, profiles []entities.ProteinProfile) ([]entities.EnzymeKinetics, []entities.StabilityTimeline, error) {
	var kinetics []entities.EnzymeKinetics
	var timelines []entities.StabilityTimeline

	for _, profile := range profiles {
		if profile.Type != entities.ProteinTypeEnzyme {
			continue
		}
		substrate, ok := defaultSubstrates[normalizeKey(profile.Name)]
		if !ok {
			substrate = "generic"
		}
		kin, err := s.kinetics.ComputeKinetics(ctx, profile.Name, substrate, sample.Conditions)
		if err != nil {
			return nil, nil, err
		}

		for _, toxin := range sample.SuspectedToxins {
			concentration := defaultInhibitorConcentration
			if level, ok := sample.Composition[toxin]; ok && level > 0 {
				concentration = level
			}
			result, err := s.kinetics.PredictInhibition(ctx, kin, toxin, concentration)
			if err != nil {
				return nil, nil, err
			}
			if kin.Inhibition == nil {
				kin.Inhibition = make(map[string]entities.InhibitionParams)
			}
			kin.Inhibition[toxin] = entities.InhibitionParams{
				Ki:       result.Ki,
				Type:     result.InhibitionType,
				Severity: result.Severity,
			}
		}
		kinetics = append(kinetics, kin)

		timeline, err := s.kinetics.PredictStability(ctx, profile.Name, sample.Conditions)
		if err != nil {
			return nil, nil, err
		}
		timelines = append(timelines, timeline)
	}
	return kinetics, timelines, nil
}

// forEach runs fn for each index with bounded parallelism, failing fast
// on the first error.
func (s *PipelineService) forEach(ctx context.Context, n int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}
	sem := make(chan struct{}, s.maxWorkers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := fn(i); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	return firstErr
}

func (s *PipelineService) recordStage(ctx context.Context, stage string) {
	if s.metrics != nil {
		observability.RecordStageMetric(ctx, s.metrics, stage)
	}
}

func (s *PipelineService) publish(ctx context.Context, event *entities.AnalysisEvent) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, providers.EventChannelAnalysisUpdates, event); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("event", string(event.Type)).Msg("failed to publish analysis event")
	}
	if event.SampleID != "" {
		if err := s.eventBus.Publish(ctx, providers.GetSampleChannel(event.SampleID), event); err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("event", string(event.Type)).Msg("failed to publish sample event")
		}
	}
}

func (s *PipelineService) publishFailure(ctx context.Context, sampleID string, err error) {
	s.publish(ctx, &entities.AnalysisEvent{
		ID:        uuid.New().String(),
		Type:      entities.EventAnalysisFailed,
		SampleID:  sampleID,
		Message:   err.Error(),
		Timestamp: time.Now().UTC(),
	})
}
