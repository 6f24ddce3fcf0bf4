package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/foodsentry/backend/internal/adapters/catalog"
	"github.com/foodsentry/backend/internal/adapters/database"
	"github.com/foodsentry/backend/internal/adapters/providers/descriptors"
	"github.com/foodsentry/backend/internal/adapters/providers/structure"
	"github.com/foodsentry/backend/internal/application/services"
	"github.com/foodsentry/backend/internal/domain/entities"
	"github.com/foodsentry/backend/internal/infrastructure/clients/postgres"
	"github.com/foodsentry/backend/internal/infrastructure/observability"
	"github.com/foodsentry/backend/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS safety_assessments (
	id                   TEXT PRIMARY KEY,
	sample_id            TEXT NOT NULL,
	sample_name          TEXT,
	food_type            TEXT,
	overall_safety_score DOUBLE PRECISION NOT NULL,
	risk_level           TEXT NOT NULL,
	confidence_score     DOUBLE PRECISION NOT NULL,
	interaction_risk     DOUBLE PRECISION NOT NULL DEFAULT 0,
	stability_risk       DOUBLE PRECISION NOT NULL DEFAULT 0,
	compliance_risk      DOUBLE PRECISION NOT NULL DEFAULT 0,
	details              JSONB,
	random_seed          BIGINT NOT NULL DEFAULT 0,
	created_at           TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_safety_assessments_sample_id
	ON safety_assessments (sample_id);
CREATE INDEX IF NOT EXISTS idx_safety_assessments_risk_level
	ON safety_assessments (risk_level, created_at DESC);
`

// seed creates the assessments schema and, unless SKIP_DEMO=true, runs
// the pipeline over a handful of representative samples so a fresh
// environment has data to browse.
func main() {
	observability.InitLogger("foodsentry-seed", "cli")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pgClient.Close()

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, dropping assessments table before seeding")
		if _, err := pgClient.DB().ExecContext(ctx, `DROP TABLE IF EXISTS safety_assessments`); err != nil {
			log.Fatal().Err(err).Msg("failed to reset tables")
		}
	}

	if _, err := pgClient.DB().ExecContext(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("failed to create schema")
	}
	log.Info().Msg("safety_assessments schema ready")

	if os.Getenv("SKIP_DEMO") == "true" {
		return
	}

	seed := cfg.Analysis.RandomSeed
	if seed == 0 {
		seed = 1
	}

	proteinCatalog := catalog.NewMemoryProteinCatalog()
	toxinCatalog := catalog.NewMemoryToxinCatalog()
	repo := database.NewAssessmentAdapter(pgClient)

	pipeline := services.NewPipelineService(
		services.NewProteinAnalysisService(proteinCatalog, structure.NewHeuristicProvider(seed), seed),
		services.NewInteractionService(toxinCatalog, proteinCatalog, descriptors.NewFallbackProvider(seed), seed),
		services.NewKineticsService(catalog.NewMemoryEnzymeCatalog()),
		services.NewComplianceService(catalog.NewMemoryRegulatoryCatalog()),
		services.NewRiskScoringService(),
		services.NewAdvisoryService(),
		repo,
		nil,
		nil,
		seed,
		cfg.Analysis.DefaultRegion,
		cfg.Analysis.MaxWorkers,
	)

	samples := []entities.FoodSample{
		{
			ID:              "demo-wheat-flour",
			Name:            "Wheat Flour Batch 7",
			FoodType:        "grain",
			Proteins:        []string{"gluten", "amylase"},
			SuspectedToxins: []string{"aflatoxin_b1", "deoxynivalenol"},
			Composition:     map[string]float64{"aflatoxin_b1": 1.5, "deoxynivalenol": 200},
			Conditions:      entities.ProcessingConditions{Temperature: 25, PH: 6.5, Duration: 30, IonicStrength: 0.15},
			Origin:          "demo",
		},
		{
			ID:              "demo-raw-milk",
			Name:            "Raw Milk Lot 12",
			FoodType:        "dairy",
			Proteins:        []string{"casein", "whey_protein", "lysozyme"},
			SuspectedToxins: []string{"aflatoxin_b1"},
			Composition:     map[string]float64{"aflatoxin_m1": 0.3},
			Conditions:      entities.ProcessingConditions{Temperature: 4, PH: 6.7, Duration: 1440, IonicStrength: 0.08},
			Origin:          "demo",
		},
		{
			ID:              "demo-apple-juice",
			Name:            "Apple Juice Concentrate",
			FoodType:        "processed",
			Proteins:        []string{"albumin"},
			SuspectedToxins: []string{"patulin"},
			Composition:     map[string]float64{"patulin": 60},
			Conditions:      entities.ProcessingConditions{Temperature: 85, PH: 3.8, Duration: 15, IonicStrength: 0.05},
			Origin:          "demo",
		},
	}

	for _, sample := range samples {
		assessment, err := pipeline.AnalyzeSample(ctx, sample, "")
		if err != nil {
			log.Error().Err(err).Str("sample_id", sample.ID).Msg("failed to analyze demo sample")
			continue
		}
		log.Info().
			Str("sample_id", sample.ID).
			Str("risk_level", string(assessment.RiskLevel)).
			Float64("score", assessment.OverallSafetyScore).
			Msg("seeded demo assessment")
	}

	log.Info().Msg("seeding complete")
}
