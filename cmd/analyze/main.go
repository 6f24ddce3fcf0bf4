package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/foodsentry/backend/internal/adapters/catalog"
	"github.com/foodsentry/backend/internal/adapters/providers/descriptors"
	"github.com/foodsentry/backend/internal/adapters/providers/structure"
	"github.com/foodsentry/backend/internal/application/services"
	"github.com/foodsentry/backend/internal/domain/entities"
	"github.com/foodsentry/backend/internal/infrastructure/observability"
)

// analyze runs the full pipeline offline: it reads a FoodSample JSON
// document, analyzes it against the in-memory catalogs and prints the
// resulting SafetyAssessment as JSON. No database or Redis required.
func main() {
	var (
		inputPath = flag.String("input", "-", "path to FoodSample JSON, or - for stdin")
		region    = flag.String("region", "us_fda", "regulatory region for compliance checks")
		seed      = flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
		workers   = flag.Int("workers", 4, "max concurrent stage workers")
		pretty    = flag.Bool("pretty", true, "indent JSON output")
	)
	flag.Parse()

	observability.InitLogger("foodsentry-analyze", "cli")

	sample, err := readSample(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read sample: %v\n", err)
		os.Exit(1)
	}

	effectiveSeed := *seed
	if effectiveSeed == 0 {
		effectiveSeed = time.Now().UnixNano()
	}

	proteinCatalog := catalog.NewMemoryProteinCatalog()
	toxinCatalog := catalog.NewMemoryToxinCatalog()

	pipeline := services.NewPipelineService(
		services.NewProteinAnalysisService(proteinCatalog, structure.NewHeuristicProvider(effectiveSeed), effectiveSeed),
		services.NewInteractionService(toxinCatalog, proteinCatalog, descriptors.NewFallbackProvider(effectiveSeed), effectiveSeed),
		services.NewKineticsService(catalog.NewMemoryEnzymeCatalog()),
		services.NewComplianceService(catalog.NewMemoryRegulatoryCatalog()),
		services.NewRiskScoringService(),
		services.NewAdvisoryService(),
		nil, nil, nil,
		effectiveSeed,
		*region,
		*workers,
	)

	assessment, err := pipeline.AnalyzeSample(context.Background(), sample, *region)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analysis failed: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(assessment); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode assessment: %v\n", err)
		os.Exit(1)
	}
}

func readSample(path string) (entities.FoodSample, error) {
	var reader io.Reader
	if path == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			return entities.FoodSample{}, err
		}
		defer file.Close()
		reader = file
	}

	var sample entities.FoodSample
	if err := json.NewDecoder(reader).Decode(&sample); err != nil {
		return entities.FoodSample{}, fmt.Errorf("invalid sample JSON: %w", err)
	}
	return sample, nil
}
