package routes

import (
	"net/http"

	"github.com/foodsentry/backend/internal/api/handlers"
	"github.com/foodsentry/backend/internal/api/middleware"
	"github.com/foodsentry/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	analysisHandler *handlers.AnalysisHandler
	toolsHandler    *handlers.ToolsHandler
	catalogHandler  *handlers.CatalogHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	analysisHandler *handlers.AnalysisHandler,
	toolsHandler *handlers.ToolsHandler,
	catalogHandler *handlers.CatalogHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		analysisHandler: analysisHandler,
		toolsHandler:    toolsHandler,
		catalogHandler:  catalogHandler,
		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Analysis pipeline endpoints
	r.mux.HandleFunc("POST /api/analysis", r.analysisHandler.AnalyzeSample)
	r.mux.HandleFunc("POST /api/analysis/screen", r.analysisHandler.ScreenSample)

	// Assessment endpoints
	r.mux.HandleFunc("GET /api/assessments", r.analysisHandler.ListAssessments)
	r.mux.HandleFunc("GET /api/assessments/{id}", r.analysisHandler.GetAssessment)
	r.mux.HandleFunc("DELETE /api/assessments/{id}", r.analysisHandler.DeleteAssessment)
	r.mux.HandleFunc("GET /api/samples/{id}/assessments", r.analysisHandler.GetSampleAssessments)

	// Single-stage tool endpoints
	r.mux.HandleFunc("POST /api/tools/protein-analysis", r.toolsHandler.AnalyzeProtein)
	r.mux.HandleFunc("POST /api/tools/interaction", r.toolsHandler.PredictInteraction)
	r.mux.HandleFunc("POST /api/tools/kinetics", r.toolsHandler.ComputeKinetics)
	r.mux.HandleFunc("POST /api/tools/inhibition", r.toolsHandler.PredictInhibition)
	r.mux.HandleFunc("POST /api/tools/stability", r.toolsHandler.PredictStability)
	r.mux.HandleFunc("POST /api/tools/compliance", r.toolsHandler.AssessCompliance)
	r.mux.HandleFunc("POST /api/tools/safety-score", r.toolsHandler.ComputeSafetyScore)
	r.mux.HandleFunc("POST /api/tools/ccp", r.toolsHandler.AssessControlPoints)

	// Catalog endpoints
	r.mux.HandleFunc("GET /api/catalog/proteins", r.catalogHandler.ListProteins)
	r.mux.HandleFunc("GET /api/catalog/toxins", r.catalogHandler.ListToxins)
	r.mux.HandleFunc("GET /api/catalog/toxins/{name}", r.catalogHandler.GetToxin)
	r.mux.HandleFunc("GET /api/catalog/regions", r.catalogHandler.ListRegions)

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so cached responses also get CORS headers.

	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	// Apply cache middleware if available
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// Apply HTTP performance optimizations (compression, ETag, cache headers)
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
