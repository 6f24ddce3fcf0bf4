package handlers

import (
	"net/http"

	"github.com/foodsentry/backend/internal/domain/repositories"
)

// CatalogHandler serves the static reference catalogs
type CatalogHandler struct {
	proteins   repositories.ProteinCatalog
	toxins     repositories.ToxinCatalog
	regulatory repositories.RegulatoryCatalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	proteins repositories.ProteinCatalog,
	toxins repositories.ToxinCatalog,
	regulatory repositories.RegulatoryCatalog,
) *CatalogHandler {
	return &CatalogHandler{
		proteins:   proteins,
		toxins:     toxins,
		regulatory: regulatory,
	}
}

// ListProteins handles GET /api/catalog/proteins
func (h *CatalogHandler) ListProteins(w http.ResponseWriter, r *http.Request) {
	names := h.proteins.ListProteins(r.Context())
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"proteins": names,
		"count":    len(names),
	})
}

// ListToxins handles GET /api/catalog/toxins
func (h *CatalogHandler) ListToxins(w http.ResponseWriter, r *http.Request) {
	names := h.toxins.ListToxins(r.Context())
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"toxins": names,
		"count":  len(names),
	})
}

// GetToxin handles GET /api/catalog/toxins/{name}
func (h *CatalogHandler) GetToxin(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		respondWithError(w, http.StatusBadRequest, "toxin name is required")
		return
	}

	toxin, ok := h.toxins.GetToxin(r.Context(), name)
	if !ok {
		respondWithError(w, http.StatusNotFound, "toxin not found: "+name)
		return
	}

	known := h.toxins.GetKnownInteractions(r.Context(), name)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"toxin":              toxin,
		"known_interactions": known,
	})
}

// ListRegions handles GET /api/catalog/regions
func (h *CatalogHandler) ListRegions(w http.ResponseWriter, r *http.Request) {
	regions := h.regulatory.ListRegions(r.Context())
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"regions": regions,
		"count":   len(regions),
	})
}
