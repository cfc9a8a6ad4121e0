package handler

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/Magga23/siteradar/internal/application/port/outbound"
	"github.com/Magga23/siteradar/internal/application/usecase/nearby"
	"github.com/Magga23/siteradar/internal/domain/entity"
)

type Sites struct {
	SearchUseCase  nearby.SearchUseCase
	SiteRepository outbound.SiteRepository
}

func NewSitesHandler(uc nearby.SearchUseCase, repo outbound.SiteRepository) *Sites {
	return &Sites{
		SearchUseCase:  uc,
		SiteRepository: repo,
	}
}

// Nearby handles GET /api/v1/sites/nearby?lat=&lng=&radius=
func (h *Sites) Nearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := parseCoord(q.Get("lat"))
	if err != nil {
		http.Error(w, "invalid or missing lat", http.StatusBadRequest)
		return
	}
	lng, err := parseCoord(q.Get("lng"))
	if err != nil {
		http.Error(w, "invalid or missing lng", http.StatusBadRequest)
		return
	}

	radius := nearby.DefaultRadiusMeters
	if raw := q.Get("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(radius) || math.IsInf(radius, 0) {
			http.Error(w, "invalid radius", http.StatusBadRequest)
			return
		}
	}

	output, err := h.SearchUseCase.Execute(r.Context(), nearby.SearchInput{
		Latitude:     lat,
		Longitude:    lng,
		RadiusMeters: radius,
	})
	if err != nil {
		var dsErr *nearby.DataSourceError
		switch {
		case errors.Is(err, entity.ErrNegativeRadius):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.As(err, &dsErr):
			http.Error(w, "site data source unavailable", http.StatusBadGateway)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// List handles GET /api/v1/sites
func (h *Sites) List(w http.ResponseWriter, r *http.Request) {
	sites, err := h.SiteRepository.ListWithCoordinates(r.Context())
	if err != nil {
		http.Error(w, "site data source unavailable", http.StatusBadGateway)
		return
	}
	if sites == nil {
		sites = []entity.Site{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"sites": sites})
}

func parseCoord(raw string) (float64, error) {
	if raw == "" {
		return 0, errors.New("empty")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not finite")
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
