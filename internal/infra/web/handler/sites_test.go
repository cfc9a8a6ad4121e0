package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Magga23/siteradar/internal/application/usecase/nearby"
	"github.com/Magga23/siteradar/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearchUseCase struct {
	lastInput nearby.SearchInput
	output    nearby.SearchOutput
	err       error
}

func (s *stubSearchUseCase) Execute(ctx context.Context, input nearby.SearchInput) (nearby.SearchOutput, error) {
	s.lastInput = input
	if s.err != nil {
		return nearby.SearchOutput{}, s.err
	}
	return s.output, nil
}

type stubSiteRepository struct {
	sites []entity.Site
	err   error
}

func (s *stubSiteRepository) ListWithCoordinates(ctx context.Context) ([]entity.Site, error) {
	return s.sites, s.err
}

func (s *stubSiteRepository) Upsert(ctx context.Context, site *entity.Site) error {
	return nil
}

func TestNearby_ReturnsRankedSites(t *testing.T) {
	uc := &stubSearchUseCase{
		output: nearby.SearchOutput{Sites: []nearby.SiteResult{
			{ID: "A", DistanceMeters: 1105.2},
		}},
	}
	h := NewSitesHandler(uc, &stubSiteRepository{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sites/nearby?lat=52.52&lng=13.405&radius=10000", nil)
	rec := httptest.NewRecorder()

	h.Nearby(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body nearby.SearchOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Sites, 1)
	assert.Equal(t, "A", body.Sites[0].ID)
	assert.Equal(t, 10000.0, uc.lastInput.RadiusMeters)
}

func TestNearby_DefaultsRadius(t *testing.T) {
	uc := &stubSearchUseCase{}
	h := NewSitesHandler(uc, &stubSiteRepository{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sites/nearby?lat=52.52&lng=13.405", nil)
	rec := httptest.NewRecorder()

	h.Nearby(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, nearby.DefaultRadiusMeters, uc.lastInput.RadiusMeters)
}

func TestNearby_BadRequests(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"Should reject missing lat", "lng=13.405"},
		{"Should reject missing lng", "lat=52.52"},
		{"Should reject non-numeric lat", "lat=abc&lng=13.405"},
		{"Should reject NaN lat", "lat=NaN&lng=13.405"},
		{"Should reject non-numeric radius", "lat=52.52&lng=13.405&radius=wide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSitesHandler(&stubSearchUseCase{}, &stubSiteRepository{})
			req := httptest.NewRequest(http.MethodGet, "/api/v1/sites/nearby?"+tt.query, nil)
			rec := httptest.NewRecorder()

			h.Nearby(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestNearby_NegativeRadiusIsBadRequest(t *testing.T) {
	uc := &stubSearchUseCase{err: entity.ErrNegativeRadius}
	h := NewSitesHandler(uc, &stubSiteRepository{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sites/nearby?lat=0&lng=0&radius=-5", nil)
	rec := httptest.NewRecorder()

	h.Nearby(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNearby_DataSourceFailureIsBadGateway(t *testing.T) {
	uc := &stubSearchUseCase{err: &nearby.DataSourceError{Err: errors.New("connection refused")}}
	h := NewSitesHandler(uc, &stubSiteRepository{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sites/nearby?lat=0&lng=0", nil)
	rec := httptest.NewRecorder()

	h.Nearby(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestList_ReturnsEmptyArrayWhenNoSites(t *testing.T) {
	h := NewSitesHandler(&stubSearchUseCase{}, &stubSiteRepository{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sites", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sites":[]}`, rec.Body.String())
}
