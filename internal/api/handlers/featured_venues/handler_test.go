package featured_venues

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportshunt/turf-booking-service/internal/service/venues"
	"github.com/sportshunt/turf-booking-service/internal/service/venues/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockService struct {
	resp []*models.VenueResponse
	err  error
}

func (m *mockService) ListFeatured(ctx context.Context) ([]*models.VenueResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func TestHandle_ReturnsFeaturedVenues(t *testing.T) {
	svc := &mockService{resp: []*models.VenueResponse{
		{ID: 9, Name: "New Arena", HostID: 7, Turfs: []*models.TurfResponse{}},
		{ID: 8, Name: "Older Arena", HostID: 7, Turfs: []*models.TurfResponse{}},
	}}
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/venues/featured", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body []*models.VenueResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, int64(9), body[0].ID)
	assert.Equal(t, "New Arena", body[0].Name)
}

func TestHandle_ServiceError(t *testing.T) {
	svc := &mockService{err: venues.ErrInternal}
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/venues/featured", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
