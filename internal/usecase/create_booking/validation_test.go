package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportshunt/turf-booking-service/internal/domain"
)

func TestValidateRequest(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name       string
		req        *Request
		wantErrors []string
	}{
		{
			name: "valid request",
			req: &Request{
				VenueID:         1,
				TurfID:          2,
				StartDate:       "2025-06-01T10:00",
				DurationMinutes: 90,
			},
		},
		{
			name: "valid half hour start",
			req: &Request{
				VenueID:         1,
				TurfID:          2,
				StartDate:       "2025-06-01T10:30",
				DurationMinutes: 60,
			},
		},
		{
			name: "all fields missing",
			req:  &Request{},
			wantErrors: []string{
				"Missing venue ID",
				"Missing turf ID",
				"Missing start time",
				"Missing duration",
			},
		},
		{
			name: "duration too short",
			req: &Request{
				VenueID:         1,
				TurfID:          2,
				StartDate:       "2025-06-01T10:00",
				DurationMinutes: 30,
			},
			wantErrors: []string{"Duration must be at least 60 minutes and in increments of 30 minutes"},
		},
		{
			name: "duration not a multiple of 30",
			req: &Request{
				VenueID:         1,
				TurfID:          2,
				StartDate:       "2025-06-01T10:00",
				DurationMinutes: 75,
			},
			wantErrors: []string{"Duration must be at least 60 minutes and in increments of 30 minutes"},
		},
		{
			name: "bad start time format",
			req: &Request{
				VenueID:         1,
				TurfID:          2,
				StartDate:       "01-06-2025 10:00",
				DurationMinutes: 60,
			},
			wantErrors: []string{"Invalid start time format"},
		},
		{
			name: "start not aligned to half hour",
			req: &Request{
				VenueID:         1,
				TurfID:          2,
				StartDate:       "2025-06-01T10:15",
				DurationMinutes: 60,
			},
			wantErrors: []string{"Start time minutes must be either 00 or 30"},
		},
		{
			name: "start in the past",
			req: &Request{
				VenueID:         1,
				TurfID:          2,
				StartDate:       "2025-06-01T08:00",
				DurationMinutes: 60,
			},
			wantErrors: []string{"Booking cannot be in the past"},
		},
		{
			name: "multiple independent errors accumulate",
			req: &Request{
				TurfID:          2,
				StartDate:       "2025-06-01T08:15",
				DurationMinutes: 45,
			},
			wantErrors: []string{
				"Missing venue ID",
				"Duration must be at least 60 minutes and in increments of 30 minutes",
				"Start time minutes must be either 00 or 30",
				"Booking cannot be in the past",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requested, verrs := validateRequest(tt.req, now)
			if len(tt.wantErrors) > 0 {
				require.NotNil(t, verrs)
				assert.Equal(t, tt.wantErrors, verrs.Errors)
				assert.ErrorIs(t, verrs, ErrInvalidInput)
				return
			}
			require.Nil(t, verrs)
			require.NotNil(t, requested)
			assert.True(t, domain.IsSlotAligned(requested.start))
			assert.Equal(t, requested.start.Add(time.Duration(tt.req.DurationMinutes)*time.Minute), requested.end)
		})
	}
}
