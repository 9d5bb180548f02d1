package create_offline_booking

import (
	"time"

	"github.com/sportshunt/turf-booking-service/internal/domain"
)

const (
	errMissingVenueID   = "Missing venue ID"
	errMissingTurfID    = "Missing turf ID"
	errMissingStartTime = "Missing start time"
	errMissingDuration  = "Missing duration"
	errInvalidDuration  = "Duration must be at least 60 minutes and in increments of 30 minutes"
	errInvalidStartTime = "Invalid start time format"
	errStartNotAligned  = "Start time minutes must be either 00 or 30"
)

// validateRequest структурная валидация запроса хоста.
// Те же правила слота, что и в онлайн-потоке, но без проверки прошлого:
// хост может задним числом зафиксировать уже сыгранное бронирование.
func validateRequest(req *Request) (*slot, *ValidationErrors) {
	var errs []string

	if req.VenueID == 0 {
		errs = append(errs, errMissingVenueID)
	}
	if req.TurfID == 0 {
		errs = append(errs, errMissingTurfID)
	}
	if req.StartDate == "" {
		errs = append(errs, errMissingStartTime)
	}
	if req.DurationMinutes == 0 {
		errs = append(errs, errMissingDuration)
	}

	if req.DurationMinutes != 0 &&
		(req.DurationMinutes < domain.MinBookingDurationMinutes ||
			req.DurationMinutes%domain.SlotStepMinutes != 0) {
		errs = append(errs, errInvalidDuration)
	}

	var start time.Time
	startValid := false
	if req.StartDate != "" {
		parsed, err := time.ParseInLocation(domain.DateTimeFormat, req.StartDate, time.Local)
		if err != nil {
			errs = append(errs, errInvalidStartTime)
		} else {
			start = parsed
			startValid = true
		}
	}

	if startValid && !domain.IsSlotAligned(start) {
		errs = append(errs, errStartNotAligned)
	}

	if len(errs) > 0 {
		return nil, &ValidationErrors{Errors: errs}
	}

	return &slot{
		start: start,
		end:   start.Add(time.Duration(req.DurationMinutes) * time.Minute),
	}, nil
}
