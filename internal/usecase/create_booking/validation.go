package create_booking

import (
	"time"

	"github.com/sportshunt/turf-booking-service/internal/domain"
)

// Тексты ошибок валидации входят в контракт API, возвращаются списком клиенту
const (
	errMissingVenueID   = "Missing venue ID"
	errMissingTurfID    = "Missing turf ID"
	errMissingStartTime = "Missing start time"
	errMissingDuration  = "Missing duration"
	errInvalidDuration  = "Duration must be at least 60 minutes and in increments of 30 minutes"
	errInvalidStartTime = "Invalid start time format"
	errStartNotAligned  = "Start time minutes must be either 00 or 30"
	errStartInPast      = "Booking cannot be in the past"
)

// validateRequest структурная валидация запроса: чистая функция над входом.
// Независимые проверки не прерываются на первой ошибке, клиент получает
// полный список. Возвращает нормализованный слот {start, end, duration}.
func validateRequest(req *Request, now time.Time) (*slot, *ValidationErrors) {
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

	durationValid := req.DurationMinutes != 0
	if durationValid &&
		(req.DurationMinutes < domain.MinBookingDurationMinutes ||
			req.DurationMinutes%domain.SlotStepMinutes != 0) {
		errs = append(errs, errInvalidDuration)
		durationValid = false
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

	if startValid {
		if !domain.IsSlotAligned(start) {
			errs = append(errs, errStartNotAligned)
		}
		if start.Before(now) {
			errs = append(errs, errStartInPast)
		}
	}

	if len(errs) > 0 {
		return nil, &ValidationErrors{Errors: errs}
	}
	if !durationValid || !startValid {
		// Сюда не попадаем: невалидные duration/start всегда дают ошибку выше
		return nil, &ValidationErrors{Errors: []string{errInvalidDuration}}
	}

	end := start.Add(time.Duration(req.DurationMinutes) * time.Minute)

	return &slot{
		start:    start,
		end:      end,
		duration: req.DurationMinutes,
	}, nil
}
