package http

import (
	"errors"
	"net/http"

	"github.com/fuelops/dispensing-service/internal/http/dto"
	"github.com/fuelops/dispensing-service/internal/service"
)

// MapError переводит доменные/DTO ошибки в HTTP статус и конверт ответа.
// Инфраструктурные причины наружу не раскрываются.
func MapError(err error) (int, Envelope) {
	switch {
	// DTO parsing
	case errors.Is(err, dto.ErrCredentialsRequired),
		errors.Is(err, dto.ErrBadVolume),
		errors.Is(err, dto.ErrBadAmount),
		errors.Is(err, dto.ErrBadStartDate),
		errors.Is(err, dto.ErrBadEndDate),
		errors.Is(err, dto.ErrBadPage),
		errors.Is(err, dto.ErrBadPageSize),
		errors.Is(err, dto.ErrBadRecordID):
		return http.StatusBadRequest, fail(err.Error())

	// Service validation
	case errors.Is(err, service.ErrDispenserRequired),
		errors.Is(err, service.ErrDispenserTooLong),
		errors.Is(err, service.ErrVolumeOutOfRange),
		errors.Is(err, service.ErrAmountNegative),
		errors.Is(err, service.ErrPaymentRequired),
		errors.Is(err, service.ErrPaymentTooLong),
		errors.Is(err, service.ErrVehicleRequired),
		errors.Is(err, service.ErrVehicleTooLong),
		errors.Is(err, service.ErrOptionalTooLong),
		errors.Is(err, service.ErrBadPage):
		return http.StatusBadRequest, fail(err.Error())

	// Infrastructure
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, fail("record not found")
	case errors.Is(err, service.ErrStoreFailed):
		return http.StatusInternalServerError, fail("failed to store attachment")
	case errors.Is(err, service.ErrPersistFailed):
		return http.StatusInternalServerError, fail("failed to save record")
	}
	return http.StatusInternalServerError, fail("internal error")
}
