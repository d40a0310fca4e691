package service

import "errors"

// Ошибки валидации: клиентские, исправимы на стороне вызывающего
var (
	ErrDispenserRequired = errors.New("dispenser_no required")
	ErrDispenserTooLong  = errors.New("dispenser_no too long")
	ErrVolumeOutOfRange  = errors.New("volume must be positive and within bounds")
	ErrAmountNegative    = errors.New("amount must not be negative")
	ErrPaymentRequired   = errors.New("payment_mode required")
	ErrPaymentTooLong    = errors.New("payment_mode too long")
	ErrVehicleRequired   = errors.New("vehicle_number required")
	ErrVehicleTooLong    = errors.New("vehicle_number too long")
	ErrOptionalTooLong   = errors.New("optional field too long")
	ErrBadPage           = errors.New("page and page_size must be >= 1")
)

// Инфраструктурные отказы; наружу уходят как generic operation failure
var (
	ErrNotFound      = errors.New("not_found")
	ErrStoreFailed   = errors.New("attachment_store_failed")
	ErrPersistFailed = errors.New("persistence_failed")
)
