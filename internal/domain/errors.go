package domain

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingTariff is returned when a day's tariff table has no entry for the requested hour.
	ErrMissingTariff = errors.New("missing tariff")

	// ErrMinimumPrice is returned when the battery contract cannot find the prior day's lowest price.
	ErrMinimumPrice = errors.New("could not calculate minimum price")

	ErrTransport        = errors.New("transport failure")
	ErrStorage          = errors.New("storage failure")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrMissingParameter = errors.New("missing parameter")

	// ErrInvalidReading marks a malformed CSV row or a decreasing gas meter.
	ErrInvalidReading = errors.New("invalid reading")
)

// Error kinds as they appear in reports.
const (
	KindMissingTariff    = "MissingTariff"
	KindMinimumPrice     = "CouldNotCalculateMinimumPrice"
	KindTransport        = "TransportFailure"
	KindStorage          = "StorageFailure"
	KindInvalidParameter = "InvalidParameter"
	KindMissingParameter = "MissingParameter"
	KindInvalidReading   = "InvalidReading"
	KindUnknown          = "Unknown"
)

// Classify maps an error to its report kind and HTTP status.
// The battery error wraps its cause, so it is checked before the causes it may carry.
func Classify(err error) (string, int) {
	switch {
	case errors.Is(err, ErrMinimumPrice):
		return KindMinimumPrice, http.StatusBadRequest
	case errors.Is(err, ErrMissingTariff):
		return KindMissingTariff, http.StatusBadRequest
	case errors.Is(err, ErrTransport):
		return KindTransport, http.StatusBadGateway
	case errors.Is(err, ErrStorage):
		return KindStorage, http.StatusInternalServerError
	case errors.Is(err, ErrInvalidParameter):
		return KindInvalidParameter, http.StatusBadRequest
	case errors.Is(err, ErrMissingParameter):
		return KindMissingParameter, http.StatusBadRequest
	case errors.Is(err, ErrInvalidReading):
		return KindInvalidReading, http.StatusBadRequest
	default:
		return KindUnknown, http.StatusInternalServerError
	}
}

// NewErrorRecord converts err into its report form.
func NewErrorRecord(err error) ErrorRecord {
	kind, status := Classify(err)
	return ErrorRecord{
		Kind:    kind,
		Message: err.Error(),
		Status:  status,
	}
}
