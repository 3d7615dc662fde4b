package utils

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrMalformedResponse = errors.New("malformed provider response")
	ErrRoutingService    = errors.New("routing service error")
	ErrGeocodingFailed   = errors.New("geocoding failed")
	ErrNoPOIsFound       = errors.New("no pois found")
	ErrDatabaseError     = errors.New("database error")
)
