package errors

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	ErrInvalidCharacter  = errors.New("geohash contains a character outside the base32 alphabet")
	ErrInvalidGeotype    = errors.New("geotype must be point, pointerr or polygon")
	ErrInvalidPrecision  = errors.New("precision must be a positive integer")
	ErrInvalidCoordinate = errors.New("coordinate outside the nominal lon/lat ranges")
	ErrInvalidLength     = errors.New("bit sequence length must be a multiple of 5")
	ErrNilContext        = errors.New("context is nil")
)

const (
	ERROR_INVALID_CHARACTER  string = "invalid geohash character %q at position %d, use 0-9, b-h, j, k, m, n, p-z"
	ERROR_INVALID_GEOTYPE    string = "invalid geotype %q"
	ERROR_INVALID_PRECISION  string = "invalid precision %d"
	ERROR_INVALID_LONGITUDE  string = "longitude %v outside [-180, 180]"
	ERROR_INVALID_LATITUDE   string = "latitude %v outside [-90, 90]"
	ERROR_ENCODING_LON_LAT   string = "error encoding lon/lat"
	ERROR_DECODING_GEOHASH   string = "error decoding geohash"
	ERROR_FINDING_NEIGHBORS  string = "error finding neighbors"
	ERROR_MISSING_APP_CONFIG string = "error missing app config"
)

type AppError struct {
	Inner      error
	Message    string
	StackTrace string
}

func NewAppError(errMsg string) AppError {
	return AppError{
		Inner:      errors.New(errMsg),
		Message:    errMsg,
		StackTrace: string(debug.Stack()),
	}
}

func WrapError(err error, msgf string, msgArgs ...interface{}) AppError {
	errMsg := err.Error()
	if msgf != "" {
		errMsg = fmt.Sprintf(msgf, msgArgs...)
	}
	return AppError{
		Inner:      err,
		Message:    errMsg,
		StackTrace: string(debug.Stack()),
	}
}

func (err AppError) Error() string {
	return err.Message
}

func (err AppError) Unwrap() error {
	return err.Inner
}
