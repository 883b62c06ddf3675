package domain

import "errors"

var (
	// ErrNotFound is the expected branch for lookups of reminders that do
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrUserResolution means a detected game event could not be mapped to
	// a known user. The event is dropped and logged.
	ErrUserResolution = errors.New("could not resolve the acting user")

	// ErrRecordExists flags a store defect: a delete reported success but
	// the record is still present.
	ErrRecordExists = errors.New("record still exists after delete")

	// ErrUnknownActivity is returned for reminder operations on an
	// activity tag that is neither tracked nor custom.
	ErrUnknownActivity = errors.New("unknown activity")
)
