package reporting

import "github.com/pkg/errors"

var (
	// ErrMissingParameter means a required request parameter was absent; the
	// request fails before any upstream call is attempted.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrUnknownLocation means the location token maps to no known location.
	ErrUnknownLocation = errors.New("unknown location token")

	// ErrInvalidBusinessDate means the business_date parameter was present
	// but not a valid YYYY-MM-DD date.
	ErrInvalidBusinessDate = errors.New("invalid business date")
)
