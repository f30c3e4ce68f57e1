package zone

import (
	"errors"
)

var (
	// ErrMalformedLine is returned when a zone line does not split into
	// name, TTL, class, type and rdata.
	ErrMalformedLine = errors.New("malformed zone line")
)
