package session

import (
	"errors"
)

var (
	// ErrEmptyZone is returned when the initial load yields no records,
	// which almost always means the transfer failed upstream.
	ErrEmptyZone = errors.New("zone transfer produced no usable records")
)
