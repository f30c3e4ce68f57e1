package nsupdate

import (
	"errors"
)

var (
	// ErrUpdateRefused is returned when the server answers an update
	// transaction with a non-success rcode.
	ErrUpdateRefused = errors.New("dynamic update refused")
)
