package app

import (
	"errors"
)

var (
	// ErrHistoryDisabled is returned when the history command runs
	// without a configured history database.
	ErrHistoryDisabled = errors.New("history is disabled in the configuration")
)
