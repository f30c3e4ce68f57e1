package config

import (
	"errors"
)

var (
	// ErrServerHostEmpty error if config server.host is empty for the rfc2136 backend.
	ErrServerHostEmpty = errors.New("toml config server.host can not be empty")

	// ErrAPIURLEmpty error if config server.apiUrl is empty for the pdns backend.
	ErrAPIURLEmpty = errors.New("toml config server.apiUrl can not be empty")

	// ErrUnknownBackend error if config server.backend names no known backend.
	ErrUnknownBackend = errors.New("toml config server.backend must be rfc2136 or pdns")

	// ErrHistoryPathEmpty error if history is enabled without a database path.
	ErrHistoryPathEmpty = errors.New("toml config history.path can not be empty when history is enabled")
)
