package config

import (
	"github.com/zonevi/zonevi/internal/logger"
	"github.com/zonevi/zonevi/internal/tsig"
)

// Backend names for Server.Backend.
const (
	BackendRFC2136 = "rfc2136"
	BackendPDNS    = "pdns"
)

// Config overall data structure.
type Config struct {
	Server  Server
	Editor  string  // editor command, $VISUAL/$EDITOR/vi when empty
	History History // audit log of applied change sets
	Log     logger.Log
}

// Server describes where zones are transferred from and updated at.
type Server struct {
	Backend string   // rfc2136 (default) or pdns
	Host    string   // authoritative server for transfer and update
	Port    int      // DNS port, defaults to 53
	Key     tsig.Key `toml:"key"` // TSIG key for transfer and update

	// PowerDNS API settings, only used with the pdns backend.
	APIURL  string `toml:"apiUrl"`
	APIKey  string `toml:"apiKey"`
	APIHost string `toml:"apiHost"` // API vhost, defaults to localhost
}

// History settings for the change set audit log.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}
