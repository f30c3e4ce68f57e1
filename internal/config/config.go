// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/BurntSushi/toml"
)

const (
	defaultDNSPort = 53
	defaultAPIHost = "localhost"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv("ZONEVI_CONFIG_JSON")

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate the minimal settings a session cannot run without, and fill
// in the defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Server.Backend == "" {
		c.Server.Backend = BackendRFC2136
	}

	switch c.Server.Backend {
	case BackendRFC2136:
		if c.Server.Host == "" {
			return errors.Wrap(ErrServerHostEmpty, invalidErrMessage)
		}

		if c.Server.Port == 0 {
			c.Server.Port = defaultDNSPort
		}
	case BackendPDNS:
		if c.Server.APIURL == "" {
			return errors.Wrap(ErrAPIURLEmpty, invalidErrMessage)
		}

		if c.Server.APIHost == "" {
			c.Server.APIHost = defaultAPIHost
		}
	default:
		return errors.Wrapf(ErrUnknownBackend, "%s: %s", invalidErrMessage, c.Server.Backend)
	}

	if c.History.Enabled && c.History.Path == "" {
		return errors.Wrap(ErrHistoryPathEmpty, invalidErrMessage)
	}

	return nil
}
