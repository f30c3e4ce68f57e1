// Package transfer implements the zone-transfer side of zonevi: pulling
// every record of a zone from its authoritative server via AXFR and
// handing them on as plain text lines.
package transfer

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/miekg/dns"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/zonevi/zonevi/internal/tsig"
)

const defaultTimeout = 30 * time.Second

// Client transfers zones from one authoritative server.
type Client struct {
	Server  string
	Port    int
	Timeout time.Duration
	Key     *tsig.Key
}

// New returns a transfer client for the given server.
func New(server string, port int, key *tsig.Key) *Client {
	return &Client{
		Server:  server,
		Port:    port,
		Timeout: defaultTimeout,
		Key:     key,
	}
}

// Fetch runs an AXFR for the zone and returns every transferred record
// as one line of zone text. The transfer carries its own dial and read
// deadlines; ctx is accepted for interface symmetry with the API-based
// transports.
func (c *Client) Fetch(ctx context.Context, zoneName string) ([]string, error) {
	m := new(dns.Msg)
	m.SetAxfr(dns.Fqdn(zoneName))

	t := &dns.Transfer{
		DialTimeout:  c.Timeout,
		ReadTimeout:  c.Timeout,
		WriteTimeout: c.Timeout,
	}

	if c.Key.Configured() {
		t.TsigSecret = c.Key.Secrets()
		c.Key.Sign(m)
	}

	addr := net.JoinHostPort(c.Server, strconv.Itoa(c.Port))

	envelopes, err := t.In(m, addr)
	if err != nil {
		return nil, errors.Wrapf(err, "zone transfer of %s from %s failed", zoneName, addr)
	}

	var lines []string

	for envelope := range envelopes {
		if envelope.Error != nil {
			return nil, errors.Wrapf(envelope.Error, "zone transfer of %s from %s failed", zoneName, addr)
		}

		for _, rr := range envelope.RR {
			lines = append(lines, rr.String())
		}
	}

	log.Debug().
		Str("zone", zoneName).
		Str("server", addr).
		Int("records", len(lines)).
		Msg("zone transfer complete")

	return lines, nil
}
