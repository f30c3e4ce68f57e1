// Package nsupdate submits diff operations to the authoritative server
// as one RFC 2136 dynamic update transaction, and renders them as an
// nsupdate-style script for operator review.
package nsupdate

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/miekg/dns"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/zonevi/zonevi/internal/tsig"
	"github.com/zonevi/zonevi/internal/zone"
)

const defaultTimeout = 30 * time.Second

// Client submits dynamic updates to one authoritative server.
type Client struct {
	Server  string
	Port    int
	Timeout time.Duration
	Key     *tsig.Key
}

// New returns an update client for the given server.
func New(server string, port int, key *tsig.Key) *Client {
	return &Client{
		Server:  server,
		Port:    port,
		Timeout: defaultTimeout,
		Key:     key,
	}
}

// Apply sends all operations as a single update transaction. Deletes
// remove one specific record (name, class, type and rdata), adds insert
// the record with its TTL; the server applies the sections in order, so
// a TTL change arrives as delete-then-add. The state and after
// arguments are unused here; they exist for transports that need to
// rebuild whole record sets.
func (c *Client) Apply(ctx context.Context, zoneName string, ops []zone.Op, _ *zone.Store, _ zone.Snapshot) error {
	if len(ops) == 0 {
		return nil
	}

	m, err := buildUpdate(zoneName, ops)
	if err != nil {
		return err
	}

	client := &dns.Client{Net: "tcp", Timeout: c.Timeout}

	if c.Key.Configured() {
		client.TsigSecret = c.Key.Secrets()
		c.Key.Sign(m)
	}

	addr := net.JoinHostPort(c.Server, strconv.Itoa(c.Port))

	reply, _, err := client.ExchangeContext(ctx, m, addr)
	if err != nil {
		return errors.Wrapf(err, "dynamic update of %s against %s failed", zoneName, addr)
	}

	if reply.Rcode != dns.RcodeSuccess {
		return errors.Wrapf(ErrUpdateRefused, "server answered %s", dns.RcodeToString[reply.Rcode])
	}

	log.Info().
		Str("zone", zoneName).
		Str("server", addr).
		Int("operations", len(ops)).
		Msg("dynamic update accepted")

	return nil
}

// buildUpdate assembles the update message, keeping the operations in
// diff order within the update section.
func buildUpdate(zoneName string, ops []zone.Op) (*dns.Msg, error) {
	m := new(dns.Msg)
	m.SetUpdate(dns.Fqdn(zoneName))

	for _, op := range ops {
		rr, err := dns.NewRR(fmt.Sprintf("%s %d %s %s %s", op.Name, op.TTL, op.Class, op.Type, op.Rdata))
		if err != nil {
			return nil, errors.Wrapf(err, "cannot build update record for %s %s %s", op.Name, op.Type, op.Rdata)
		}

		switch op.Action {
		case zone.ActionDelete:
			m.Remove([]dns.RR{rr})
		case zone.ActionAdd:
			m.Insert([]dns.RR{rr})
		}
	}

	return m, nil
}
