// Package pdns is the PowerDNS API transport: it fetches a zone's
// records through the HTTP API instead of AXFR and applies diff
// operations as record-set changes instead of a dynamic update.
package pdns

import (
	"context"
	"fmt"
	"time"

	pdnsapi "github.com/joeig/go-powerdns/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/zonevi/zonevi/internal/zone"
)

const defaultTimeout = 30 * time.Second

// Client wraps the PowerDNS API client for one server.
type Client struct {
	api     *pdnsapi.Client
	timeout time.Duration
}

// New returns a client for the given API endpoint.
func New(apiURL, vhost, apiKey string) *Client {
	return &Client{
		api:     pdnsapi.New(apiURL, vhost, pdnsapi.WithAPIKey(apiKey)),
		timeout: defaultTimeout,
	}
}

// Fetch lists the zone through the API and returns its enabled records
// as zone text lines, one per record.
func (c *Client) Fetch(ctx context.Context, zoneName string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	z, err := c.api.Zones.Get(ctx, zoneName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch zone %s from the PowerDNS API", zoneName)
	}

	var lines []string

	for _, rrset := range z.RRsets {
		lines = append(lines, rrsetLines(&rrset)...)
	}

	log.Debug().
		Str("zone", zoneName).
		Int("records", len(lines)).
		Msg("zone fetched from PowerDNS API")

	return lines, nil
}

// rrsetLines flattens one RRset into parser lines. Disabled records are
// left out; they are not part of the served zone.
func rrsetLines(rrset *pdnsapi.RRset) []string {
	if rrset.Name == nil || rrset.Type == nil {
		return nil
	}

	var ttl uint32
	if rrset.TTL != nil {
		ttl = *rrset.TTL
	}

	var lines []string

	for _, rec := range rrset.Records {
		if rec.Content == nil {
			continue
		}

		if rec.Disabled != nil && *rec.Disabled {
			continue
		}

		lines = append(lines, fmt.Sprintf("%s\t%d\tIN\t%s\t%s", *rrset.Name, ttl, string(*rrset.Type), *rec.Content))
	}

	return lines
}

// Apply replays the diff against the API. PowerDNS patches whole record
// sets, so the operations are regrouped by name and type and each
// touched set is replaced with its content under the after snapshot, or
// deleted when nothing is left.
func (c *Client) Apply(ctx context.Context, zoneName string, ops []zone.Op, state *zone.Store, after zone.Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	type setKey struct {
		name  string
		class string
		rtype string
	}

	var (
		order []setKey
		seen  = make(map[setKey]struct{})
	)

	for _, op := range ops {
		k := setKey{
			name:  zone.Relative(op.Name, zoneName),
			class: op.Class,
			rtype: op.Type,
		}

		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		order = append(order, k)
	}

	for _, k := range order {
		name := zone.Qualify(k.name, zoneName)
		ttl, rdatas := state.RRSet(after, k.name, k.class, k.rtype)

		if len(rdatas) == 0 {
			if err := c.api.Records.Delete(ctx, zoneName, name, pdnsapi.RRType(k.rtype)); err != nil {
				return errors.Wrapf(err, "failed to delete record set %s %s", name, k.rtype)
			}

			continue
		}

		if err := c.api.Records.Change(ctx, zoneName, name, pdnsapi.RRType(k.rtype), ttl, rdatas); err != nil {
			return errors.Wrapf(err, "failed to replace record set %s %s", name, k.rtype)
		}
	}

	log.Info().
		Str("zone", zoneName).
		Int("record_sets", len(order)).
		Msg("zone updated through PowerDNS API")

	return nil
}
