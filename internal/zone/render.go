package zone

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Render writes the tuples present under the given snapshot as editable
// zone text: a header comment naming the zone, then one record per line
// in natural order, with the name, TTL, class and type columns padded to
// the widest value seen. The output parses back through Load without
// loss.
func (s *Store) Render(w io.Writer, zoneName string, snap Snapshot) error {
	type row struct {
		name  string
		ttl   string
		class string
		rtype string
		rdata string
	}

	var (
		rows                       []row
		wName, wTTL, wClass, wType int
	)

	for _, t := range s.index {
		ttl, ok := s.presence[t][snap]
		if !ok {
			continue
		}

		r := row{
			name:  t.name,
			ttl:   strconv.FormatUint(uint64(ttl), 10),
			class: t.class,
			rtype: t.rtype,
			rdata: t.rdata,
		}

		wName = max(wName, len(r.name))
		wTTL = max(wTTL, len(r.ttl))
		wClass = max(wClass, len(r.class))
		wType = max(wType, len(r.rtype))

		rows = append(rows, r)
	}

	if _, err := fmt.Fprintf(w, "; zone %s (%d records)\n", fqdn(zoneName), len(rows)); err != nil {
		return errors.Wrap(err, "failed to write zone listing")
	}

	for _, r := range rows {
		_, err := fmt.Fprintf(w, "%-*s %-*s %-*s %-*s %s\n",
			wName, r.name,
			wTTL, r.ttl,
			wClass, r.class,
			wType, r.rtype,
			r.rdata,
		)
		if err != nil {
			return errors.Wrap(err, "failed to write zone listing")
		}
	}

	return nil
}
