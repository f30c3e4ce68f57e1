// Package zone implements the in-memory zone model behind zonevi: parsing
// zone-transfer text into records, holding before/after snapshots of a
// zone, rendering a snapshot back to editable text and diffing two
// snapshots into the minimal list of add/delete operations.
package zone

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Snapshot labels one point-in-time capture of a zone held in a Store.
type Snapshot string

// tuple identifies one record independent of its TTL.
type tuple struct {
	name  string
	class string
	rtype string
	rdata string
}

// compare orders tuples naturally by name, class, type and rdata, in
// that precedence. This is the iteration order of both Render and Diff.
func (t tuple) compare(o tuple) int {
	if c := naturalCompare(t.name, o.name); c != 0 {
		return c
	}

	if c := naturalCompare(t.class, o.class); c != 0 {
		return c
	}

	if c := naturalCompare(t.rtype, o.rtype); c != 0 {
		return c
	}

	return naturalCompare(t.rdata, o.rdata)
}

// Store holds every record tuple seen across the snapshots of one
// editing session, with a per-snapshot TTL per tuple. A tuple is present
// in a snapshot iff its presence map carries that snapshot's key.
type Store struct {
	presence map[tuple]map[Snapshot]uint32
	index    []tuple // kept sorted in tuple.compare order
}

// NewStore returns an empty store for one editing session.
func NewStore() *Store {
	return &Store{
		presence: make(map[tuple]map[Snapshot]uint32),
	}
}

// add records one parsed record under the given snapshot.
func (s *Store) add(r *Record, snap Snapshot) {
	t := tuple{name: r.Name, class: r.Class, rtype: r.Type, rdata: r.Rdata}

	p, ok := s.presence[t]
	if !ok {
		p = make(map[Snapshot]uint32)
		s.presence[t] = p

		i := sort.Search(len(s.index), func(i int) bool {
			return s.index[i].compare(t) >= 0
		})

		s.index = append(s.index, tuple{})
		copy(s.index[i+1:], s.index[i:])
		s.index[i] = t
	}

	p[snap] = r.TTL
}

// Load reads zone-transfer text line by line and files every record
// under the given snapshot key. Blank lines and ";" comments are
// skipped, malformed lines are logged with their line number and
// skipped, and excluded record types never enter the store. The returned
// count is the number of records actually inserted; callers must treat
// zero as an empty or failed transfer.
func (s *Store) Load(zoneName string, snap Snapshot, r io.Reader) (int, error) {
	var (
		count   int
		lineNum int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			continue
		}

		rec, _, err := ParseLine(zoneName, line)
		if err != nil {
			log.Warn().
				Str("zone", zoneName).
				Int("line", lineNum).
				Str("text", line).
				Err(err).
				Msg("skipping unparseable zone line")

			continue
		}

		if rec == nil {
			continue
		}

		s.add(rec, snap)
		count++
	}

	if err := scanner.Err(); err != nil {
		return count, errors.Wrap(err, "failed to read zone lines")
	}

	return count, nil
}

// Count returns how many tuples are present under the given snapshot.
func (s *Store) Count(snap Snapshot) int {
	var n int

	for _, p := range s.presence {
		if _, ok := p[snap]; ok {
			n++
		}
	}

	return n
}

// RRSet collects the TTL and rdata values of every tuple with the given
// name, class and type present under the snapshot. The rdata values come
// back in natural order. Backends that speak in whole record sets (the
// PowerDNS API) use this to build replacement sets from diff output.
func (s *Store) RRSet(snap Snapshot, name, class, rtype string) (uint32, []string) {
	var (
		ttl    uint32
		rdatas []string
	)

	for _, t := range s.index {
		if t.name != name || t.class != class || t.rtype != rtype {
			continue
		}

		if v, ok := s.presence[t][snap]; ok {
			ttl = v
			rdatas = append(rdatas, t.rdata)
		}
	}

	return ttl, rdatas
}

// Prune drops one snapshot's presence entries from every tuple, after a
// confirmed submission. Tuples left with no snapshot at all are removed
// from the store entirely.
func (s *Store) Prune(snap Snapshot) {
	live := s.index[:0]

	for _, t := range s.index {
		p := s.presence[t]
		delete(p, snap)

		if len(p) == 0 {
			delete(s.presence, t)
			continue
		}

		live = append(live, t)
	}

	s.index = live
}
