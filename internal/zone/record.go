package zone

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Record is one resource record as seen in a zone listing. Name is held
// relative to the zone apex, with "@" standing for the apex itself.
type Record struct {
	Name  string
	TTL   uint32
	Class string
	Type  string
	Rdata string
}

// excludedTypes are regenerated by the server and must never reach the
// store, the rendered listing or a diff.
var excludedTypes = map[string]struct{}{
	"RRSIG":     {},
	"NSEC":      {},
	"NSEC3":     {},
	"TSIG":      {},
	"TYPE65534": {},
}

// ParseLine parses one non-empty, non-comment line of zone-transfer text
// into a Record. It returns the record plus the input line rewritten with
// the relative name, for human inspection. A nil record with a nil error
// means the line carries an excluded record type and must be skipped.
func ParseLine(zoneName, line string) (*Record, string, error) {
	var (
		fields             [4]string
		nameStart, nameEnd int
		pos                int
	)

	for i := range fields {
		for pos < len(line) && isSpace(line[pos]) {
			pos++
		}

		start := pos
		for pos < len(line) && !isSpace(line[pos]) {
			pos++
		}

		if pos == start {
			return nil, "", errors.Wrap(ErrMalformedLine, "missing fields")
		}

		fields[i] = line[start:pos]

		if i == 0 {
			nameStart, nameEnd = start, pos
		}
	}

	for pos < len(line) && isSpace(line[pos]) {
		pos++
	}

	rdata := strings.TrimRight(line[pos:], " \t")
	if rdata == "" {
		return nil, "", errors.Wrap(ErrMalformedLine, "missing rdata")
	}

	if _, excluded := excludedTypes[strings.ToUpper(fields[3])]; excluded {
		return nil, "", nil
	}

	ttl, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return nil, "", errors.Wrapf(ErrMalformedLine, "TTL %q is not a number", fields[1])
	}

	rec := &Record{
		Name:  Relative(fields[0], zoneName),
		TTL:   uint32(ttl),
		Class: fields[2],
		Type:  fields[3],
		Rdata: rdata,
	}

	display := line[:nameStart] + rec.Name + line[nameEnd:]

	return rec, display, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// fqdn ensures the name has a trailing dot.
func fqdn(name string) string {
	if !strings.HasSuffix(name, ".") {
		return name + "."
	}

	return name
}

// Relative returns name relative to the zone apex, with "@" standing for
// the apex itself. Names outside the zone pass through unchanged, as do
// names that are already relative.
func Relative(name, zoneName string) string {
	if name == "@" {
		return name
	}

	z := fqdn(zoneName)

	if fqdn(name) == z {
		return "@"
	}

	if strings.HasSuffix(fqdn(name), "."+z) {
		return strings.TrimSuffix(fqdn(name), "."+z)
	}

	return name
}

// Qualify reconstructs the fully qualified name from a relative name and
// the zone it belongs to. It is the inverse of Relative: "@" becomes the
// zone apex, absolute names pass through, anything else gets the zone
// appended.
func Qualify(name, zoneName string) string {
	z := fqdn(zoneName)

	if name == "@" {
		return z
	}

	if strings.HasSuffix(name, ".") {
		return name
	}

	return name + "." + z
}
