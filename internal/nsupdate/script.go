package nsupdate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zonevi/zonevi/internal/zone"
)

// Script renders the operations as an nsupdate-style directive script
// for operator review: a zone directive, the server when known, one
// aligned update line per operation and the closing send/answer pair.
// The alignment is cosmetic; the fields are what gets submitted.
func Script(zoneName, server string, port int, ops []zone.Op) string {
	var (
		b                          strings.Builder
		wName, wTTL, wClass, wType int
	)

	fmt.Fprintf(&b, "zone %s\n", zoneName)

	if server != "" {
		fmt.Fprintf(&b, "server %s %d\n", server, port)
	}

	for _, op := range ops {
		wName = max(wName, len(op.Name))
		wClass = max(wClass, len(op.Class))
		wType = max(wType, len(op.Type))

		if op.Action == zone.ActionAdd {
			wTTL = max(wTTL, len(strconv.FormatUint(uint64(op.TTL), 10)))
		}
	}

	for _, op := range ops {
		ttl := ""
		if op.Action == zone.ActionAdd {
			ttl = strconv.FormatUint(uint64(op.TTL), 10)
		}

		fmt.Fprintf(&b, "update %-6s %-*s %-*s %-*s %-*s %s\n",
			op.Action,
			wName, op.Name,
			wTTL, ttl,
			wClass, op.Class,
			wType, op.Type,
			op.Rdata,
		)
	}

	b.WriteString("send\nanswer\n")

	return b.String()
}
