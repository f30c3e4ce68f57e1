package pdns

import (
	"testing"

	pdnsapi "github.com/joeig/go-powerdns/v3"
	"github.com/stretchr/testify/assert"
)

func TestRRSetLines(t *testing.T) {
	name := "www.example.com."
	rtype := pdnsapi.RRTypeA
	ttl := uint32(300)
	enabled := false
	disabled := true
	first := "10.0.0.1"
	second := "10.0.0.2"
	third := "10.0.0.3"

	rrset := &pdnsapi.RRset{
		Name: &name,
		Type: &rtype,
		TTL:  &ttl,
		Records: []pdnsapi.Record{
			{Content: &first, Disabled: &enabled},
			{Content: &second, Disabled: &disabled},
			{Content: &third},
		},
	}

	lines := rrsetLines(rrset)

	assert.Equal(t, []string{
		"www.example.com.\t300\tIN\tA\t10.0.0.1",
		"www.example.com.\t300\tIN\tA\t10.0.0.3",
	}, lines)
}

func TestRRSetLines_SkipsIncompleteSets(t *testing.T) {
	name := "www.example.com."

	assert.Nil(t, rrsetLines(&pdnsapi.RRset{Name: &name}))
	assert.Nil(t, rrsetLines(&pdnsapi.RRset{}))
}
