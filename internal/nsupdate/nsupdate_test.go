package nsupdate

import (
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonevi/zonevi/internal/zone"
)

func TestBuildUpdate(t *testing.T) {
	ops := []zone.Op{
		{Action: zone.ActionDelete, Name: "fermi.dyn.example.com.", Class: "IN", Type: "A", Rdata: "127.0.0.1"},
		{Action: zone.ActionAdd, Name: "lehmann.dyn.example.com.", TTL: 600, Class: "IN", Type: "A", Rdata: "127.0.0.1"},
	}

	m, err := buildUpdate("dyn.example.com", ops)
	require.NoError(t, err)

	assert.Equal(t, dns.OpcodeUpdate, m.Opcode)
	require.Len(t, m.Question, 1)
	assert.Equal(t, "dyn.example.com.", m.Question[0].Name)

	require.Len(t, m.Ns, 2)

	// delete of a specific record travels as class NONE with TTL 0
	del := m.Ns[0].Header()
	assert.Equal(t, uint16(dns.ClassNONE), del.Class)
	assert.Equal(t, uint32(0), del.Ttl)
	assert.Equal(t, "fermi.dyn.example.com.", del.Name)

	add := m.Ns[1].Header()
	assert.Equal(t, uint16(dns.ClassINET), add.Class)
	assert.Equal(t, uint32(600), add.Ttl)
	assert.Equal(t, "lehmann.dyn.example.com.", add.Name)
}

func TestBuildUpdate_BadRdata(t *testing.T) {
	ops := []zone.Op{
		{Action: zone.ActionAdd, Name: "x.dyn.example.com.", TTL: 600, Class: "IN", Type: "A", Rdata: "not-an-address"},
	}

	_, err := buildUpdate("dyn.example.com", ops)
	assert.Error(t, err)
}
