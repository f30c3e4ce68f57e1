package zone

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	rec, display, err := ParseLine("dyn.example.com", "fermi.dyn.example.com.\t7200\tIN\tA\t127.0.0.1")
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "fermi", rec.Name)
	assert.Equal(t, uint32(7200), rec.TTL)
	assert.Equal(t, "IN", rec.Class)
	assert.Equal(t, "A", rec.Type)
	assert.Equal(t, "127.0.0.1", rec.Rdata)
	assert.Equal(t, "fermi\t7200\tIN\tA\t127.0.0.1", display)
}

func TestParseLine_RdataKeepsWhitespace(t *testing.T) {
	rec, _, err := ParseLine("example.com", "volta.example.com. 2419200 IN SSHFP 3 1 DC66C4ED")
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "SSHFP", rec.Type)
	assert.Equal(t, "3 1 DC66C4ED", rec.Rdata)
}

func TestParseLine_Apex(t *testing.T) {
	rec, _, err := ParseLine("example.com", "example.com. 3600 IN MX 10 mail.example.com.")
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "@", rec.Name)
}

func TestParseLine_Malformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "too few fields", line: "foo.example.com. 3600 IN"},
		{name: "no rdata", line: "foo.example.com. 3600 IN A"},
		{name: "trailing space only", line: "foo.example.com. 3600 IN A   "},
		{name: "ttl not numeric", line: "foo.example.com. soon IN A 127.0.0.1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, _, err := ParseLine("example.com", tc.line)
			assert.Nil(t, rec)
			assert.True(t, errors.Is(err, ErrMalformedLine))
		})
	}
}

func TestParseLine_ExcludedTypes(t *testing.T) {
	lines := []string{
		"example.com. 3600 IN RRSIG A 8 2 3600 20260901000000 20260801000000 12345 example.com. abcdef==",
		"example.com. 3600 IN NSEC a.example.com. A RRSIG NSEC",
		"example.com. 3600 IN NSEC3 1 0 10 ABCD a9b8c7 A RRSIG",
		"example.com. 0 ANY TSIG hmac-sha256. 1234 300 32 abcd 12345 0 0",
		"example.com. 0 IN TYPE65534 \\# 5 04abcdef01",
	}

	for _, line := range lines {
		rec, _, err := ParseLine("example.com", line)
		assert.NoError(t, err, line)
		assert.Nil(t, rec, line)
	}
}

func TestRelative(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "apex absolute", in: "dyn.example.com.", expected: "@"},
		{name: "apex no dot", in: "dyn.example.com", expected: "@"},
		{name: "apex sentinel is idempotent", in: "@", expected: "@"},
		{name: "in zone", in: "fermi.dyn.example.com.", expected: "fermi"},
		{name: "already relative is idempotent", in: "fermi", expected: "fermi"},
		{name: "out of zone stays absolute", in: "host.other.example.net.", expected: "host.other.example.net."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Relative(tc.in, "dyn.example.com"))
		})
	}
}

func TestQualify(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "apex", in: "@", expected: "dyn.example.com."},
		{name: "relative", in: "fermi", expected: "fermi.dyn.example.com."},
		{name: "absolute stays unchanged", in: "host.other.example.net.", expected: "host.other.example.net."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Qualify(tc.in, "dyn.example.com"))
		})
	}
}

func TestRelativeQualifyRoundTrip(t *testing.T) {
	for _, name := range []string{"@", "fermi", "a.b", "host.other.example.net."} {
		assert.Equal(t, name, Relative(Qualify(name, "dyn.example.com"), "dyn.example.com"))
	}
}
