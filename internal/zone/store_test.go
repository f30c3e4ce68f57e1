package zone

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testZone = "dyn.example.com"

func TestStoreLoad(t *testing.T) {
	input := strings.Join([]string{
		"; header comment",
		"",
		"fermi.dyn.example.com.   7200 IN A    127.0.0.1",
		"volta.dyn.example.com.   600  IN AAAA ::1",
		"broken line",
		"dyn.example.com.         3600 IN RRSIG A 8 2 3600 20260901000000 20260801000000 12345 dyn.example.com. abcd==",
	}, "\n")

	s := NewStore()

	count, err := s.Load(testZone, "before", strings.NewReader(input))
	require.NoError(t, err)

	// the comment, the blank, the broken and the RRSIG line all drop out
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, s.Count("before"))
	assert.Equal(t, 0, s.Count("after"))
}

func TestStoreLoad_EmptyInputMeansEmptySnapshot(t *testing.T) {
	s := NewStore()

	count, err := s.Load(testZone, "before", strings.NewReader("; nothing here\n"))
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStoreLoad_MergesIdenticalTuples(t *testing.T) {
	s := NewStore()

	_, err := s.Load(testZone, "before", strings.NewReader("fermi.dyn.example.com. 7200 IN A 127.0.0.1\n"))
	require.NoError(t, err)

	_, err = s.Load(testZone, "after", strings.NewReader("fermi.dyn.example.com. 600 IN A 127.0.0.1\n"))
	require.NoError(t, err)

	// one tuple, two snapshots, two TTLs
	assert.Len(t, s.index, 1)
	assert.Equal(t, 1, s.Count("before"))
	assert.Equal(t, 1, s.Count("after"))
}

func TestStoreRRSet(t *testing.T) {
	input := strings.Join([]string{
		"www.dyn.example.com. 300 IN A 10.0.0.2",
		"www.dyn.example.com. 300 IN A 10.0.0.1",
		"www.dyn.example.com. 300 IN AAAA ::1",
	}, "\n")

	s := NewStore()

	_, err := s.Load(testZone, "after", strings.NewReader(input))
	require.NoError(t, err)

	ttl, rdatas := s.RRSet("after", "www", "IN", "A")
	assert.Equal(t, uint32(300), ttl)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, rdatas)

	_, rdatas = s.RRSet("after", "www", "IN", "MX")
	assert.Empty(t, rdatas)
}

func TestStorePrune(t *testing.T) {
	s := NewStore()

	_, err := s.Load(testZone, "before", strings.NewReader("fermi.dyn.example.com. 7200 IN A 127.0.0.1\n"))
	require.NoError(t, err)

	_, err = s.Load(testZone, "after", strings.NewReader(strings.Join([]string{
		"fermi.dyn.example.com.   7200 IN A 127.0.0.1",
		"lehmann.dyn.example.com. 600  IN A 127.0.0.2",
	}, "\n")))
	require.NoError(t, err)

	s.Prune("before")

	assert.Equal(t, 0, s.Count("before"))
	assert.Equal(t, 2, s.Count("after"))

	// pruning the last snapshot leaves an empty store
	s.Prune("after")
	assert.Empty(t, s.index)
	assert.Empty(t, s.presence)
}
