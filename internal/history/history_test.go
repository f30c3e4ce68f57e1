package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLog(t *testing.T) *Log {
	t.Helper()

	l, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)

	return l
}

func TestRecordAndList(t *testing.T) {
	l := openTestLog(t)

	require.NoError(t, l.Record(&ChangeSet{
		Zone:    "dyn.example.com",
		Adds:    2,
		Deletes: 1,
		Script:  "zone dyn.example.com\nsend\nanswer\n",
	}))

	sets, err := l.List("", 0)
	require.NoError(t, err)
	require.Len(t, sets, 1)

	assert.Equal(t, "dyn.example.com", sets[0].Zone)
	assert.Equal(t, 2, sets[0].Adds)
	assert.Equal(t, 1, sets[0].Deletes)
	assert.False(t, sets[0].AppliedAt.IsZero())
}

func TestList_FilterAndOrder(t *testing.T) {
	l := openTestLog(t)

	base := time.Now().Add(-time.Hour)

	require.NoError(t, l.Record(&ChangeSet{Zone: "a.example.com", AppliedAt: base}))
	require.NoError(t, l.Record(&ChangeSet{Zone: "b.example.com", AppliedAt: base.Add(time.Minute)}))
	require.NoError(t, l.Record(&ChangeSet{Zone: "a.example.com", AppliedAt: base.Add(2 * time.Minute)}))

	sets, err := l.List("a.example.com", 0)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.True(t, sets[0].AppliedAt.After(sets[1].AppliedAt))

	sets, err = l.List("", 1)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, "a.example.com", sets[0].Zone)
}
