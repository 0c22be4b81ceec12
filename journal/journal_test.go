package journal_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/joshyorko/sortbot/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalCanBeCalled(t *testing.T) {
	assert.Equal(t, "foo bar", journal.Unify("  foo  \t  \r\n   bar  "))

	sut := journal.Open(filepath.Join(t.TempDir(), "journal", "handoffs.yaml"))

	events, err := sut.Events()
	require.NoError(t, err)
	assert.Empty(t, events)

	require.NoError(t, sut.Post(journal.Event{Event: "handoff", Compact: "AAA/BBB/BBB", Grid: [][]int{{1, 1, 1}, {2, 2, 2}, {2, 2, 2}}}))
	events, err = sut.Events()
	require.NoError(t, err)
	require.Len(t, events, 1)

	require.NoError(t, sut.Post(journal.Event{Event: "restart", Detail: "operator\n pressed   tab"}))
	second, err := sut.Events()
	require.NoError(t, err)
	require.Len(t, second, 2)

	assert.Equal(t, "handoff", second[0].Event)
	assert.Equal(t, [][]int{{1, 1, 1}, {2, 2, 2}, {2, 2, 2}}, second[0].Grid)
	assert.Equal(t, "operator pressed tab", second[1].Detail)

	when, err := second[0].Time()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), when, time.Minute)
}

func TestJournalClear(t *testing.T) {
	sut := journal.Open(filepath.Join(t.TempDir(), "journal", "handoffs.yaml"))
	require.NoError(t, sut.Clear(), "clearing an unwritten journal")

	require.NoError(t, sut.Post(journal.Event{Event: "handoff", Compact: "AAA/BBB/BBB"}))
	events, err := sut.Events()
	require.NoError(t, err)
	require.Len(t, events, 1)

	require.NoError(t, sut.Clear())
	events, err = sut.Events()
	require.NoError(t, err)
	assert.Empty(t, events)
}
