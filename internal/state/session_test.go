package state

import (
	"testing"

	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAliasTableDefineLookupUndefine(t *testing.T) {
	table := NewAliasTable()

	_, err := table.Define("proj", "555", "Project Folder")
	require.NoError(t, err)

	alias, ok := table.Lookup("proj")
	require.True(t, ok)
	assert.Equal(t, domain.Alias{Name: "proj", ID: "555", Comment: "Project Folder"}, alias)

	_, err = table.Define("proj", "556", "")
	require.NoError(t, err)
	alias, _ = table.Lookup("proj")
	assert.Equal(t, domain.ItemID("556"), alias.ID)
	assert.Empty(t, alias.Comment)

	require.NoError(t, table.Undefine("proj"))
	require.ErrorIs(t, table.Undefine("proj"), domain.ErrAliasNotFound)
}

func TestAliasTableRejectsInvalidNames(t *testing.T) {
	table := NewAliasTable()

	for _, name := range []string{"", "42", "_tmp", "a%b"} {
		_, err := table.Define(name, "1", "")
		assert.ErrorIs(t, err, domain.ErrInvalidAlias, name)
	}
	assert.Zero(t, table.Len())
}

func TestAliasTableListFilters(t *testing.T) {
	table := NewAliasTable(
		domain.Alias{Name: "work-docs", ID: "1"},
		domain.Alias{Name: "docs", ID: "2"},
		domain.Alias{Name: "photos", ID: "3"},
	)

	names := func(aliases []domain.Alias) []string {
		var out []string
		for _, a := range aliases {
			out = append(out, a.Name)
		}
		return out
	}

	assert.Equal(t, []string{"docs", "photos", "work-docs"}, names(table.List(AliasFilter{})))
	assert.Equal(t, []string{"docs", "work-docs"}, names(table.List(AliasFilter{Match: AliasMatchSubstring, Term: "docs"})))
	assert.Equal(t, []string{"docs"}, names(table.List(AliasFilter{Match: AliasMatchPrefix, Term: "do"})))
}

func TestSessionSnapshotRestoreRoundTrip(t *testing.T) {
	session, err := NewSession(SessionOptions{HistorySize: 10, RecentSize: 3})
	require.NoError(t, err)

	session.Observe(item("1", "a"), item("2", "b"))
	session.ListedFolder(domain.Item{ID: "9", Name: "Docs", Type: domain.ItemTypeFolder, ParentID: "0", ParentName: "All Files"})
	session.SetLastID("2")
	assert.True(t, session.StateDirty())

	snapshot := session.Snapshot()

	restored, err := NewSession(SessionOptions{HistorySize: 10, RecentSize: 3})
	require.NoError(t, err)
	restored.Restore(snapshot)

	assert.Equal(t, snapshot, restored.Snapshot())
	assert.False(t, restored.StateDirty())
	last, ok := restored.LastID()
	require.True(t, ok)
	assert.Equal(t, domain.ItemID("2"), last)
}

func TestSessionRestoreTruncatesToCapacity(t *testing.T) {
	session, err := NewSession(SessionOptions{HistorySize: 2})
	require.NoError(t, err)

	session.Restore(domain.Snapshot{History: []domain.Item{item("1", "a"), item("2", "b"), item("3", "c")}})

	assert.Equal(t, []domain.ItemID{"2", "3"}, ids(session.History().Items()))
	assert.True(t, session.StateDirty())
}

func TestSessionRestoreTrimsRecentFoldersToCapacity(t *testing.T) {
	session, err := NewSession(SessionOptions{RecentSize: 2})
	require.NoError(t, err)

	session.Restore(domain.Snapshot{Recent: []domain.RecentFolder{
		{ID: "1", Name: "a"},
		{ID: "2", Name: "b"},
		{ID: "3", Name: "c"},
	}})

	recent := session.Recent().All()
	require.Len(t, recent, 2)
	assert.Equal(t, domain.ItemID("2"), recent[0].ID)
	assert.Equal(t, domain.ItemID("3"), recent[1].ID)
	assert.True(t, session.StateDirty())
}

func TestSessionRestoreWithinCapacityStaysClean(t *testing.T) {
	session, err := NewSession(SessionOptions{})
	require.NoError(t, err)

	session.Restore(domain.Snapshot{
		History: []domain.Item{item("1", "a")},
		Recent:  []domain.RecentFolder{{ID: "1", Name: "a"}},
	})

	assert.False(t, session.StateDirty())
}

func TestSessionDirtyTracking(t *testing.T) {
	session, err := NewSession(SessionOptions{})
	require.NoError(t, err)
	assert.Equal(t, DefaultHistorySize, session.History().Capacity())

	assert.Zero(t, session.Forget("missing"))
	assert.False(t, session.StateDirty())

	_, err = session.DefineAlias("docs", "1", "")
	require.NoError(t, err)
	assert.True(t, session.AliasesDirty())
	assert.False(t, session.StateDirty())

	session.MarkSaved(true, true)
	assert.False(t, session.AliasesDirty())

	_, ok := session.LastID()
	assert.False(t, ok)
}
