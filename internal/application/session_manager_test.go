package application

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/bnema/boxtools-cli/internal/adapters/repo/aliasfile"
	tomlrepo "github.com/bnema/boxtools-cli/internal/adapters/repo/toml"
	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/bnema/boxtools-cli/internal/ports/mocks"
	"github.com/bnema/boxtools-cli/internal/state"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManagerOpenRestoresSnapshotAndAliases(t *testing.T) {
	states := mocks.NewMockStateRepository(t)
	aliases := mocks.NewMockAliasRepository(t)
	manager := NewSessionManager(states, aliases, state.SessionOptions{HistorySize: 2})

	states.EXPECT().Load(mockAnyContext()).Return(domain.Snapshot{
		History: []domain.Item{projects, notes, report},
		LastID:  "12",
		Recent:  []domain.RecentFolder{domain.RecentFolderFromItem(projects)},
	}, nil)
	aliases.EXPECT().Load(mockAnyContext()).Return([]domain.Alias{{Name: "proj", ID: "100"}}, nil)

	session, err := manager.Open(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.ItemID{"12", "13"}, historyIDs(session))
	last, ok := session.LastID()
	require.True(t, ok)
	assert.Equal(t, domain.ItemID("12"), last)
	_, ok = session.Aliases().Lookup("proj")
	assert.True(t, ok)
	assert.True(t, session.StateDirty(), "truncation on load must be written back")
	assert.False(t, session.AliasesDirty())
}

func TestSessionManagerOpenFailsOnCorruptState(t *testing.T) {
	states := mocks.NewMockStateRepository(t)
	aliases := mocks.NewMockAliasRepository(t)
	manager := NewSessionManager(states, aliases, state.SessionOptions{})

	states.EXPECT().Load(mockAnyContext()).Return(domain.Snapshot{}, tomlrepo.ErrCorruptSnapshot)

	_, err := manager.Open(context.Background())
	require.ErrorIs(t, err, tomlrepo.ErrCorruptSnapshot)
}

func TestSessionManagerSaveSkipsCleanParts(t *testing.T) {
	states := mocks.NewMockStateRepository(t)
	aliases := mocks.NewMockAliasRepository(t)
	manager := NewSessionManager(states, aliases, state.SessionOptions{})

	session, err := state.NewSession(state.SessionOptions{})
	require.NoError(t, err)

	require.NoError(t, manager.Save(context.Background(), session))

	_, err = session.DefineAlias("proj", "100", "")
	require.NoError(t, err)
	aliases.EXPECT().Save(mockAnyContext(), []domain.Alias{{Name: "proj", ID: "100"}}).Return(nil).Once()

	require.NoError(t, manager.Save(context.Background(), session))
	assert.False(t, session.AliasesDirty())
	require.NoError(t, manager.Save(context.Background(), session))
}

func TestSessionManagerSaveKeepsStateMarkedSavedWhenAliasesFail(t *testing.T) {
	states := mocks.NewMockStateRepository(t)
	aliases := mocks.NewMockAliasRepository(t)
	manager := NewSessionManager(states, aliases, state.SessionOptions{})

	session, err := state.NewSession(state.SessionOptions{})
	require.NoError(t, err)
	session.Observe(notes)
	_, err = session.DefineAlias("n", "12", "")
	require.NoError(t, err)

	states.EXPECT().Save(mockAnyContext(), session.Snapshot()).Return(nil).Once()
	aliases.EXPECT().Save(mockAnyContext(), []domain.Alias{{Name: "n", ID: "12"}}).Return(errors.New("disk full")).Once()

	err = manager.Save(context.Background(), session)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save aliases: disk full")
	assert.False(t, session.StateDirty())
	assert.True(t, session.AliasesDirty())
}

func TestSessionManagerSaveWritesAliasesWhenStateFails(t *testing.T) {
	states := mocks.NewMockStateRepository(t)
	aliases := mocks.NewMockAliasRepository(t)
	manager := NewSessionManager(states, aliases, state.SessionOptions{})

	session, err := state.NewSession(state.SessionOptions{})
	require.NoError(t, err)
	session.Observe(notes)
	_, err = session.DefineAlias("n", "12", "")
	require.NoError(t, err)

	states.EXPECT().Save(mockAnyContext(), session.Snapshot()).Return(errors.New("state dir read-only")).Once()
	aliases.EXPECT().Save(mockAnyContext(), []domain.Alias{{Name: "n", ID: "12"}}).Return(nil).Once()

	err = manager.Save(context.Background(), session)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save state: state dir read-only")
	assert.True(t, session.StateDirty())
	assert.False(t, session.AliasesDirty())
}

func TestSessionManagerSaveReportsBothFailures(t *testing.T) {
	states := mocks.NewMockStateRepository(t)
	aliases := mocks.NewMockAliasRepository(t)
	manager := NewSessionManager(states, aliases, state.SessionOptions{})

	session, err := state.NewSession(state.SessionOptions{})
	require.NoError(t, err)
	session.Observe(notes)
	_, err = session.DefineAlias("n", "12", "")
	require.NoError(t, err)

	stateErr := errors.New("state dir read-only")
	aliasErr := errors.New("disk full")
	states.EXPECT().Save(mockAnyContext(), session.Snapshot()).Return(stateErr).Once()
	aliases.EXPECT().Save(mockAnyContext(), []domain.Alias{{Name: "n", ID: "12"}}).Return(aliasErr).Once()

	err = manager.Save(context.Background(), session)
	require.ErrorIs(t, err, stateErr)
	require.ErrorIs(t, err, aliasErr)
	assert.True(t, session.StateDirty())
	assert.True(t, session.AliasesDirty())
}

func TestSessionManagerRoundTripThroughFiles(t *testing.T) {
	dir := t.TempDir()
	v := viper.New()
	v.Set(tomlrepo.StatePathKey, filepath.Join(dir, "state.toml"))
	v.Set(aliasfile.AliasesPathKey, filepath.Join(dir, "aliases.txt"))

	states, err := tomlrepo.NewStateRepository(v)
	require.NoError(t, err)
	aliases, err := aliasfile.NewRepository(v, nil)
	require.NoError(t, err)
	manager := NewSessionManager(states, aliases, state.SessionOptions{})

	session, err := manager.Open(context.Background())
	require.NoError(t, err)
	assert.Zero(t, session.History().Len())

	session.Observe(projects, notes)
	session.ListedFolder(projects)
	session.SetLastID("12")
	_, err = session.DefineAlias("proj", "100", "main project")
	require.NoError(t, err)
	require.NoError(t, manager.Save(context.Background(), session))

	reopened, err := manager.Open(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session.Snapshot(), reopened.Snapshot())
	alias, ok := reopened.Aliases().Lookup("proj")
	require.True(t, ok)
	assert.Equal(t, "main project", alias.Comment)
	assert.False(t, reopened.StateDirty())
}
