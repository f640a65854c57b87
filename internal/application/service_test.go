package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/bnema/boxtools-cli/internal/ports"
	"github.com/bnema/boxtools-cli/internal/ports/mocks"
	"github.com/bnema/boxtools-cli/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	rootFolder = domain.Item{ID: "0", Name: "All Files", Type: domain.ItemTypeFolder}
	projects   = domain.Item{ID: "100", Name: "Projects", Type: domain.ItemTypeFolder, ParentID: "0", ParentName: "All Files"}
	archive    = domain.Item{ID: "200", Name: "Archive", Type: domain.ItemTypeFolder, ParentID: "0", ParentName: "All Files"}
	notes      = domain.Item{ID: "12", Name: "notes.txt", Type: domain.ItemTypeFile, ParentID: "100", ParentName: "Projects"}
	report     = domain.Item{ID: "13", Name: "report.pdf", Type: domain.ItemTypeFile, ParentID: "100", ParentName: "Projects"}
)

func newTestService(t *testing.T) (*Service, *mocks.MockStorageClient, *state.Session) {
	t.Helper()

	session, err := state.NewSession(state.SessionOptions{})
	require.NoError(t, err)
	client := mocks.NewMockStorageClient(t)
	return NewService(client, session, nil), client, session
}

func mockAnyContext() interface{} {
	return mock.Anything
}

func historyIDs(session *state.Session) []domain.ItemID {
	var ids []domain.ItemID
	for _, item := range session.History().Items() {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestServiceListFeedsHistoryAndRecentFolders(t *testing.T) {
	service, client, session := newTestService(t)
	client.EXPECT().ListFolder(mockAnyContext(), domain.ItemID("100")).Return(projects, []domain.Item{notes, report}, nil)

	folder, entries, err := service.List(context.Background(), "100")
	require.NoError(t, err)
	assert.Equal(t, projects, folder)
	assert.Len(t, entries, 2)

	assert.Equal(t, []domain.ItemID{"100", "12", "13"}, historyIDs(session))
	recent, ok := session.Recent().MostRecent()
	require.True(t, ok)
	assert.Equal(t, domain.ItemID("100"), recent.ID)
	assert.Equal(t, domain.ItemID("0"), recent.ParentID)
	assert.True(t, session.StateDirty())
}

func TestServiceListErrorLeavesSessionUntouched(t *testing.T) {
	service, client, session := newTestService(t)
	client.EXPECT().ListFolder(mockAnyContext(), domain.ItemID("404")).Return(domain.Item{}, nil, domain.ErrItemNotFound)

	_, _, err := service.List(context.Background(), "404")
	require.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Zero(t, session.History().Len())
	assert.False(t, session.StateDirty())
}

func TestServiceUsesKnownItemType(t *testing.T) {
	service, client, session := newTestService(t)
	session.Observe(notes)

	renamed := notes
	renamed.Name = "todo.txt"
	client.EXPECT().Rename(mockAnyContext(), domain.ItemRef{ID: "12", Type: domain.ItemTypeFile}, "todo.txt").Return(renamed, nil)

	got, err := service.Rename(context.Background(), "12", "todo.txt")
	require.NoError(t, err)
	assert.Equal(t, "todo.txt", got.Name)

	cached, ok := session.History().Get("12")
	require.True(t, ok)
	assert.Equal(t, "todo.txt", cached.Name)
}

func TestServiceStatUnknownItemProbes(t *testing.T) {
	service, client, session := newTestService(t)
	client.EXPECT().GetItem(mockAnyContext(), domain.ItemRef{ID: "13"}).Return(report, nil)

	got, err := service.Stat(context.Background(), "13")
	require.NoError(t, err)
	assert.Equal(t, report, got)
	assert.Equal(t, []domain.ItemID{"13"}, historyIDs(session))
}

func TestServiceStatForgetsVanishedItem(t *testing.T) {
	service, client, session := newTestService(t)
	session.Observe(notes)
	client.EXPECT().GetItem(mockAnyContext(), notes.Ref()).Return(domain.Item{}, domain.ErrItemNotFound)

	_, err := service.Stat(context.Background(), "12")
	require.ErrorIs(t, err, domain.ErrItemNotFound)
	_, ok := session.History().Get("12")
	assert.False(t, ok)
}

func TestServiceRemoveForgetsHistoryEntry(t *testing.T) {
	service, client, session := newTestService(t)
	session.Observe(projects, notes)
	client.EXPECT().Delete(mockAnyContext(), projects.Ref(), true).Return(nil)

	require.NoError(t, service.Remove(context.Background(), "100", true))
	assert.Equal(t, []domain.ItemID{"12"}, historyIDs(session))
}

func TestServiceRemoveRefusesRoot(t *testing.T) {
	service, _, _ := newTestService(t)

	err := service.Remove(context.Background(), domain.RootFolderID, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root folder")
}

func TestServiceMoveRejectsKnownFileDestination(t *testing.T) {
	service, _, session := newTestService(t)
	session.Observe(notes, report)

	_, err := service.Move(context.Background(), "12", "13")
	require.ErrorIs(t, err, domain.ErrNotFolder)
}

func TestServiceMoveAndCopyObserveResult(t *testing.T) {
	service, client, session := newTestService(t)
	session.Observe(notes, archive)

	moved := notes
	moved.ParentID, moved.ParentName = "200", "Archive"
	client.EXPECT().Move(mockAnyContext(), notes.Ref(), domain.ItemID("200")).Return(moved, nil)

	copied := domain.Item{ID: "14", Name: "notes copy.txt", Type: domain.ItemTypeFile, ParentID: "100"}
	client.EXPECT().Copy(mockAnyContext(), notes.Ref(), domain.ItemID("100"), "notes copy.txt").Return(copied, nil)

	_, err := service.Move(context.Background(), "12", "200")
	require.NoError(t, err)
	_, err = service.Copy(context.Background(), "12", "100", "notes copy.txt")
	require.NoError(t, err)

	assert.Equal(t, []domain.ItemID{"200", "12", "14"}, historyIDs(session))
	cached, _ := session.History().Get("12")
	assert.Equal(t, "Archive", cached.ParentName)
}

func TestServiceMakeFolder(t *testing.T) {
	service, client, session := newTestService(t)
	created := domain.Item{ID: "300", Name: "New", Type: domain.ItemTypeFolder, ParentID: "0"}
	client.EXPECT().CreateFolder(mockAnyContext(), domain.ItemID("0"), "New").Return(created, nil)

	got, err := service.MakeFolder(context.Background(), "0", "New")
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, 1, session.History().Len())

	_, err = service.MakeFolder(context.Background(), "0", "")
	require.Error(t, err)
}

func TestServiceSearchAndPathObserveItems(t *testing.T) {
	service, client, session := newTestService(t)
	client.EXPECT().Search(mockAnyContext(), ports.SearchQuery{Text: "report", Limit: 10}).Return([]domain.Item{report}, nil)
	client.EXPECT().PathTo(mockAnyContext(), domain.ItemRef{ID: "12"}).Return([]domain.Item{rootFolder, projects, notes}, nil)

	found, err := service.Search(context.Background(), ports.SearchQuery{Text: "report", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []domain.Item{report}, found)

	path, err := service.Path(context.Background(), "12")
	require.NoError(t, err)
	assert.Len(t, path, 3)
	assert.Equal(t, []domain.ItemID{"13", "0", "100", "12"}, historyIDs(session))
}

func TestServiceTreeWalksDepthFirst(t *testing.T) {
	service, client, session := newTestService(t)
	client.EXPECT().ListFolder(mockAnyContext(), domain.ItemID("0")).Return(rootFolder, []domain.Item{projects, archive}, nil)
	client.EXPECT().ListFolder(mockAnyContext(), domain.ItemID("100")).Return(projects, []domain.Item{notes}, nil)
	client.EXPECT().ListFolder(mockAnyContext(), domain.ItemID("200")).Return(archive, nil, nil)

	entries, err := service.Tree(context.Background(), "0", 0)
	require.NoError(t, err)

	require.Len(t, entries, 4)
	assert.Equal(t, TreeEntry{Item: rootFolder, Depth: 0}, entries[0])
	assert.Equal(t, TreeEntry{Item: projects, Depth: 1}, entries[1])
	assert.Equal(t, TreeEntry{Item: notes, Depth: 2}, entries[2])
	assert.Equal(t, TreeEntry{Item: archive, Depth: 1}, entries[3])
	assert.Equal(t, 4, session.History().Len())
	assert.Zero(t, session.Recent().Len(), "a tree walk is not a listing")
}

func TestServiceTreeHonoursDepthLimit(t *testing.T) {
	service, client, _ := newTestService(t)
	client.EXPECT().ListFolder(mockAnyContext(), domain.ItemID("0")).Return(rootFolder, []domain.Item{projects, archive}, nil)

	entries, err := service.Tree(context.Background(), "0", 1)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestServiceTreeKeepsPartialResultOnCancel(t *testing.T) {
	service, client, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())

	client.EXPECT().ListFolder(mockAnyContext(), domain.ItemID("0")).Return(rootFolder, []domain.Item{projects, archive}, nil)
	client.EXPECT().ListFolder(mockAnyContext(), domain.ItemID("100")).
		RunAndReturn(func(context.Context, domain.ItemID) (domain.Item, []domain.Item, error) {
			cancel()
			return domain.Item{}, nil, errors.New("request aborted")
		})

	entries, err := service.Tree(ctx, "0", 0)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []TreeEntry{{Item: rootFolder}, {Item: projects, Depth: 1}}, entries)
}

func TestServiceUserInfo(t *testing.T) {
	service, client, _ := newTestService(t)
	client.EXPECT().CurrentUser(mockAnyContext()).Return(ports.User{ID: "u1", Name: "Ada"}, nil)

	user, err := service.UserInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
}
