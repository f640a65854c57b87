package toml

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*StateRepository, string) {
	t.Helper()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	config := viper.New()
	config.Set(StatePathKey, statePath)

	repo, err := NewStateRepository(config)
	require.NoError(t, err)
	return repo, statePath
}

func sampleSnapshot() domain.Snapshot {
	return domain.Snapshot{
		History: []domain.Item{
			{ID: "0", Name: "All Files", Type: domain.ItemTypeFolder},
			{ID: "100", Name: "Projects", Type: domain.ItemTypeFolder, ParentID: "0", ParentName: "All Files"},
			{ID: "10", Name: "Report \"Q1\".pdf", Type: domain.ItemTypeFile, ParentID: "100", ParentName: "Projects"},
			{ID: "20", Name: "wiki", Type: domain.ItemTypeWebLink, ParentID: "100", ParentName: "Projects"},
		},
		LastID: "10",
		Recent: []domain.RecentFolder{
			{ID: "0", Name: "All Files"},
			{ID: "100", Name: "Projects", ParentID: "0", ParentName: "All Files"},
		},
	}
}

func TestStateRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	want := sampleSnapshot()

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStateRepositoryResaveIsStable(t *testing.T) {
	t.Parallel()

	repo, statePath := newTestRepository(t)
	require.NoError(t, repo.Save(context.Background(), sampleSnapshot()))
	first, err := os.ReadFile(statePath)
	require.NoError(t, err)

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), loaded))

	second, err := os.ReadFile(statePath)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestStateRepositoryMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.History)
	assert.Empty(t, got.Recent)
	assert.Empty(t, got.LastID)
}

func TestStateRepositoryCorruptFileFailsWholeLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "not toml", content: "history = [[[", want: "decode state file"},
		{name: "newer version", content: "version = 99\n", want: "unsupported state schema version 99"},
		{name: "missing id", content: strings.Join([]string{
			"version = 1",
			"[[history]]",
			"name = \"orphan\"",
			"type = \"file\"",
		}, "\n"), want: "has no id"},
		{name: "unknown type", content: strings.Join([]string{
			"version = 1",
			"[[history]]",
			"id = \"5\"",
			"name = \"thing\"",
			"type = \"symlink\"",
		}, "\n"), want: "has type \"symlink\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, statePath := newTestRepository(t)
			require.NoError(t, os.WriteFile(statePath, []byte(tt.content), 0o600))

			_, err := repo.Load(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestStateRepositoryReadsHandWrittenFile(t *testing.T) {
	t.Parallel()

	repo, statePath := newTestRepository(t)
	require.NoError(t, os.WriteFile(statePath, []byte(strings.Join([]string{
		"last_id = \"7\"",
		"",
		"[[history]]",
		"id = \"7\"",
		"name = \"notes.txt\"",
		"type = \"file\"",
	}, "\n")), 0o600))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ItemID("7"), got.LastID)
	require.Len(t, got.History, 1)
	assert.Equal(t, domain.ItemID(""), got.History[0].ParentID)
}

func TestStateRepositoryWritesPrivateFile(t *testing.T) {
	t.Parallel()

	repo, statePath := newTestRepository(t)
	require.NoError(t, repo.Save(context.Background(), sampleSnapshot()))

	info, err := os.Stat(statePath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStateRepositorySharesLockPerPath(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	config := viper.New()
	config.Set(StatePathKey, statePath)

	first, err := NewStateRepository(config)
	require.NoError(t, err)
	second, err := NewStateRepository(config)
	require.NoError(t, err)
	assert.Same(t, first.mu, second.mu)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, first.Save(context.Background(), sampleSnapshot()))
			_, err := second.Load(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestNewStateRepositoryRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := NewStateRepository(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "state path is empty")
}
