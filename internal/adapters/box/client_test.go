package box

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/bnema/boxtools-cli/internal/ports"
	"github.com/bnema/boxtools-cli/internal/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Options{
		BaseURL:    server.URL + "/2.0",
		HTTPClient: server.Client(),
		Retry:      retry.Config{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 2 * time.Millisecond, Multiplier: 2},
	})
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func notFound(t *testing.T, w http.ResponseWriter) {
	writeJSON(t, w, http.StatusNotFound, map[string]any{
		"type": "error", "status": 404, "code": "not_found", "message": "Not Found",
	})
}

func TestGetItemProbesTypes(t *testing.T) {
	var paths []string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path != "/2.0/folders/55" {
			notFound(t, w)
			return
		}
		assert.Equal(t, itemFields, r.URL.Query().Get("fields"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"type": "folder", "id": "55", "name": "Reports",
			"parent": map[string]any{"type": "folder", "id": "0", "name": "All Files"},
		})
	}))

	got, err := client.GetItem(context.Background(), domain.ItemRef{ID: "55"})
	require.NoError(t, err)
	assert.Equal(t, domain.Item{ID: "55", Name: "Reports", Type: domain.ItemTypeFolder, ParentID: "0", ParentName: "All Files"}, got)
	assert.Equal(t, []string{"/2.0/files/55", "/2.0/folders/55"}, paths)
}

func TestGetItemNotFoundAfterProbing(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		notFound(t, w)
	}))

	_, err := client.GetItem(context.Background(), domain.ItemRef{ID: "404"})
	require.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestGetItemRootSkipsProbe(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2.0/folders/0", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"type": "folder", "id": "0", "name": "All Files", "parent": nil})
	}))

	got, err := client.GetItem(context.Background(), domain.ItemRef{ID: "0"})
	require.NoError(t, err)
	assert.Empty(t, got.ParentID)
}

func TestListFolderFollowsPagination(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/2.0/folders/7":
			writeJSON(t, w, http.StatusOK, map[string]any{"type": "folder", "id": "7", "name": "Docs"})
		case "/2.0/folders/7/items":
			if r.URL.Query().Get("offset") == "0" {
				writeJSON(t, w, http.StatusOK, map[string]any{
					"total_count": 2,
					"entries":     []map[string]any{{"type": "file", "id": "71", "name": "a.txt"}},
				})
				return
			}
			writeJSON(t, w, http.StatusOK, map[string]any{
				"total_count": 2,
				"entries":     []map[string]any{{"type": "web_link", "id": "72", "name": "wiki"}},
			})
		default:
			notFound(t, w)
		}
	}))

	folder, entries, err := client.ListFolder(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "Docs", folder.Name)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.Item{ID: "71", Name: "a.txt", Type: domain.ItemTypeFile, ParentID: "7", ParentName: "Docs"}, entries[0])
	assert.Equal(t, domain.ItemTypeWebLink, entries[1].Type)
}

func TestRetriesRateLimitedRequests(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			writeJSON(t, w, http.StatusTooManyRequests, map[string]any{"status": 429, "code": "rate_limit_exceeded"})
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"id": "u1", "name": "Ada", "login": "ada@example.com", "space_used": 10, "space_amount": 100})
	}))

	user, err := client.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ports.User{ID: "u1", Name: "Ada", Login: "ada@example.com", SpaceUsed: 10, SpaceTotal: 100}, user)
	assert.Equal(t, int32(2), calls.Load())
}

func TestUnauthorizedIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{"status": 401, "message": "token expired"})
	}))

	_, err := client.CurrentUser(context.Background())
	require.ErrorIs(t, err, domain.ErrNotAuthorized)
	assert.Contains(t, err.Error(), "token expired")
	assert.Equal(t, int32(1), calls.Load())
}

func TestMoveSendsParentAndUsesKnownType(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/2.0/files/10", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"parent":{"id":"99"}}`, string(body))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"type": "file", "id": "10", "name": "a.txt",
			"parent": map[string]any{"type": "folder", "id": "99", "name": "Archive"},
		})
	}))

	got, err := client.Move(context.Background(), domain.ItemRef{ID: "10", Type: domain.ItemTypeFile}, "99")
	require.NoError(t, err)
	assert.Equal(t, domain.ItemID("99"), got.ParentID)
}

func TestDeleteFolderRecursive(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/2.0/folders/5", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("recursive"))
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.Delete(context.Background(), domain.ItemRef{ID: "5", Type: domain.ItemTypeFolder}, true))
}

func TestCopyRejectsWebLinks(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := client.Copy(context.Background(), domain.ItemRef{ID: "5", Type: domain.ItemTypeWebLink}, "0", "")
	require.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestPathToBuildsAncestorChain(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathFields, r.URL.Query().Get("fields"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"type": "file", "id": "10", "name": "a.txt",
			"parent": map[string]any{"type": "folder", "id": "7", "name": "Docs"},
			"path_collection": map[string]any{
				"total_count": 2,
				"entries": []map[string]any{
					{"type": "folder", "id": "0", "name": "All Files"},
					{"type": "folder", "id": "7", "name": "Docs"},
				},
			},
		})
	}))

	path, err := client.PathTo(context.Background(), domain.ItemRef{ID: "10", Type: domain.ItemTypeFile})
	require.NoError(t, err)
	require.Len(t, path, 3)
	assert.Equal(t, domain.ItemID("0"), path[0].ID)
	assert.Equal(t, domain.ItemID("0"), path[1].ParentID)
	assert.Equal(t, "All Files", path[1].ParentName)
	assert.Equal(t, "a.txt", path[2].Name)
}

func TestSearchPassesTypeAndLimit(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2.0/search", r.URL.Path)
		assert.Equal(t, "report", r.URL.Query().Get("query"))
		assert.Equal(t, "file", r.URL.Query().Get("type"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"total_count": 5,
			"entries": []map[string]any{
				{"type": "file", "id": "1", "name": "report-1.pdf"},
				{"type": "file", "id": "2", "name": "report-2.pdf"},
			},
		})
	}))

	got, err := client.Search(context.Background(), ports.SearchQuery{Text: "report", Type: domain.ItemTypeFile, Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.ItemID("2"), got[1].ID)
}
