package box

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/bnema/boxtools-cli/internal/ports"
)

type miniItem struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

type itemJSON struct {
	Type           string    `json:"type"`
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Parent         *miniItem `json:"parent"`
	PathCollection *pathJSON `json:"path_collection,omitempty"`
}

type pathJSON struct {
	TotalCount int        `json:"total_count"`
	Entries    []miniItem `json:"entries"`
}

type collectionJSON struct {
	TotalCount int        `json:"total_count"`
	Offset     int        `json:"offset"`
	Limit      int        `json:"limit"`
	Entries    []itemJSON `json:"entries"`
}

type parentRef struct {
	ID string `json:"id"`
}

func (i itemJSON) toDomain() domain.Item {
	item := domain.Item{
		ID:   domain.ItemID(i.ID),
		Name: i.Name,
		Type: domain.ItemType(i.Type),
	}
	if i.Parent != nil {
		item.ParentID = domain.ItemID(i.Parent.ID)
		item.ParentName = i.Parent.Name
	}
	return item
}

// endpoint maps an item type to its API collection.
func endpoint(t domain.ItemType) (string, error) {
	switch t {
	case domain.ItemTypeFile:
		return "/files", nil
	case domain.ItemTypeFolder:
		return "/folders", nil
	case domain.ItemTypeWebLink:
		return "/web_links", nil
	default:
		return "", fmt.Errorf("unknown item type %q", t)
	}
}

var probeOrder = []domain.ItemType{domain.ItemTypeFile, domain.ItemTypeFolder, domain.ItemTypeWebLink}

func (c *Client) GetItem(ctx context.Context, ref domain.ItemRef) (domain.Item, error) {
	raw, err := c.getItem(ctx, ref, itemFields)
	if err != nil {
		return domain.Item{}, err
	}
	return raw.toDomain(), nil
}

func (c *Client) getItem(ctx context.Context, ref domain.ItemRef, fields string) (itemJSON, error) {
	if ref.Type == "" && ref.ID == domain.RootFolderID {
		ref.Type = domain.ItemTypeFolder
	}
	if ref.Type != "" {
		return c.getTyped(ctx, ref, fields)
	}

	for _, t := range probeOrder {
		raw, err := c.getTyped(ctx, domain.ItemRef{ID: ref.ID, Type: t}, fields)
		if err == nil {
			return raw, nil
		}
		if !errors.Is(err, domain.ErrItemNotFound) {
			return itemJSON{}, err
		}
	}

	return itemJSON{}, fmt.Errorf("item %s: %w", ref.ID, domain.ErrItemNotFound)
}

func (c *Client) getTyped(ctx context.Context, ref domain.ItemRef, fields string) (itemJSON, error) {
	base, err := endpoint(ref.Type)
	if err != nil {
		return itemJSON{}, err
	}

	var raw itemJSON
	err = c.do(ctx, request{
		method: http.MethodGet,
		path:   base + "/" + url.PathEscape(string(ref.ID)),
		query:  url.Values{"fields": {fields}},
	}, &raw)
	if err != nil {
		return itemJSON{}, fmt.Errorf("get %s: %w", ref, err)
	}
	if raw.Type == "" {
		raw.Type = string(ref.Type)
	}
	return raw, nil
}

// ListFolder returns the folder and all of its entries, following pagination.
func (c *Client) ListFolder(ctx context.Context, folderID domain.ItemID) (domain.Item, []domain.Item, error) {
	folderRaw, err := c.getTyped(ctx, domain.ItemRef{ID: folderID, Type: domain.ItemTypeFolder}, itemFields)
	if err != nil {
		return domain.Item{}, nil, err
	}
	folder := folderRaw.toDomain()

	var entries []domain.Item
	for offset := 0; ; {
		var page collectionJSON
		err := c.do(ctx, request{
			method: http.MethodGet,
			path:   "/folders/" + url.PathEscape(string(folderID)) + "/items",
			query: url.Values{
				"fields": {itemFields},
				"limit":  {strconv.Itoa(listPageSize)},
				"offset": {strconv.Itoa(offset)},
			},
		}, &page)
		if err != nil {
			return folder, entries, fmt.Errorf("list folder %s: %w", folderID, err)
		}

		for _, raw := range page.Entries {
			item := raw.toDomain()
			if item.ParentID == "" {
				item.ParentID = folder.ID
				item.ParentName = folder.Name
			}
			entries = append(entries, item)
		}

		offset += len(page.Entries)
		if len(page.Entries) == 0 || offset >= page.TotalCount {
			break
		}
	}

	return folder, entries, nil
}

func (c *Client) Search(ctx context.Context, q ports.SearchQuery) ([]domain.Item, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	values := url.Values{
		"query":  {q.Text},
		"fields": {itemFields},
		"limit":  {strconv.Itoa(min(limit, 200))},
	}
	if q.Type != "" {
		values.Set("type", string(q.Type))
	}

	var items []domain.Item
	for offset := 0; len(items) < limit; {
		values.Set("offset", strconv.Itoa(offset))

		var page collectionJSON
		if err := c.do(ctx, request{method: http.MethodGet, path: "/search", query: values}, &page); err != nil {
			return items, fmt.Errorf("search %q: %w", q.Text, err)
		}
		for _, raw := range page.Entries {
			items = append(items, raw.toDomain())
		}

		offset += len(page.Entries)
		if len(page.Entries) == 0 || offset >= page.TotalCount {
			break
		}
	}

	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (c *Client) PathTo(ctx context.Context, ref domain.ItemRef) ([]domain.Item, error) {
	raw, err := c.getItem(ctx, ref, pathFields)
	if err != nil {
		return nil, err
	}

	var path []domain.Item
	if raw.PathCollection != nil {
		for i, entry := range raw.PathCollection.Entries {
			item := domain.Item{ID: domain.ItemID(entry.ID), Name: entry.Name, Type: domain.ItemTypeFolder}
			if i > 0 {
				item.ParentID = path[i-1].ID
				item.ParentName = path[i-1].Name
			}
			path = append(path, item)
		}
	}

	return append(path, raw.toDomain()), nil
}

func (c *Client) Move(ctx context.Context, ref domain.ItemRef, parentID domain.ItemID) (domain.Item, error) {
	return c.update(ctx, ref, map[string]any{"parent": parentRef{ID: string(parentID)}})
}

func (c *Client) Rename(ctx context.Context, ref domain.ItemRef, name string) (domain.Item, error) {
	return c.update(ctx, ref, map[string]any{"name": name})
}

func (c *Client) update(ctx context.Context, ref domain.ItemRef, body map[string]any) (domain.Item, error) {
	ref, err := c.typed(ctx, ref)
	if err != nil {
		return domain.Item{}, err
	}
	base, err := endpoint(ref.Type)
	if err != nil {
		return domain.Item{}, err
	}

	var raw itemJSON
	err = c.do(ctx, request{
		method: http.MethodPut,
		path:   base + "/" + url.PathEscape(string(ref.ID)),
		query:  url.Values{"fields": {itemFields}},
		body:   body,
	}, &raw)
	if err != nil {
		return domain.Item{}, fmt.Errorf("update %s: %w", ref, err)
	}
	return raw.toDomain(), nil
}

func (c *Client) Copy(ctx context.Context, ref domain.ItemRef, parentID domain.ItemID, name string) (domain.Item, error) {
	ref, err := c.typed(ctx, ref)
	if err != nil {
		return domain.Item{}, err
	}
	if ref.Type == domain.ItemTypeWebLink {
		return domain.Item{}, fmt.Errorf("copy %s: %w", ref, ErrUnsupportedOperation)
	}
	base, err := endpoint(ref.Type)
	if err != nil {
		return domain.Item{}, err
	}

	body := map[string]any{"parent": parentRef{ID: string(parentID)}}
	if name != "" {
		body["name"] = name
	}

	var raw itemJSON
	err = c.do(ctx, request{
		method: http.MethodPost,
		path:   base + "/" + url.PathEscape(string(ref.ID)) + "/copy",
		query:  url.Values{"fields": {itemFields}},
		body:   body,
	}, &raw)
	if err != nil {
		return domain.Item{}, fmt.Errorf("copy %s: %w", ref, err)
	}
	return raw.toDomain(), nil
}

func (c *Client) Delete(ctx context.Context, ref domain.ItemRef, recursive bool) error {
	ref, err := c.typed(ctx, ref)
	if err != nil {
		return err
	}
	base, err := endpoint(ref.Type)
	if err != nil {
		return err
	}

	var query url.Values
	if ref.Type == domain.ItemTypeFolder && recursive {
		query = url.Values{"recursive": {"true"}}
	}

	if err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   base + "/" + url.PathEscape(string(ref.ID)),
		query:  query,
	}, nil); err != nil {
		return fmt.Errorf("delete %s: %w", ref, err)
	}
	return nil
}

func (c *Client) CreateFolder(ctx context.Context, parentID domain.ItemID, name string) (domain.Item, error) {
	var raw itemJSON
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/folders",
		query:  url.Values{"fields": {itemFields}},
		body:   map[string]any{"name": name, "parent": parentRef{ID: string(parentID)}},
	}, &raw)
	if err != nil {
		return domain.Item{}, fmt.Errorf("create folder %q in %s: %w", name, parentID, err)
	}
	return raw.toDomain(), nil
}

type userJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Login       string `json:"login"`
	SpaceAmount int64  `json:"space_amount"`
	SpaceUsed   int64  `json:"space_used"`
}

func (c *Client) CurrentUser(ctx context.Context) (ports.User, error) {
	var raw userJSON
	if err := c.do(ctx, request{method: http.MethodGet, path: "/users/me"}, &raw); err != nil {
		return ports.User{}, fmt.Errorf("get current user: %w", err)
	}

	return ports.User{
		ID:         raw.ID,
		Name:       raw.Name,
		Login:      raw.Login,
		SpaceUsed:  raw.SpaceUsed,
		SpaceTotal: raw.SpaceAmount,
	}, nil
}

// typed fills in a missing item type by probing the API.
func (c *Client) typed(ctx context.Context, ref domain.ItemRef) (domain.ItemRef, error) {
	if ref.Type != "" {
		return ref, nil
	}
	raw, err := c.getItem(ctx, ref, "id,type")
	if err != nil {
		return ref, err
	}
	return domain.ItemRef{ID: ref.ID, Type: domain.ItemType(raw.Type)}, nil
}
