package domain

import (
	"fmt"
	"strings"
)

type ItemID string

// RootFolderID is the well-known ID of the account's root folder.
const RootFolderID ItemID = "0"

type ItemType string

const (
	ItemTypeFile    ItemType = "file"
	ItemTypeFolder  ItemType = "folder"
	ItemTypeWebLink ItemType = "web_link"
)

func ParseItemType(raw string) (ItemType, error) {
	switch t := ItemType(strings.ToLower(strings.TrimSpace(raw))); t {
	case ItemTypeFile, ItemTypeFolder, ItemTypeWebLink:
		return t, nil
	case "weblink", "web-link", "link":
		return ItemTypeWebLink, nil
	default:
		return "", fmt.Errorf("unknown item type %q", raw)
	}
}

func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeFile, ItemTypeFolder, ItemTypeWebLink:
		return true
	default:
		return false
	}
}

// Suffix is appended to names in listings so folders stand out.
func (t ItemType) Suffix() string {
	if t == ItemTypeFolder {
		return "/"
	}
	return ""
}

// Item is a cached description of a remote item. ParentID is empty when the
// parent is unknown, which is always the case for the root folder.
type Item struct {
	ID         ItemID
	Name       string
	Type       ItemType
	ParentID   ItemID
	ParentName string
}

func (i Item) Ref() ItemRef {
	return ItemRef{ID: i.ID, Type: i.Type}
}

func (i Item) IsFolder() bool {
	return i.Type == ItemTypeFolder
}

// ItemRef addresses a remote item. An empty Type asks the storage client to
// discover the kind itself.
type ItemRef struct {
	ID   ItemID
	Type ItemType
}

func (r ItemRef) String() string {
	if r.Type == "" {
		return string(r.ID)
	}
	return fmt.Sprintf("%s:%s", r.Type, r.ID)
}

// IsNumericID reports whether s is a non-empty string of ASCII digits.
func IsNumericID(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
