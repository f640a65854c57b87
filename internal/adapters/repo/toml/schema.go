package toml

import (
	"errors"
	"fmt"

	"github.com/bnema/boxtools-cli/internal/domain"
)

const currentSchemaVersion = 1

var ErrCorruptSnapshot = errors.New("corrupt state snapshot")

type fileSchema struct {
	Version int            `toml:"version"`
	LastID  string         `toml:"last_id,omitempty"`
	History []itemSchema   `toml:"history,omitempty"`
	Recent  []recentSchema `toml:"recent,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported state schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type itemSchema struct {
	ID         string `toml:"id"`
	Name       string `toml:"name"`
	Type       string `toml:"type"`
	ParentID   string `toml:"parent_id,omitempty"`
	ParentName string `toml:"parent_name,omitempty"`
}

type recentSchema struct {
	ID         string `toml:"id"`
	Name       string `toml:"name"`
	ParentID   string `toml:"parent_id,omitempty"`
	ParentName string `toml:"parent_name,omitempty"`
}

func toSchema(snapshot domain.Snapshot) fileSchema {
	file := fileSchema{
		Version: currentSchemaVersion,
		LastID:  string(snapshot.LastID),
		History: make([]itemSchema, 0, len(snapshot.History)),
		Recent:  make([]recentSchema, 0, len(snapshot.Recent)),
	}

	for _, item := range snapshot.History {
		file.History = append(file.History, itemSchema{
			ID:         string(item.ID),
			Name:       item.Name,
			Type:       string(item.Type),
			ParentID:   string(item.ParentID),
			ParentName: item.ParentName,
		})
	}
	for _, folder := range snapshot.Recent {
		file.Recent = append(file.Recent, recentSchema{
			ID:         string(folder.ID),
			Name:       folder.Name,
			ParentID:   string(folder.ParentID),
			ParentName: folder.ParentName,
		})
	}

	return file
}

func fromSchema(file fileSchema) (domain.Snapshot, error) {
	snapshot := domain.Snapshot{LastID: domain.ItemID(file.LastID)}

	for i, entry := range file.History {
		if entry.ID == "" {
			return domain.Snapshot{}, fmt.Errorf("%w: history entry %d has no id", ErrCorruptSnapshot, i)
		}
		itemType := domain.ItemType(entry.Type)
		if !itemType.Valid() {
			return domain.Snapshot{}, fmt.Errorf("%w: history entry %s has type %q", ErrCorruptSnapshot, entry.ID, entry.Type)
		}
		snapshot.History = append(snapshot.History, domain.Item{
			ID:         domain.ItemID(entry.ID),
			Name:       entry.Name,
			Type:       itemType,
			ParentID:   domain.ItemID(entry.ParentID),
			ParentName: entry.ParentName,
		})
	}

	for i, entry := range file.Recent {
		if entry.ID == "" {
			return domain.Snapshot{}, fmt.Errorf("%w: recent folder %d has no id", ErrCorruptSnapshot, i)
		}
		snapshot.Recent = append(snapshot.Recent, domain.RecentFolder{
			ID:         domain.ItemID(entry.ID),
			Name:       entry.Name,
			ParentID:   domain.ItemID(entry.ParentID),
			ParentName: entry.ParentName,
		})
	}

	return snapshot, nil
}
