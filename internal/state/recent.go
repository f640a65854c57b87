package state

import (
	"fmt"

	"github.com/bnema/boxtools-cli/internal/domain"
)

const DefaultRecentSize = 20

// RecentFolders is a bounded FIFO of recently listed folders. Pushing the
// folder already at the tail is a no-op; other repeats are kept.
type RecentFolders struct {
	entries  []domain.RecentFolder
	capacity int
}

func NewRecentFolders(capacity int) (*RecentFolders, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("recent folders: %w (got %d)", ErrInvalidCapacity, capacity)
	}

	return &RecentFolders{capacity: capacity}, nil
}

// Push appends folder and reports whether the queue changed.
func (r *RecentFolders) Push(folder domain.RecentFolder) bool {
	if n := len(r.entries); n > 0 && r.entries[n-1].ID == folder.ID {
		return false
	}

	r.entries = append(r.entries, folder)
	r.trim()
	return true
}

func (r *RecentFolders) MostRecent() (domain.RecentFolder, bool) {
	if len(r.entries) == 0 {
		return domain.RecentFolder{}, false
	}
	return r.entries[len(r.entries)-1], true
}

func (r *RecentFolders) Clear() {
	r.entries = nil
}

func (r *RecentFolders) Len() int {
	return len(r.entries)
}

func (r *RecentFolders) Capacity() int {
	return r.capacity
}

func (r *RecentFolders) Resize(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("recent folders: %w (got %d)", ErrInvalidCapacity, capacity)
	}

	r.capacity = capacity
	r.trim()
	return nil
}

// All returns a copy of the queue, oldest first.
func (r *RecentFolders) All() []domain.RecentFolder {
	out := make([]domain.RecentFolder, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *RecentFolders) trim() {
	if over := len(r.entries) - r.capacity; over > 0 {
		r.entries = append(r.entries[:0:0], r.entries[over:]...)
	}
}
