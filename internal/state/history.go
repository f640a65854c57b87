package state

import (
	"errors"
	"fmt"
	"iter"

	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

const DefaultHistorySize = 2000

var ErrInvalidCapacity = errors.New("capacity must be positive")

type Order int

const (
	OldestFirst Order = iota
	NewestFirst
)

// Query selects history entries. A positive Limit keeps the Limit most
// recent matches whatever the Order.
type Query struct {
	Order  Order
	Filter func(domain.Item) bool
	Limit  int
}

// History is a bounded, recency-ordered cache of item metadata keyed by ID.
type History struct {
	lru      *simplelru.LRU[domain.ItemID, domain.Item]
	capacity int
}

func NewHistory(capacity int) (*History, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("history: %w (got %d)", ErrInvalidCapacity, capacity)
	}

	lru, err := simplelru.NewLRU[domain.ItemID, domain.Item](capacity, nil)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	return &History{lru: lru, capacity: capacity}, nil
}

// Touch inserts or overwrites the entry for item.ID and makes it the most
// recent one, evicting from the oldest end when over capacity. It reports
// whether an entry was evicted.
func (h *History) Touch(item domain.Item) bool {
	return h.lru.Add(item.ID, item)
}

func (h *History) Get(id domain.ItemID) (domain.Item, bool) {
	return h.lru.Peek(id)
}

func (h *History) Remove(id domain.ItemID) bool {
	return h.lru.Remove(id)
}

func (h *History) Clear() {
	h.lru.Purge()
}

func (h *History) Len() int {
	return h.lru.Len()
}

func (h *History) Capacity() int {
	return h.capacity
}

func (h *History) Resize(capacity int) (int, error) {
	if capacity <= 0 {
		return 0, fmt.Errorf("history: %w (got %d)", ErrInvalidCapacity, capacity)
	}

	h.capacity = capacity
	return h.lru.Resize(capacity), nil
}

// Items returns every entry, oldest first.
func (h *History) Items() []domain.Item {
	return collect(h.Entries(Query{}))
}

// Entries returns a lazy sequence over the entries selected by q. Each call
// to the returned sequence starts a fresh traversal.
func (h *History) Entries(q Query) iter.Seq[domain.Item] {
	return func(yield func(domain.Item) bool) {
		keys := h.lru.Keys()

		if q.Limit <= 0 && q.Order == OldestFirst {
			for _, key := range keys {
				item, ok := h.lru.Peek(key)
				if !ok || !q.matches(item) {
					continue
				}
				if !yield(item) {
					return
				}
			}
			return
		}

		var newest []domain.Item
		matched := 0
		for i := len(keys) - 1; i >= 0; i-- {
			if q.Limit > 0 && matched >= q.Limit {
				break
			}
			item, ok := h.lru.Peek(keys[i])
			if !ok || !q.matches(item) {
				continue
			}
			matched++
			if q.Order == OldestFirst {
				newest = append(newest, item)
				continue
			}
			if !yield(item) {
				return
			}
		}

		for i := len(newest) - 1; i >= 0; i-- {
			if !yield(newest[i]) {
				return
			}
		}
	}
}

func (q Query) matches(item domain.Item) bool {
	return q.Filter == nil || q.Filter(item)
}

func collect(seq iter.Seq[domain.Item]) []domain.Item {
	var items []domain.Item
	for item := range seq {
		items = append(items, item)
	}
	return items
}
