package state

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/boxtools-cli/internal/domain"
)

type AliasMatch int

const (
	AliasMatchAll AliasMatch = iota
	AliasMatchSubstring
	AliasMatchPrefix
)

type AliasFilter struct {
	Match AliasMatch
	Term  string
}

func (f AliasFilter) matches(name string) bool {
	switch f.Match {
	case AliasMatchSubstring:
		return strings.Contains(name, f.Term)
	case AliasMatchPrefix:
		return strings.HasPrefix(name, f.Term)
	default:
		return true
	}
}

// AliasTable maps user-chosen names to item IDs.
type AliasTable struct {
	entries map[string]domain.Alias
}

func NewAliasTable(aliases ...domain.Alias) *AliasTable {
	t := &AliasTable{entries: make(map[string]domain.Alias, len(aliases))}
	for _, alias := range aliases {
		t.entries[alias.Name] = alias
	}
	return t
}

// Define inserts or overwrites an alias.
func (t *AliasTable) Define(name string, id domain.ItemID, comment string) (domain.Alias, error) {
	if err := domain.ValidateAliasName(name); err != nil {
		return domain.Alias{}, err
	}
	id = domain.ItemID(strings.TrimSpace(string(id)))
	if err := domain.ValidateAliasTarget(id); err != nil {
		return domain.Alias{}, fmt.Errorf("alias %q: %w", name, err)
	}

	alias := domain.Alias{
		Name:    name,
		ID:      id,
		Comment: domain.NormalizeAliasComment(comment),
	}
	t.entries[name] = alias
	return alias, nil
}

func (t *AliasTable) Undefine(name string) error {
	if _, ok := t.entries[name]; !ok {
		return fmt.Errorf("alias %q: %w", name, domain.ErrAliasNotFound)
	}
	delete(t.entries, name)
	return nil
}

func (t *AliasTable) Lookup(name string) (domain.Alias, bool) {
	alias, ok := t.entries[name]
	return alias, ok
}

// List returns matching aliases sorted by name.
func (t *AliasTable) List(filter AliasFilter) []domain.Alias {
	out := make([]domain.Alias, 0, len(t.entries))
	for name, alias := range t.entries {
		if filter.matches(name) {
			out = append(out, alias)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (t *AliasTable) Len() int {
	return len(t.entries)
}
