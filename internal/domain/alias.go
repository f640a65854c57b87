package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// AliasReservedPrefix marks names kept for internal bookkeeping.
const AliasReservedPrefix = "_"

// aliasReservedChars are the resolver's operator characters.
const aliasReservedChars = "@%=^$/!#"

var aliasReservedNames = map[string]struct{}{
	".":  {},
	"..": {},
	"-":  {},
}

type Alias struct {
	Name    string
	ID      ItemID
	Comment string
}

func ValidateAliasName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidAlias)
	}
	if IsNumericID(name) {
		return fmt.Errorf("%w: %q is numeric and would shadow an item ID", ErrInvalidAlias, name)
	}
	if strings.HasPrefix(name, AliasReservedPrefix) {
		return fmt.Errorf("%w: %q starts with reserved prefix %q", ErrInvalidAlias, name, AliasReservedPrefix)
	}
	if _, ok := aliasReservedNames[name]; ok {
		return fmt.Errorf("%w: %q is a reserved name", ErrInvalidAlias, name)
	}
	if i := strings.IndexFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r) || strings.ContainsRune(aliasReservedChars, r)
	}); i >= 0 {
		return fmt.Errorf("%w: %q contains reserved character %q", ErrInvalidAlias, name, name[i:i+1])
	}

	return nil
}

// ValidateAliasTarget checks that id can be written to and read back from
// the alias file.
func ValidateAliasTarget(id ItemID) error {
	if id == "" {
		return fmt.Errorf("%w: item id is empty", ErrInvalidAlias)
	}
	if strings.ContainsFunc(string(id), func(r rune) bool {
		return unicode.IsSpace(r) || r == '#' || r == '='
	}) {
		return fmt.Errorf("%w: item id %q contains whitespace, '#' or '='", ErrInvalidAlias, id)
	}
	return nil
}

// NormalizeAliasComment flattens a comment to a single line.
func NormalizeAliasComment(comment string) string {
	return strings.TrimSpace(strings.Join(strings.FieldsFunc(comment, func(r rune) bool {
		return r == '\n' || r == '\r'
	}), " "))
}
