package resolver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/boxtools-cli/internal/domain"
)

const (
	newestModifier  = "!"
	previousToken   = "-"
	rootToken       = "/"
	currentToken    = "."
	parentToken     = ".."
	aliasSigil      = "@"
	containsMarker  = "%"
	equalsMarker    = "="
	prefixMarker    = "^"
	suffixMarker    = "$"
	regexDelimiter  = "/"
	parentSeparator = "/"
)

// Rule identifies which part of the token grammar handled a token.
type Rule int

const (
	RulePrevious Rule = iota + 1
	RuleRoot
	RuleCurrent
	RuleParent
	RuleAlias
	RuleContains
	RuleEquals
	RulePrefix
	RuleSuffix
	RuleRegex
	RuleParentName
	RuleNameIDSuffix
	RuleLiteralID
	RuleName
)

var ruleNames = map[Rule]string{
	RulePrevious:     "previous",
	RuleRoot:         "root",
	RuleCurrent:      "current folder",
	RuleParent:       "parent folder",
	RuleAlias:        "alias",
	RuleContains:     "contains",
	RuleEquals:       "exact name",
	RulePrefix:       "prefix",
	RuleSuffix:       "suffix",
	RuleRegex:        "regex",
	RuleParentName:   "parent/name",
	RuleNameIDSuffix: "name/id suffix",
	RuleLiteralID:    "id",
	RuleName:         "name",
}

func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rule(%d)", int(r))
}

// Searches reports whether the rule scans the history for candidates.
func (r Rule) Searches() bool {
	return r >= RuleContains && r != RuleLiteralID
}

type query struct {
	rule   Rule
	term   string
	newest bool
	match  func(domain.Item) bool
}

// parse classifies token. The first rule whose shape matches wins.
func parse(token string) (query, error) {
	q := query{}
	if len(token) > 1 && strings.HasSuffix(token, newestModifier) {
		q.newest = true
		token = strings.TrimSuffix(token, newestModifier)
	}
	q.term = token

	switch token {
	case previousToken:
		q.rule = RulePrevious
		return q, nil
	case rootToken:
		q.rule = RuleRoot
		return q, nil
	case currentToken:
		q.rule = RuleCurrent
		return q, nil
	case parentToken:
		q.rule = RuleParent
		return q, nil
	}

	if name, ok := strings.CutPrefix(token, aliasSigil); ok {
		q.rule = RuleAlias
		q.term = name
		if name == "" {
			return q, fmt.Errorf("%w: alias name is empty", ErrInvalidToken)
		}
		return q, nil
	}

	if term, ok := cutMarker(token, containsMarker, true); ok {
		return q.search(RuleContains, term, func(it domain.Item) bool {
			return strings.Contains(it.Name, term)
		})
	}

	if term, ok := cutMarker(token, equalsMarker, false); ok {
		return q.search(RuleEquals, term, func(it domain.Item) bool {
			return it.Name == term
		})
	}

	if term, ok := cutMarker(token, prefixMarker, false); ok {
		return q.search(RulePrefix, term, func(it domain.Item) bool {
			return strings.HasPrefix(it.Name, term)
		})
	}

	if term, ok := cutMarker(token, suffixMarker, false); ok {
		return q.search(RuleSuffix, term, func(it domain.Item) bool {
			return strings.HasSuffix(it.Name, term) || strings.HasSuffix(string(it.ID), term)
		})
	}

	if len(token) > 2 && strings.HasPrefix(token, regexDelimiter) && strings.HasSuffix(token, regexDelimiter) {
		pattern := token[1 : len(token)-1]
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return q, fmt.Errorf("%w: %w", ErrInvalidToken, err)
		}
		return q.search(RuleRegex, pattern, func(it domain.Item) bool {
			return re.MatchString(it.Name) || re.MatchString(string(it.ID))
		})
	}

	if strings.Count(token, parentSeparator) == 1 {
		left, right, _ := strings.Cut(token, parentSeparator)
		if domain.IsNumericID(right) {
			return q.search(RuleNameIDSuffix, token, func(it domain.Item) bool {
				return strings.Contains(it.Name, left) && strings.HasSuffix(string(it.ID), right)
			})
		}
		return q.search(RuleParentName, token, func(it domain.Item) bool {
			return strings.Contains(it.ParentName, left) && strings.Contains(it.Name, right)
		})
	}

	if domain.IsNumericID(token) {
		q.rule = RuleLiteralID
		return q, nil
	}

	return q.search(RuleName, token, func(it domain.Item) bool {
		return strings.EqualFold(it.Name, token)
	})
}

func (q query) search(rule Rule, term string, match func(domain.Item) bool) (query, error) {
	q.rule = rule
	q.term = term
	q.match = match
	if term == "" {
		return q, fmt.Errorf("%w: empty %s pattern", ErrInvalidToken, rule)
	}
	return q, nil
}

// cutMarker strips marker from either end of token. With both set, a marker
// on each end is accepted too.
func cutMarker(token, marker string, both bool) (string, bool) {
	if both && len(token) >= 2*len(marker) && strings.HasPrefix(token, marker) && strings.HasSuffix(token, marker) {
		return token[len(marker) : len(token)-len(marker)], true
	}
	if term, ok := strings.CutPrefix(token, marker); ok {
		return term, true
	}
	if term, ok := strings.CutSuffix(token, marker); ok {
		return term, true
	}
	return "", false
}
