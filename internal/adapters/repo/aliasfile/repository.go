// Package aliasfile stores aliases in a hand-editable text file, one per
// line:
//
//	name = id
//	name = id  # comment
//
// Blank lines and lines starting with '#' are ignored. Lines that do not
// parse are skipped on load and dropped on the next save.
package aliasfile

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bnema/boxtools-cli/internal/atomicfile"
	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/bnema/boxtools-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	AliasesPathKey = "aliases.path"
	aliasFileMode  = 0o600
)

type Repository struct {
	path   string
	logger *zap.Logger
}

var _ ports.AliasRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper, logger *zap.Logger) (*Repository, error) {
	if cfg == nil {
		return nil, errors.New("alias repository: config is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	path := cfg.GetString(AliasesPathKey)
	if path == "" {
		return nil, errors.New("aliases path is empty")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve aliases path: %w", err)
	}

	return &Repository{path: filepath.Clean(absPath), logger: logger}, nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) Load(ctx context.Context) ([]domain.Alias, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read aliases file: %w", err)
	}

	aliases, skipped := Parse(data)
	for _, line := range skipped {
		r.logger.Debug("skipping malformed alias line", zap.String("file", r.path), zap.Int("line", line))
	}

	return aliases, nil
}

func (r *Repository) Save(ctx context.Context, aliases []domain.Alias) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := atomicfile.WriteFile(r.path, Format(aliases), aliasFileMode); err != nil {
		return fmt.Errorf("write aliases file: %w", err)
	}

	return nil
}

// Parse reads aliases from data. It returns the parsed aliases in file order,
// with later definitions of a name replacing earlier ones, and the 1-based
// numbers of the lines it skipped.
func Parse(data []byte) ([]domain.Alias, []int) {
	var (
		aliases []domain.Alias
		skipped []int
		index   = map[string]int{}
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		alias, ok, blank := parseLine(scanner.Text())
		if blank {
			continue
		}
		if !ok {
			skipped = append(skipped, lineNo)
			continue
		}
		if i, seen := index[alias.Name]; seen {
			aliases[i] = alias
			continue
		}
		index[alias.Name] = len(aliases)
		aliases = append(aliases, alias)
	}

	return aliases, skipped
}

func parseLine(line string) (alias domain.Alias, ok bool, blank bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return domain.Alias{}, false, true
	}

	name, rest, found := strings.Cut(trimmed, "=")
	if !found {
		return domain.Alias{}, false, false
	}
	id, comment, _ := strings.Cut(rest, "#")

	alias = domain.Alias{
		Name:    strings.TrimSpace(name),
		ID:      domain.ItemID(strings.TrimSpace(id)),
		Comment: strings.TrimSpace(comment),
	}
	if domain.ValidateAliasName(alias.Name) != nil || domain.ValidateAliasTarget(alias.ID) != nil {
		return domain.Alias{}, false, false
	}

	return alias, true, false
}

// Format renders aliases sorted by name.
func Format(aliases []domain.Alias) []byte {
	sorted := make([]domain.Alias, len(aliases))
	copy(sorted, aliases)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var buf bytes.Buffer
	for _, alias := range sorted {
		buf.WriteString(alias.Name)
		buf.WriteString(" = ")
		buf.WriteString(string(alias.ID))
		if comment := domain.NormalizeAliasComment(alias.Comment); comment != "" {
			buf.WriteString("  # ")
			buf.WriteString(comment)
		}
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}
