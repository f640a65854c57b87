package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/boxtools-cli/internal/adapters/render/items"
	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/bnema/boxtools-cli/internal/resolver"
)

// Chooser asks the user to pick one of several candidates by number.
type Chooser struct {
	in  *LineReader
	out io.Writer
}

var _ resolver.Chooser = (*Chooser)(nil)

func NewChooser(in *LineReader, out io.Writer) *Chooser {
	return &Chooser{in: in, out: out}
}

func (c *Chooser) Choose(ctx context.Context, token string, candidates []domain.Item) (int, error) {
	_, _ = fmt.Fprintln(c.out, items.String(items.Candidates{Token: token, Items: candidates}))
	_, _ = fmt.Fprintf(c.out, "Select item [1-%d]: ", len(candidates))

	answer, err := c.in.ReadLine(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(c.out)
		if errors.Is(err, io.EOF) {
			return -1, resolver.ErrSelectionAborted
		}
		return -1, fmt.Errorf("%w: %w", resolver.ErrSelectionAborted, err)
	}

	choice, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || choice < 1 || choice > len(candidates) {
		return -1, resolver.ErrSelectionAborted
	}
	return choice - 1, nil
}
