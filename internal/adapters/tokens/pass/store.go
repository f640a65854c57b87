// Package pass keeps the OAuth token in a password-store (pass) entry.
package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/boxtools-cli/internal/adapters/tokens"
	"github.com/bnema/boxtools-cli/internal/domain"
	"github.com/bnema/boxtools-cli/internal/ports"
	"golang.org/x/oauth2"
)

const DefaultEntry = "boxtools/auth-tokens"

var ErrUnavailable = errors.New("pass command unavailable")

// pass prints this when an entry does not exist.
const missingEntryMarker = "is not in the password store"

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

type Store struct {
	entry string
	run   runFunc
}

var _ ports.TokenStore = (*Store)(nil)

func NewStore(entry string) *Store {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		entry = DefaultEntry
	}
	return &Store{entry: entry, run: runPassCommand}
}

func (s *Store) Entry() string {
	return s.entry
}

func (s *Store) Load(ctx context.Context) (*oauth2.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stdout, stderr, err := s.run(ctx, "", "show", s.entry)
	if err != nil {
		if strings.Contains(stderr, missingEntryMarker) {
			return nil, fmt.Errorf("pass entry %q: %w", s.entry, domain.ErrNotAuthorized)
		}
		return nil, formatError("show", s.entry, err, stderr)
	}

	return tokens.Decode([]byte(stdout), "pass entry "+s.entry)
}

func (s *Store) Save(ctx context.Context, token *oauth2.Token) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := tokens.Encode(token)
	if err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, string(data), "insert", "-m", "-f", s.entry)
	if err != nil {
		return formatError("insert", s.entry, err, stderr)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, "", "rm", "-f", s.entry)
	if err != nil && !strings.Contains(stderr, missingEntryMarker) {
		return formatError("rm", s.entry, err, stderr)
	}
	return nil
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	path, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(op string, entry string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, entry, err)
	}

	return fmt.Errorf("pass %s %q: %w: %s", op, entry, err, stderr)
}
