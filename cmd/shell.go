package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bnema/boxtools-cli/internal/adapters/prompt"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

const shellPrompt = "bx> "

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell [SCRIPT]",
		Short: "Run commands interactively or from a script",
		Long: "Run bx commands one line at a time, from SCRIPT or standard input. Lines use\n" +
			"shell quoting, several commands can be separated with ';' and lines starting\n" +
			"with '#' are ignored. A failing command never stops the shell; Ctrl-C cancels\n" +
			"the running command only. 'exit' or end of input leaves the shell.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer func() { _ = f.Close() }()

				return runShell(cmd, a, prompt.NewLineReader(f), false)
			}

			a.useShellInput()
			f, ok := a.stdin.(*os.File)
			return runShell(cmd, a, a.lineReader(), ok && isTerminal(f))
		},
	}
}

func runShell(cmd *cobra.Command, a *app, input *prompt.LineReader, interactive bool) error {
	// Lines get their own cancellation; the shell itself ends on exit or EOF.
	base := context.WithoutCancel(cmd.Context())
	stderr := cmd.ErrOrStderr()

	for {
		if interactive {
			_, _ = fmt.Fprint(stderr, shellPrompt)
		}

		line, err := input.ReadLine(base)
		if errors.Is(err, io.EOF) {
			if interactive {
				_, _ = fmt.Fprintln(stderr)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("read command: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		commands, err := splitCommands(line)
		if err != nil {
			reportError(stderr, err)
			continue
		}

		for _, words := range commands {
			switch words[0] {
			case "exit", "quit":
				return nil
			case "shell":
				reportError(stderr, errors.New("already in a shell"))
				continue
			}
			runShellLine(base, cmd, a, words)
		}
	}
}

func runShellLine(base context.Context, parent *cobra.Command, a *app, words []string) {
	ctx, stop := signal.NotifyContext(base, os.Interrupt)
	defer stop()

	tree := newCommandTree(a)
	tree.SetArgs(words)
	tree.SetIn(parent.InOrStdin())
	tree.SetOut(parent.OutOrStdout())
	tree.SetErr(parent.ErrOrStderr())

	reportError(parent.ErrOrStderr(), tree.ExecuteContext(ctx))
}

// splitCommands splits line into ';'-separated commands of shell words.
func splitCommands(line string) ([][]string, error) {
	var commands [][]string
	for _, segment := range splitUnquoted(line, ';') {
		parser := shellwords.NewParser()
		words, err := parser.Parse(segment)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", segment, err)
		}
		if parser.Position >= 0 {
			return nil, fmt.Errorf("parse %q: pipes and redirections are not supported", segment)
		}
		if len(words) > 0 {
			commands = append(commands, words)
		}
	}
	return commands, nil
}

// splitUnquoted splits s at every sep outside quotes and not escaped.
func splitUnquoted(s string, sep rune) []string {
	var parts []string
	var quote rune
	escaped := false
	start := 0

	for i, r := range s {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == sep:
			parts = append(parts, s[start:i])
			start = i + len(string(sep))
		}
	}
	return append(parts, s[start:])
}
