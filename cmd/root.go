package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

const referenceHelp = `Items can be named by short references instead of numeric IDs:

  -          the item resolved last        /          the root folder
  .          the folder listed last        ..         its parent
  @name      an alias                      %text      name contains text
  =name      exact name                    ^text      name starts with text
  text$      name or ID ends with text     /re/       name or ID matches a regex
  dir/name   name inside a folder          name/123   name with an ID ending in 123
  123        a literal ID                  name       name, ignoring case

Append ! to a search to take the newest match without asking.`

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root, a := newRootCmd()
	return execute(ctx, root, a)
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	return newCommandTree(a), a
}

// newCommandTree builds a fresh set of commands around a. The shell builds
// one per input line so flag values never leak between lines.
func newCommandTree(a *app) *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:   "bx",
		Short: "bx: a Box command-line client with short item references",
		Long: "bx browses and edits Box storage from the terminal. Every item it sees is remembered,\n" +
			"so later commands can refer to it by name, alias or position.\n\n" + referenceHelp,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.noPrompt, "no-prompt", false, "Fail on ambiguous references instead of asking")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug|info|warn|error)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(a),
		newAuthCmd(a),
		newListCmd(a),
		newSearchCmd(a),
		newStatCmd(a),
		newPathCmd(a),
		newTreeCmd(a),
		newMoveCmd(a),
		newCopyCmd(a),
		newRenameCmd(a),
		newRemoveCmd(a),
		newMakeFolderCmd(a),
		newUserInfoCmd(a),
		newResolveCmd(a),
		newAliasCmd(a),
		newHistoryCmd(a),
		newRecentCmd(a),
		newShellCmd(a),
	)

	return rootCmd
}

// execute runs the command and then saves the session, whatever the
// command's outcome.
func execute(ctx context.Context, root *cobra.Command, a *app) error {
	runErr := root.ExecuteContext(ctx)
	reportError(root.ErrOrStderr(), runErr)

	closeErr := a.close(context.WithoutCancel(ctx))
	if closeErr != nil {
		closeErr = fmt.Errorf("save session: %w", closeErr)
		reportError(root.ErrOrStderr(), closeErr)
	}

	return errors.Join(runErr, closeErr)
}

func reportError(w io.Writer, err error) {
	if err == nil || errors.Is(err, errResolutionFailed) {
		return
	}
	_, _ = fmt.Fprintln(w, "Error:", err)
}
