package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/boxtools-cli/internal/adapters/render/items"
	"github.com/bnema/boxtools-cli/internal/state"
	"github.com/spf13/cobra"
)

type aliasJSON struct {
	Name    string `json:"name"`
	ID      string `json:"id"`
	Comment string `json:"comment,omitempty"`
}

func newResolveCmd(a *app) *cobra.Command {
	var showRule bool

	cmd := &cobra.Command{
		Use:   "resolve TOKEN...",
		Short: "Print the item IDs that references resolve to",
		Long:  "Print the item IDs that references resolve to.\n\n" + referenceHelp,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, token := range args {
				// Malformed tokens are reported by Resolve below.
				rule, _ := a.resolver.Classify(token)

				id, err := a.resolve(cmd.Context(), token)
				if err != nil {
					return err
				}

				if showRule {
					_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", token, rule, id)
				} else {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showRule, "rule", false, "Also print the token and the rule that matched it")

	return cmd
}

func newAliasCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alias",
		Short: "Manage item aliases (@name)",
	}

	cmd.AddCommand(newAliasSetCmd(a), newAliasRemoveCmd(a), newAliasListCmd(a))

	return cmd
}

func newAliasSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set NAME ITEM [COMMENT...]",
		Short: "Define or replace an alias",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.resolve(cmd.Context(), args[1])
			if err != nil {
				return err
			}

			alias, err := a.session.DefineAlias(args[0], id, strings.Join(args[2:], " "))
			if err != nil {
				return err
			}
			return writeMessage(cmd, "@%s -> %s", alias.Name, alias.ID)
		},
	}
}

func newAliasRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm NAME",
		Short: "Remove an alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session.UndefineAlias(strings.TrimPrefix(args[0], "@"))
		},
	}
}

func newAliasListCmd(a *app) *cobra.Command {
	var prefix bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list [FILTER]",
		Short: "List aliases, optionally those whose name contains FILTER",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := state.AliasFilter{}
			if len(args) == 1 {
				filter = state.AliasFilter{Match: state.AliasMatchSubstring, Term: args[0]}
				if prefix {
					filter.Match = state.AliasMatchPrefix
				}
			}

			aliases := a.session.Aliases().List(filter)
			if asJSON {
				out := make([]aliasJSON, 0, len(aliases))
				for _, alias := range aliases {
					out = append(out, aliasJSON{Name: alias.Name, ID: string(alias.ID), Comment: alias.Comment})
				}
				return writeJSON(cmd, out)
			}
			return writeSections(cmd, items.Aliases{Aliases: aliases})
		},
	}

	cmd.Flags().BoolVar(&prefix, "prefix", false, "Match FILTER as a name prefix")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
