package cmd

import (
	"fmt"

	"github.com/bnema/boxtools-cli/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Manage " + config.FileName,
		Annotations: map[string]string{annotationNeeds: needsConfig},
	}

	cmd.AddCommand(newConfigInitCmd(a), newConfigShowCmd(a))

	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var clientID string
	var clientSecret string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.WriteDefault(a.cfg.Path, clientID, clientSecret, force); err != nil {
				return err
			}
			return writeMessage(cmd, "Wrote %s", a.cfg.Path)
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "Box app client ID")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "Box app client secret")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rendered, err := a.cfg.Render()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", a.cfg.Path, rendered)
			return err
		},
	}
}
