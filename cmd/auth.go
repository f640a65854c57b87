package cmd

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/bnema/boxtools-cli/internal/adapters/auth"
	"github.com/spf13/cobra"
)

func newAuthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "auth",
		Short:       "Manage the Box login",
		Annotations: map[string]string{annotationNeeds: needsConfig},
	}

	cmd.AddCommand(newAuthLoginCmd(a), newAuthRefreshCmd(a), newAuthLogoutCmd(a))

	return cmd
}

func newAuthLoginCmd(a *app) *cobra.Command {
	var openBrowser bool
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in through the browser",
		Long: "Log in through the browser. bx listens on auth.redirect-url for the authorization\n" +
			"callback; the URL must match the redirect URI registered for the Box app.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.oauthConfig()
			if err != nil {
				return err
			}

			opts := auth.LoginOptions{Out: cmd.OutOrStdout(), Timeout: timeout}
			if openBrowser {
				opts.OpenBrowser = openURL
			}

			token, err := auth.Login(cmd.Context(), cfg, a.tokens, opts)
			if err != nil {
				return err
			}

			a.logger.Debug("login complete")
			return writeMessage(cmd, "Logged in, token valid until %s", token.Expiry.Local().Format(time.DateTime))
		},
	}

	cmd.Flags().BoolVar(&openBrowser, "open", false, "Open the authorization URL in a browser")
	cmd.Flags().DurationVar(&timeout, "timeout", auth.DefaultLoginTimeout, "How long to wait for the callback")

	return cmd
}

func newAuthRefreshCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Refresh the stored access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.oauthConfig()
			if err != nil {
				return err
			}

			token, err := auth.Refresh(cmd.Context(), cfg, a.tokens)
			if err != nil {
				return err
			}
			return writeMessage(cmd, "Token refreshed, valid until %s", token.Expiry.Local().Format(time.DateTime))
		},
	}
}

func newAuthLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Delete the stored tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.tokens.Delete(cmd.Context()); err != nil {
				return err
			}
			return writeMessage(cmd, "Logged out")
		},
	}
}

func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return cmd.Process.Release()
}
