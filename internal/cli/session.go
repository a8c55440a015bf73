package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/pulse/internal/portal"
)

func newLoginCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Save the session token passed with --token",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := portal.NewSession(a.token)
			if err != nil {
				return errors.New("login requires --token")
			}
			if session.Expired(a.Now()) {
				return fmt.Errorf("refusing to save: %w", portal.ErrSessionExpired)
			}
			if err := a.Files.SaveToken(session.Token); err != nil {
				return err
			}

			who := session.Subject()
			if who == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Saved session to %s\n", a.Files.TokenPath())
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved session for %s to %s\n", who, a.Files.TokenPath())
			return nil
		},
	}
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Files.ClearToken(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}
