package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/bookstore/core/api"
	"github.com/dmitrymomot/bookstore/core/logger"
	"github.com/dmitrymomot/bookstore/core/router"
	"github.com/dmitrymomot/bookstore/core/session"
)

func (a *App) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Sign in and store the session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			b, err := a.backend(ctx)
			if err != nil {
				return err
			}

			sess, err := b.api.Auth().LoginAndStore(ctx, api.Credentials{Email: args[0], Password: args[1]})
			if err != nil {
				return errors.Join(ErrLoginFailed, err)
			}

			target, ok := router.DashboardFor(sess.Role)
			if !ok {
				target = router.BooksPath
			}
			loc, err := b.navigator.Navigate(ctx, target)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Logged in as %s (%s)\n", args[0], roleName(sess.Role))
			fmt.Fprintf(a.out, "Landing page: %s\n", loc.Path)
			return nil
		},
	}
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and wipe the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			b, err := a.backend(ctx)
			if err != nil {
				return err
			}

			if b.sessions.IsAuthenticated(ctx) {
				// The local session is wiped regardless of what the backend says.
				if _, err := b.api.Auth().Logout(ctx); err != nil {
					a.logger.WarnContext(ctx, "backend logout failed", logger.Error(err))
				}
			}
			if err := b.sessions.Clear(ctx); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Logged out")
			return nil
		},
	}
}

func (a *App) whoamiCommand() *cobra.Command {
	var verify bool
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			sessions, err := a.sessions(ctx)
			if err != nil {
				return err
			}
			sess, err := sessions.Load(ctx)
			if err != nil {
				return err
			}
			if !sess.IsAuthenticated() {
				fmt.Fprintln(a.out, "Not logged in")
				return nil
			}

			fmt.Fprintf(a.out, "Role: %s\n", roleName(sess.Role))
			if sess.UserID != "" {
				fmt.Fprintf(a.out, "User ID: %s\n", sess.UserID)
			}
			if claims, err := session.ParseClaims(sess.Token); err == nil {
				if email := claims.Email(); email != "" {
					fmt.Fprintf(a.out, "Email: %s\n", email)
				}
				if exp := claims.Expiry(); !exp.IsZero() {
					fmt.Fprintf(a.out, "Token expires: %s\n", exp.UTC().Format(time.RFC3339))
				}
			}

			if !verify {
				return nil
			}
			b, err := a.backend(ctx)
			if err != nil {
				return err
			}
			res := api.Normalize(b.api.Auth().Validate(ctx, sess.Token))
			if !res.Success {
				return fmt.Errorf("%w: %s", ErrTokenRejected, res.Error)
			}
			fmt.Fprintln(a.out, "Token accepted by server")
			return nil
		},
	}
	cmd.Flags().BoolVar(&verify, "verify", false, "ask the backend whether the token is still valid")
	return cmd
}

func roleName(r session.Role) string {
	if r == "" {
		return "no role"
	}
	return r.String()
}
