package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) navigateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "navigate <path>",
		Short: "Resolve where the current session may go",
		Long: `Runs the navigation guard for path against the stored session and prints
the page the user ends up on, following redirects to login or to the
role's dashboard.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			b, err := a.backend(ctx)
			if err != nil {
				return err
			}
			loc, err := b.navigator.Navigate(ctx, args[0])
			if err != nil {
				return err
			}
			if loc.RedirectedFrom != "" {
				fmt.Fprintf(a.out, "%s -> %s (%s)\n", loc.RedirectedFrom, loc.Path, loc.Name)
				return nil
			}
			fmt.Fprintf(a.out, "%s (%s)\n", loc.Path, loc.Name)
			return nil
		},
	}
}
