package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func seedCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default categories into an empty database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.close()

			out, err := a.useCases.SeedCategories.Execute(cmd.Context())
			if err != nil {
				return err
			}

			if out.Created == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Categories already present, nothing seeded")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %d default categories\n", out.Created)
			return nil
		},
	}
}
