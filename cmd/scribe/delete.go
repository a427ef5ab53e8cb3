package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/scribe/pkg/core"
)

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, _, err := a.openStore(cmd.Context(), false)
			if err != nil {
				return err
			}

			if store.Delete(id) == core.OutcomeNotFound {
				return notFoundError(id)
			}
			if err := store.Save(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Note deleted successfully.")
			return nil
		},
	}
}
