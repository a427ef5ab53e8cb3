package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/scribe/pkg/core"
)

func newEditCmd(a *app) *cobra.Command {
	var title, body string

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace the title and body of a note",
		Long: `Edit overwrites a note's title and body and refreshes its timestamp.
A flag that is not given keeps the note's current value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, _, err := a.openStore(cmd.Context(), false)
			if err != nil {
				return err
			}

			current, ok := store.Get(id)
			if !ok {
				return notFoundError(id)
			}
			if !cmd.Flags().Changed("title") {
				title = current.Title
			}
			if !cmd.Flags().Changed("body") {
				body = current.Body
			}

			if store.Edit(id, title, body) == core.OutcomeNotFound {
				return notFoundError(id)
			}
			if err := store.Save(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Note edited successfully.")
			return nil
		},
	}

	editCmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&body, "body", "b", "", "New body")
	return editCmd
}
