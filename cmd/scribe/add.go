package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	var title, body string

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note",
		Long: `Add appends a new note stamped with the current time and saves the file.

Example:
  scribe add --title Groceries --body "Milk, eggs"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := a.openStore(cmd.Context(), false)
			if err != nil {
				return err
			}

			note := store.Add(title, body)
			if err := store.Save(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Note added successfully. ID: %d\n", note.ID)
			return nil
		},
	}

	addCmd.Flags().StringVarP(&title, "title", "t", "", "Note title")
	addCmd.Flags().StringVarP(&body, "body", "b", "", "Note body")
	return addCmd
}
