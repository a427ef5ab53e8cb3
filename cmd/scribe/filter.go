package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFilterCmd(a *app) *cobra.Command {
	var filterJSON bool

	filterCmd := &cobra.Command{
		Use:   "filter <date>",
		Short: "Show notes whose timestamp starts with a date (YYYY-MM-DD)",
		Long: `Filter prints the notes whose timestamp starts with the given prefix.
The prefix is not validated: "2024-01" selects a month, and a malformed
date simply matches nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := a.openStore(cmd.Context(), true)
			if err != nil {
				return err
			}

			notes := store.List(store.FilterByDate(args[0]))
			if filterJSON {
				return writeJSON(cmd.OutOrStdout(), notes)
			}
			if len(notes) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No notes found for %s.\n", args[0])
				return nil
			}
			printNotes(cmd.OutOrStdout(), notes)
			return nil
		},
	}

	filterCmd.Flags().BoolVar(&filterJSON, "json", false, "Output in JSON format")
	return filterCmd
}
