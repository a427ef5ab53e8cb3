package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/scribe/pkg/core"
)

func newListCmd(a *app) *cobra.Command {
	var (
		listJSON   bool
		filterDate string
		filterGlob string
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, optionally filtered by date or title",
		Long: `List prints every note in store order.

--date keeps notes whose timestamp starts with the given prefix (YYYY-MM-DD).
--title keeps notes whose title matches a glob (** crosses "/").
Both filters may be combined.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := a.openStore(cmd.Context(), true)
			if err != nil {
				return err
			}

			var selected []core.Note
			if filterDate != "" || filterGlob != "" {
				selected, err = store.Filter(filterDate, filterGlob)
				if err != nil {
					return usageErrorf("%v", err)
				}
			}
			notes := store.List(selected)

			if listJSON {
				return writeJSON(cmd.OutOrStdout(), notes)
			}
			if len(notes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No notes found.")
				return nil
			}
			printNotes(cmd.OutOrStdout(), notes)
			return nil
		},
	}

	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&filterDate, "date", "", "Filter by date prefix (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&filterGlob, "title", "", "Filter by title glob")
	return listCmd
}
