package main

import (
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	var showJSON bool

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, _, err := a.openStore(cmd.Context(), true)
			if err != nil {
				return err
			}

			note, ok := store.Get(id)
			if !ok {
				return notFoundError(id)
			}
			if showJSON {
				return writeJSON(cmd.OutOrStdout(), note)
			}
			printNote(cmd.OutOrStdout(), note)
			return nil
		},
	}

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	return showCmd
}
