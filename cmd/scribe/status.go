package main

import (
	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the store and repository state as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, repo, err := a.openStore(cmd.Context(), true)
			if err != nil {
				return err
			}

			report := map[string]any{
				store.ComponentType(): store.State(),
			}
			if r, ok := repo.(interface {
				introspection.Introspectable
				introspection.Component
			}); ok {
				report[r.ComponentType()] = r.State()
			}
			return writeJSON(cmd.OutOrStdout(), report)
		},
	}
}
