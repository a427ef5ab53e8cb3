package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/scribe/pkg/adapters/fs"
)

func newExportCmd(a *app) *cobra.Command {
	var format, out, date string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export notes as json, yaml, csv or markdown",
		Long: `Export renders the notes (optionally only those from one date) in another
format. Without --out the result goes to stdout. When --format is omitted
and --out has a known extension, the extension picks the format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = "json"
				if ext := filepath.Ext(out); ext != "" {
					format = ext
				}
			}
			serializer, err := fs.SerializerFor(format)
			if err != nil {
				return usageErrorf("%v", err)
			}

			store, _, err := a.openStore(cmd.Context(), true)
			if err != nil {
				return err
			}

			notes := store.List(nil)
			if date != "" {
				notes = store.FilterByDate(date)
			}

			data, err := serializer.Serialize(notes)
			if err != nil {
				return fmt.Errorf("serialize notes: %w", err)
			}

			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			a.logger.Info("notes exported", "path", out, "count", len(notes), "format", format)
			return nil
		},
	}

	exportCmd.Flags().StringVar(&format, "format", "", "json, yaml, csv or md (default: from --out extension, else json)")
	exportCmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().StringVar(&date, "date", "", "Only export notes from this date prefix")
	return exportCmd
}

func newImportCmd(a *app) *cobra.Command {
	var format string

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Append notes from a json, yaml or csv file",
		Long: `Import reads notes from a file and appends each one as a new note.
Imported notes receive fresh ids and the current time as timestamp; only
their titles and bodies are taken from the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]
			if format == "" {
				format = filepath.Ext(src)
			}
			parser, err := fs.ParserFor(format)
			if err != nil {
				return usageErrorf("%v", err)
			}

			f, err := os.Open(src)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return usageErrorf("import file %s does not exist", src)
				}
				return fmt.Errorf("open %s: %w", src, err)
			}
			defer f.Close()

			incoming, err := parser.Parse(f)
			if err != nil {
				return usageErrorf("parse %s: %v", src, err)
			}

			store, _, err := a.openStore(cmd.Context(), false)
			if err != nil {
				return err
			}
			for _, n := range incoming {
				store.Add(n.Title, n.Body)
			}
			if err := store.Save(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d notes.\n", len(incoming))
			return nil
		},
	}

	importCmd.Flags().StringVar(&format, "format", "", "json, yaml or csv (default: from file extension)")
	return importCmd
}
