package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/scribe/internal/paths"
)

// app carries the flag values and the per-invocation environment shared
// by every subcommand. A fresh app is built for each execution.
type app struct {
	flagConfigDir string
	flagFile      string
	verbose       bool

	cfg    *viper.Viper
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "scribe",
		Short: "A personal note store backed by a single JSON file",
		Long: `Scribe keeps short text notes in a local JSON file.
Each command loads the file, applies one change and saves it back.
Use "scribe shell" for an interactive session that saves on exit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.flagConfigDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/scribe)")
	rootCmd.PersistentFlags().StringVarP(&a.flagFile, "file", "f", "", "notes file (default: notes.json)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newAddCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
		newFilterCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newWatchCmd(a),
		newStatusCmd(a),
		newShellCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.flagConfigDir)
	if err != nil {
		// Without a home directory the CLI still works on defaults.
		configDir = ""
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := slog.LevelInfo
	if raw := cfg.GetString(cfgKeyLogLevel); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return usageErrorf("invalid log_level %q", raw)
		}
	}
	if a.verbose {
		level = slog.LevelDebug
	}

	a.logger = newLogger(cmd.ErrOrStderr(), level)
	a.logger.Debug("configuration loaded", "config_dir", configDir, "config_file", cfg.ConfigFileUsed())
	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	return report(rootCmd, rootCmd.ExecuteContext(ctx))
}

// report prints err (if any) and maps it to an exit code.
func report(cmd *cobra.Command, err error) int {
	if err == nil {
		return exitSuccess
	}
	code := exitCode(err)
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", msg)
	}
	return code
}
