package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/scribe/internal/paths"
	"github.com/aretw0/scribe/pkg/core"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envPrefix      = "SCRIBE"

	cfgKeyFile     = "file"
	cfgKeyAtomic   = "atomic_save"
	cfgKeyIDPolicy = "id_policy"
	cfgKeyLogLevel = "log_level"
)

// defaultConfigYAML is the content written by "scribe config init".
const defaultConfigYAML = `# Scribe configuration
# Every key can also be set through the environment, e.g. SCRIBE_ATOMIC_SAVE=true.

# Notes file (relative paths resolve against the working directory).
file: notes.json

# Write through a temporary file and rename it into place.
atomic_save: false

# How new notes are numbered: "monotonic" never reuses an id within a
# session; "count" uses the number of notes plus one.
id_policy: monotonic

# debug, info, warn or error.
log_level: info
`

// loadConfig reads config.yaml from configDir using Viper.
// A missing directory or file is not an error; defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyFile, paths.DefaultNotesFile)
	v.SetDefault(cfgKeyAtomic, false)
	v.SetDefault(cfgKeyIDPolicy, string(core.IDMonotonic))
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if configDir == "" {
		return v, nil
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, usageErrorf("read config: %v", err)
	}
	return v, nil
}

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml to the configuration directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := paths.ResolveConfigDir(a.flagConfigDir)
			if err != nil {
				return fmt.Errorf("resolve config dir: %w", err)
			}
			path, created, err := writeDefaultConfig(configDir, force)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists (use --force to overwrite)\n", path)
			}
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config.yaml")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"config_file":  a.cfg.ConfigFileUsed(),
				cfgKeyFile:     a.notesFile(),
				cfgKeyAtomic:   a.cfg.GetBool(cfgKeyAtomic),
				cfgKeyIDPolicy: a.cfg.GetString(cfgKeyIDPolicy),
				cfgKeyLogLevel: a.cfg.GetString(cfgKeyLogLevel),
			})
		},
	}

	configCmd.AddCommand(initCmd, showCmd)
	return configCmd
}

// writeDefaultConfig creates configDir and writes config.yaml unless it
// already exists and force is false.
func writeDefaultConfig(configDir string, force bool) (string, bool, error) {
	path := filepath.Join(configDir, configFileExt)

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return path, false, fmt.Errorf("create config dir: %w", err)
	}

	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return path, false, nil
		}
		if !os.IsNotExist(err) {
			return path, false, fmt.Errorf("stat config file: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return path, false, fmt.Errorf("write config file: %w", err)
	}
	return path, true, nil
}
