// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cvextract/pkg/types"
)

// configFileHeader tops the scaffold written by config init.
const configFileHeader = `# cvextract configuration. Command line flags and CVEXTRACT_* environment
# variables take precedence over values set here.
`

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and scaffold cvextract configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration as YAML",
	Long: `Show prints the configuration cvextract would run with, after merging the
config file, environment variables, and built-in defaults. Flag overrides
are not included; they apply per invocation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(currentConfig())
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		os.Stdout.Write(data)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented cvextract.yaml with the default settings",
	RunE:  runConfigInit,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}

	data, err := yaml.Marshal(types.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(configFileHeader), data...), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}

func init() {
	configInitCmd.Flags().String("file", "cvextract.yaml", "destination path for the config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
