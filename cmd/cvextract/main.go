// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cvextract CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cvextract/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command. Invoked with a file argument it performs the
// whole intake step; management commands live in subcommands.
var rootCmd = &cobra.Command{
	Use:   "cvextract [file.pdf]",
	Short: "Extract raw text and a candidate name from a PDF resume",
	Long: `cvextract reads the embedded text layer of a PDF resume and writes a single
JSON record to stdout: the raw document text plus a best-effort candidate
name guessed from the header lines. Failures also produce a JSON record
({"error": ...}) before the process exits non-zero, so stdout is always
parseable.

Extraction uses the in-process pdf library by default and can fall back to
(or be switched to) the poppler pdftotext tool. stderr carries diagnostics
only; the record is the sole stdout output.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runExtract,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./cvextract.yaml or ~/.config/cvextract/config.yaml)")
}

func initConfig() {
	// .env values feed AutomaticEnv below; a missing file is fine.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cvextract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cvextract"))
		}
	}

	viper.SetEnvPrefix("CVEXTRACT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	defaults := types.DefaultConfig()
	viper.SetDefault(keyBackend, string(defaults.Extraction.Backend))
	viper.SetDefault(keyPdftotextPath, defaults.Extraction.PdftotextPath)
	viper.SetDefault(keyFallback, defaults.Extraction.FallbackPdftotext)
	viper.SetDefault(keyPretty, defaults.Output.Pretty)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
