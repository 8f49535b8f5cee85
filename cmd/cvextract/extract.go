package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cvextract/internal/pdftext"
	"github.com/pdiddy/cvextract/internal/resume"
	"github.com/pdiddy/cvextract/pkg/types"
)

// Viper keys. Environment equivalents carry the CVEXTRACT_ prefix with dots
// replaced by underscores (e.g. CVEXTRACT_EXTRACTION_BACKEND).
const (
	keyBackend       = "extraction.backend"
	keyPdftotextPath = "extraction.pdftotext_path"
	keyFallback      = "extraction.fallback_pdftotext"
	keyPretty        = "output.pretty"
)

func init() {
	defaults := types.DefaultConfig()
	rootCmd.Flags().String("backend", string(defaults.Extraction.Backend), "extraction backend: pdflib or pdftotext")
	rootCmd.Flags().String("pdftotext-path", defaults.Extraction.PdftotextPath, "pdftotext binary to invoke (default: look up on PATH)")
	rootCmd.Flags().Bool("fallback-pdftotext", defaults.Extraction.FallbackPdftotext, "retry a failed pdflib extraction with pdftotext")
	rootCmd.Flags().Bool("pretty", defaults.Output.Pretty, "indent the JSON record")
}

// currentConfig resolves settings from viper: config file, environment, and
// .env over the DefaultConfig values registered in initConfig. Flag
// overrides are applied by the caller, because flags belong to individual
// commands.
func currentConfig() types.Config {
	return types.Config{
		Extraction: types.ExtractionConfig{
			Backend:           types.ExtractionBackend(viper.GetString(keyBackend)),
			PdftotextPath:     viper.GetString(keyPdftotextPath),
			FallbackPdftotext: viper.GetBool(keyFallback),
		},
		Output: types.OutputConfig{
			Pretty: viper.GetBool(keyPretty),
		},
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()
	flags := cmd.Flags()
	if flags.Changed("backend") {
		v, _ := flags.GetString("backend")
		cfg.Extraction.Backend = types.ExtractionBackend(v)
	}
	if flags.Changed("pdftotext-path") {
		cfg.Extraction.PdftotextPath, _ = flags.GetString("pdftotext-path")
	}
	if flags.Changed("fallback-pdftotext") {
		cfg.Extraction.FallbackPdftotext, _ = flags.GetBool("fallback-pdftotext")
	}
	if flags.Changed("pretty") {
		cfg.Output.Pretty, _ = flags.GetBool("pretty")
	}

	opts := resume.Options{Pretty: cfg.Output.Pretty}

	// The record goes to stdout even for a missing argument; only the
	// exit status and stderr line distinguish failure modes further.
	if len(args) == 0 {
		if err := resume.WriteError(os.Stdout, resume.MsgMissingPath, opts); err != nil {
			return err
		}
		return fmt.Errorf("missing file path argument")
	}

	ex, err := pdftext.ForConfig(cfg.Extraction)
	if err != nil {
		return err
	}
	return resume.Run(ex, args[0], os.Stdout, opts)
}
