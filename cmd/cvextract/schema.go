package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cvextract/internal/resume"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the stdout record",
	Long: `Schema prints the JSON Schema describing every record cvextract writes to
stdout: the success record ("text" plus optional "name") and the error
record. Integrators of the intake pipeline can validate captured output
against it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return resume.WriteRecord(os.Stdout, resume.OutputSchema(), resume.Options{Pretty: true})
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
