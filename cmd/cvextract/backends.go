package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cvextract/internal/pdftext"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List extraction backends and their availability",
	Run: func(cmd *cobra.Command, args []string) {
		lib := pdftext.NewPDFLib()
		fmt.Printf("%-10s available (built in)\n", lib.Name())

		pt := pdftext.NewPdftotext(viper.GetString(keyPdftotextPath))
		if pt.Available() {
			fmt.Printf("%-10s available\n", pt.Name())
		} else {
			fmt.Printf("%-10s not found\n", pt.Name())
		}
	},
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}
