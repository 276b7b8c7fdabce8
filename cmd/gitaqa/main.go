package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gitaqa",
	Short: "Gitaqa - Bhagavad Gita question answering service",
	Long: `Gitaqa indexes a PDF of the Bhagavad Gita and answers questions about it.

It extracts and cleans the text, learns a correction map for recurring
extraction errors, indexes verses by chapter and verse number, and serves
answers over HTTP with name correction and verse lookup.`,
	Version: version,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(buildMapCmd)
	rootCmd.AddCommand(askCmd)
}
