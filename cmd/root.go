package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command when tabreader is called with no subcommands.
var rootCmd = &cobra.Command{
	Use:   "tabreader",
	Short: "A high-throughput tabular-text reader and explorer",
	Long: `tabreader tokenizes delimited ASCII tables (CSV-like, tab-separated,
whitespace-separated, with optional quoting and comment lines) into a
column-oriented, type-inferred in-memory table, and exposes that table
through parsing, validation, export, benchmarking, and REPL subcommands.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
