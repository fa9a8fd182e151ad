package cmd

import (
	"github.com/ooyeku/tabreader/pkg"
	"github.com/spf13/cobra"
)

// replCmd represents the REPL command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive tabular-text exploration session",
	Long: `Start an interactive session for parsing and analyzing delimited text files.
Available commands:
  load <file>              - Load a file
  info                     - Show information about the current table
  preview [n]              - Show first n rows (default: 5)
  stats                    - Show column statistics
  summarize [cols]         - Show detailed statistics for columns
  correlate [cols]         - Show correlation matrix for numeric columns
  pivot <row> <col> <val> - Create pivot table with aggregation
  dates <col>             - Analyze dates in a column
  undo                    - Undo last operation
  redo                    - Redo last undone operation
  help                    - Show this help message
  exit                    - Exit the REPL`,
	Run: func(cmd *cobra.Command, args []string) {
		repl := pkg.NewREPL()
		repl.Start()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
