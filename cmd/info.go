package cmd

import (
	"fmt"
	"os"

	"github.com/ooyeku/tabreader/pkg"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display information about a tabular-text file",
	Long: `Display basic information about a tabular-text file including:
- Number of rows
- Number of columns
- Column names and inferred types

Example:
  tabreader info data.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath := args[0]

		file, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("error opening file: %w", err)
		}
		defer file.Close()

		table, err := pkg.ReadTable(file, pkg.DefaultReaderConfig())
		if err != nil {
			return fmt.Errorf("error reading table: %w", err)
		}

		fmt.Printf("File: %s\n", filePath)
		fmt.Printf("Total Rows: %d\n", len(table.Rows))
		fmt.Printf("Columns: %d\n", len(table.Headers))

		if len(table.Headers) > 0 {
			fmt.Println("\nColumn Headers:")
			for i, header := range table.Headers {
				colType, _ := table.GetColumnType(header)
				fmt.Printf("%d. %s (%v)\n", i+1, header, colType)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
