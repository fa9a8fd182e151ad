package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/ooyeku/tabreader/pkg"
	"github.com/spf13/cobra"
)

var strict bool

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate tabular-text file structure",
	Long: `Validate the structure of a delimited text file by checking:
- Consistent number of columns across all rows
- Proper quote and delimiter usage
- No malformed rows

In strict mode, a ragged row is a structural failure (NOT_ENOUGH_COLS /
TOO_MANY_COLS) that stops validation, and every empty field is additionally
reported as a warning. In non-strict mode, short rows are silently padded
with empty fields instead.

Example:
  tabreader validate data.csv
  tabreader validate --strict data.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath := args[0]

		input, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("error opening file: %w", err)
		}
		if len(input) == 0 || input[len(input)-1] != '\n' {
			input = append(input, '\n')
		}

		cfg := pkg.DefaultConfig()
		cfg.FillExtraCols = !strict

		probe := pkg.NewTokenizer(cfg, 1<<16)
		if err := probe.Tokenize(input, 0, -1, true, nil); err != nil {
			return fmt.Errorf("error reading header: %w", err)
		}
		numCols := len(probe.HeaderNames())
		if numCols == 0 {
			fmt.Printf("File: %s\nRows processed: 0\nColumns per row: 0\n", filePath)
			return nil
		}

		t := pkg.NewTokenizer(cfg, numCols)
		tokenizeErr := t.Tokenize(input, 0, -1, false, nil)

		fmt.Printf("File: %s\n", filePath)
		fmt.Printf("Rows processed: %d\n", t.NumRows())
		fmt.Printf("Columns per row: %d\n", numCols)

		if tokenizeErr != nil {
			var parseErr *pkg.ParseError
			if errors.As(tokenizeErr, &parseErr) {
				fmt.Printf("\nValidation Errors:\n- %s\n", parseErr.Error())
			}
			return fmt.Errorf("validation failed: %w", tokenizeErr)
		}

		if strict {
			var warnings []string
			for i := 0; i < numCols; i++ {
				iter := t.Column(i)
				iter.Start()
				for row := 0; !iter.Finished(); row++ {
					if len(iter.NextField()) == 0 {
						warnings = append(warnings, fmt.Sprintf("Row %d, Column %d: Empty field", row+1, i+1))
					}
				}
			}
			if len(warnings) > 0 {
				fmt.Println("\nValidation Errors:")
				for _, w := range warnings {
					fmt.Printf("- %s\n", w)
				}
				return fmt.Errorf("validation failed with %d errors", len(warnings))
			}
		}

		fmt.Println("\nValidation successful! No errors found.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVarP(&strict, "strict", "s", false,
		"Enable strict validation (ragged rows fail, empty fields are reported)")
}
