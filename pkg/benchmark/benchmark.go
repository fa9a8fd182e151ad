package benchmark

import (
	"fmt"
	"os"
	"strings"
)

// BenchData represents a benchmark dataset
type BenchData struct {
	Name     string
	Content  string
	FileSize int64
}

// GenerateBenchmarkData creates benchmark datasets of various sizes,
// dialects, and structural edge cases.
func GenerateBenchmarkData() []BenchData {
	return []BenchData{
		generateSimpleCSV(1000),      // 1K rows
		generateSimpleCSV(100000),    // 100K rows
		generateSimpleCSV(1000000),   // 1M rows
		generateQuotedCSV(1000),      // 1K rows with quotes
		generateQuotedCSV(100000),    // 100K rows with quotes
		generateComplexCSV(1000),     // 1K rows with mixed content
		generateComplexCSV(100000),   // 100K rows with mixed content
		generateWideCSV(1000, 100),   // 1K rows x 100 columns
		generateWideCSV(100000, 100), // 100K rows x 100 columns
		generateRaggedCSV(100000),    // 100K rows, some short
		generateFillValueCSV(100000), // 100K rows with NULL-ish sentinels
		generateCommentedCSV(100000), // 100K rows interleaved with comment lines
		generateWhitespaceDelimitedCSV(100000), // 100K rows, space-delimited
	}
}

// SaveBenchmarkData saves benchmark data to files in the specified directory
func SaveBenchmarkData(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create benchmark directory: %w", err)
	}

	for _, data := range GenerateBenchmarkData() {
		filename := fmt.Sprintf("%s/bench_%s.csv", dir, strings.ReplaceAll(data.Name, " ", "_"))
		if err := os.WriteFile(filename, []byte(data.Content), 0644); err != nil {
			return fmt.Errorf("failed to write benchmark file %s: %w", filename, err)
		}
	}

	return nil
}

// generateSimpleCSV generates a simple CSV with numeric data
func generateSimpleCSV(rows int) BenchData {
	var sb strings.Builder
	sb.WriteString("id,value1,value2,value3,value4,value5\n")

	for i := 0; i < rows; i++ {
		sb.WriteString(fmt.Sprintf("%d,%d,%d,%d,%d,%d\n",
			i, i*2, i*3, i*4, i*5, i*6))
	}

	content := sb.String()
	return BenchData{
		Name:     fmt.Sprintf("simple_%dk", rows/1000),
		Content:  content,
		FileSize: int64(len(content)),
	}
}

// generateQuotedCSV generates a CSV with quoted fields containing commas
func generateQuotedCSV(rows int) BenchData {
	var sb strings.Builder
	sb.WriteString("id,description,data,notes\n")

	for i := 0; i < rows; i++ {
		sb.WriteString(fmt.Sprintf("%d,\"Description, with comma\",\"Data, with, multiple, commas\",\"Note %d\"\n",
			i, i))
	}

	content := sb.String()
	return BenchData{
		Name:     fmt.Sprintf("quoted_%dk", rows/1000),
		Content:  content,
		FileSize: int64(len(content)),
	}
}

// generateComplexCSV generates a CSV with mixed content types and special
// cases. The tokenizer's quoting rule has no doubled-quote escape (a
// quotechar inside QUOTED_FIELD always closes the field), so quoted
// values here never embed a literal quotechar.
func generateComplexCSV(rows int) BenchData {
	var sb strings.Builder
	sb.WriteString("id,text,quoted,sentinel,comment,empty\n")

	for i := 0; i < rows; i++ {
		sb.WriteString(fmt.Sprintf("%d,normal text,\"quoted, with embedded comma\",\\N,value with #not-a-comment,\n",
			i))
	}

	content := sb.String()
	return BenchData{
		Name:     fmt.Sprintf("complex_%dk", rows/1000),
		Content:  content,
		FileSize: int64(len(content)),
	}
}

// generateWideCSV generates a CSV with many columns
func generateWideCSV(rows, cols int) BenchData {
	var sb strings.Builder

	// Generate header
	for i := 0; i < cols; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(fmt.Sprintf("col%d", i))
	}
	sb.WriteString("\n")

	// Generate rows
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(fmt.Sprintf("value_%d_%d", i, j))
		}
		sb.WriteString("\n")
	}

	content := sb.String()
	return BenchData{
		Name:     fmt.Sprintf("wide_%dk_%dcols", rows/1000, cols),
		Content:  content,
		FileSize: int64(len(content)),
	}
}

// generateRaggedCSV generates a CSV where every tenth row is missing its
// last column, exercising the tokenizer's fill_extra_cols padding path.
func generateRaggedCSV(rows int) BenchData {
	var sb strings.Builder
	sb.WriteString("id,a,b,c\n")

	for i := 0; i < rows; i++ {
		if i%10 == 9 {
			sb.WriteString(fmt.Sprintf("%d,%d,%d\n", i, i*2, i*3))
			continue
		}
		sb.WriteString(fmt.Sprintf("%d,%d,%d,%d\n", i, i*2, i*3, i*4))
	}

	content := sb.String()
	return BenchData{
		Name:     fmt.Sprintf("ragged_%dk", rows/1000),
		Content:  content,
		FileSize: int64(len(content)),
	}
}

// generateFillValueCSV generates a CSV whose numeric column is peppered
// with an "NA" sentinel, exercising fill-value substitution and masking
// during materialization.
func generateFillValueCSV(rows int) BenchData {
	var sb strings.Builder
	sb.WriteString("id,amount\n")

	for i := 0; i < rows; i++ {
		if i%7 == 0 {
			sb.WriteString(fmt.Sprintf("%d,NA\n", i))
			continue
		}
		sb.WriteString(fmt.Sprintf("%d,%d\n", i, i*3))
	}

	content := sb.String()
	return BenchData{
		Name:     fmt.Sprintf("fillvalue_%dk", rows/1000),
		Content:  content,
		FileSize: int64(len(content)),
	}
}

// generateCommentedCSV generates a CSV with a '#'-led comment line before
// every data row, exercising the COMMENT state.
func generateCommentedCSV(rows int) BenchData {
	var sb strings.Builder
	sb.WriteString("id,value\n")

	for i := 0; i < rows; i++ {
		sb.WriteString(fmt.Sprintf("# row %d\n%d,%d\n", i, i, i*2))
	}

	content := sb.String()
	return BenchData{
		Name:     fmt.Sprintf("commented_%dk", rows/1000),
		Content:  content,
		FileSize: int64(len(content)),
	}
}

// generateWhitespaceDelimitedCSV generates a space-delimited dataset, the
// dialect scientific data dumps and log files commonly use.
func generateWhitespaceDelimitedCSV(rows int) BenchData {
	var sb strings.Builder
	sb.WriteString("id value1 value2\n")

	for i := 0; i < rows; i++ {
		sb.WriteString(fmt.Sprintf("%d %d %d\n", i, i*2, i*3))
	}

	content := sb.String()
	return BenchData{
		Name:     fmt.Sprintf("whitespace_%dk", rows/1000),
		Content:  content,
		FileSize: int64(len(content)),
	}
}
