package benchmark

import (
	"strings"
	"testing"

	"github.com/ooyeku/tabreader/pkg"
)

func tokenizeAll(cfg pkg.Config, content string) int {
	input := []byte(content)
	if len(input) == 0 || input[len(input)-1] != '\n' {
		input = append(input, '\n')
	}

	probe := pkg.NewTokenizer(cfg, 1<<16)
	if err := probe.Tokenize(input, 0, -1, true, nil); err != nil {
		return 0
	}
	numCols := len(probe.HeaderNames())
	if numCols == 0 {
		return 0
	}

	t := pkg.NewTokenizer(cfg, numCols)
	if err := t.Tokenize(input, 0, -1, false, nil); err != nil {
		return 0
	}
	return t.NumRows()
}

func BenchmarkTokenizer(b *testing.B) {
	benchData := GenerateBenchmarkData()

	for _, data := range benchData {
		b.Run(data.Name, func(b *testing.B) {
			cfg := pkg.DefaultConfig()
			b.ResetTimer()
			b.SetBytes(data.FileSize)

			for i := 0; i < b.N; i++ {
				tokenizeAll(cfg, data.Content)
			}
		})
	}
}

func BenchmarkTokenizerWithConfig(b *testing.B) {
	configs := map[string]pkg.Config{
		"default": pkg.DefaultConfig(),
		"with_comments": {
			Delimiter:  ',',
			Quote:      '"',
			Comment:    '#',
			HasComment: true,
		},
		"semicolon_delimiter": {
			Delimiter: ';',
			Quote:     '"',
		},
		"fill_extra_cols": {
			Delimiter:     ',',
			Quote:         '"',
			FillExtraCols: true,
		},
	}

	data := generateComplexCSV(10000)

	for name, cfg := range configs {
		b.Run(name, func(b *testing.B) {
			b.ResetTimer()
			b.SetBytes(data.FileSize)

			for i := 0; i < b.N; i++ {
				tokenizeAll(cfg, data.Content)
			}
		})
	}
}

func BenchmarkTokenizerMemory(b *testing.B) {
	sizes := []int{1000, 10000, 100000}

	for _, size := range sizes {
		data := generateSimpleCSV(size)
		b.Run(data.Name, func(b *testing.B) {
			cfg := pkg.DefaultConfig()
			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				tokenizeAll(cfg, data.Content)
			}
		})
	}
}

func BenchmarkReadTable(b *testing.B) {
	data := generateFillValueCSV(10000)

	cfg := pkg.DefaultReaderConfig()
	cfg.FillValues = []pkg.FillRule{{Bad: "NA", Replacement: "0"}}

	b.ResetTimer()
	b.SetBytes(data.FileSize)
	for i := 0; i < b.N; i++ {
		if _, err := pkg.ReadTable(strings.NewReader(data.Content), cfg); err != nil {
			b.Fatal(err)
		}
	}
}
