package pkg

import (
	"fmt"
	"io"
)

// ReadTable is the orchestration entry point the rest of the repository
// (CLI, REPL, exporters) is built on: it drives the Tokenizer through its
// header pass and body pass, resolves column selection and fill rules, and
// materializes every retained column into a Table.
func ReadTable(r io.Reader, cfg ReaderConfig) (*Table, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if len(input) == 0 || input[len(input)-1] != '\n' {
		input = append(input, '\n')
	}

	names, numCols, err := discoverNames(input, cfg)
	if err != nil {
		return nil, err
	}

	useCols, retained := resolveUseCols(names, cfg.IncludeNames, cfg.ExcludeNames)

	body := NewTokenizer(cfg.Dialect, numCols)
	if err := body.Tokenize(input, cfg.DataStart, bodyEndLine(cfg.DataEnd), false, useCols); err != nil {
		return nil, err
	}

	numRows := body.NumRows()
	truncated := truncatedRowCount(numRows, cfg.DataEnd)

	fillEligible := resolveFillNames(retained, cfg.FillIncludeNames, cfg.FillExcludeNames)

	table := NewTable(retained)
	table.Columns = make(map[string]*Column, len(retained))

	for i, name := range names {
		if !useCols[i] {
			continue
		}
		fillMap := resolveFillForColumn(name, cfg.FillValues, fillEligible)
		col := MaterializeColumn(name, body.Column(i), truncated, fillMap)
		table.Columns[name] = col
	}

	rows := make([][]string, truncated)
	for r := 0; r < truncated; r++ {
		row := make([]string, len(retained))
		for c, name := range retained {
			row[c] = cellString(table.Columns[name], r)
		}
		rows[r] = row
	}
	table.Rows = rows
	for i := range table.types {
		if col, ok := table.Columns[table.Headers[i]]; ok {
			table.types[i] = col.Kind
		}
	}

	return table, nil
}

// discoverNames resolves column names and width without consuming a body
// pass: explicit Names win outright; otherwise a header-mode pass over the
// declared header row yields both; absent a header the tokenizer still
// runs one header-mode pass over the first data line purely to count
// fields, per spec.md's header fast-path, and col1..colN names are
// synthesized.
func discoverNames(input []byte, cfg ReaderConfig) ([]string, int, error) {
	if len(cfg.Names) > 0 {
		return cfg.Names, len(cfg.Names), nil
	}

	probeStart := cfg.HeaderStart
	if !cfg.HasHeader {
		probeStart = cfg.DataStart
	}

	probe := NewTokenizer(cfg.Dialect, headerProbeWidth)
	if err := probe.Tokenize(input, probeStart, -1, true, nil); err != nil {
		return nil, 0, err
	}
	fields := probe.HeaderNames()
	numCols := len(fields)

	if cfg.HasHeader {
		return fields, numCols, nil
	}

	names := make([]string, numCols)
	for i := range names {
		names[i] = fmt.Sprintf("col%d", i+1)
	}
	return names, numCols, nil
}

// headerProbeWidth bounds the header-fast-path Tokenizer's declared column
// count. Header mode never writes to the per-column buffers this sizes, so
// the only requirement is that it exceed any realistic row width.
const headerProbeWidth = 1 << 16

// resolveUseCols builds the per-column retention mask from include/exclude
// name sets and returns the ordered list of retained names.
func resolveUseCols(names, include, exclude []string) ([]bool, []string) {
	mask := make([]bool, len(names))
	var includeSet map[string]bool
	if len(include) > 0 {
		includeSet = make(map[string]bool, len(include))
		for _, n := range include {
			includeSet[n] = true
		}
	}
	excludeSet := make(map[string]bool, len(exclude))
	for _, n := range exclude {
		excludeSet[n] = true
	}

	retained := make([]string, 0, len(names))
	for i, n := range names {
		keep := true
		if includeSet != nil && !includeSet[n] {
			keep = false
		}
		if excludeSet[n] {
			keep = false
		}
		mask[i] = keep
		if keep {
			retained = append(retained, n)
		}
	}
	return mask, retained
}

// bodyEndLine translates ReaderConfig.DataEnd into the Tokenizer's endLine
// parameter: a positive bound is passed through so the tokenizer itself
// stops early; zero or negative means scan to EOF, with a negative value's
// tail-trim applied only at materialization time (see truncatedRowCount).
func bodyEndLine(dataEnd int) int {
	if dataEnd > 0 {
		return dataEnd
	}
	return -1
}

// truncatedRowCount applies a negative DataEnd's tail-trim after the
// tokenizer has already scanned to EOF.
func truncatedRowCount(numRows, dataEnd int) int {
	if dataEnd < 0 {
		n := numRows + dataEnd
		if n < 0 {
			return 0
		}
		return n
	}
	return numRows
}

func cellString(col *Column, row int) string {
	if col == nil || row >= col.Len() {
		return ""
	}
	switch col.Kind {
	case TypeInt:
		return fmt.Sprintf("%d", col.Ints[row])
	case TypeFloat:
		return fmt.Sprintf("%g", col.Floats[row])
	default:
		return col.Strings[row]
	}
}
