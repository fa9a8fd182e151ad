package pkg

// Config holds the dialect a Tokenizer is constructed with: the byte-level
// grammar of the delimited text (delimiter, quote, optional comment) plus
// the ragged-row policy.
type Config struct {
	Delimiter     byte // field separator, default ','
	Quote         byte // quote character, default '"'
	Comment       byte // comment leader; only honored when HasComment is true
	HasComment    bool
	FillExtraCols bool // pad short rows with empty fields instead of erroring
}

// DefaultConfig returns the comma-delimited, double-quoted, no-comment,
// strict-row-width dialect.
func DefaultConfig() Config {
	return Config{
		Delimiter:     ',',
		Quote:         '"',
		HasComment:    false,
		FillExtraCols: false,
	}
}

// ReaderConfig controls how ReadTable locates the header and data rows and
// which columns and fill-value rules apply during materialization.
type ReaderConfig struct {
	Dialect Config

	// HeaderStart is the 0-based index (counting only non-comment lines) of
	// the header row. HasHeader false means: no header row present, column
	// names are auto-generated col1, col2, ...
	HeaderStart int
	HasHeader   bool

	// DataStart is the 0-based index (same counting) of the first data row.
	DataStart int

	// DataEnd bounds the number of materialized data rows. Zero means read
	// to EOF. A positive value is an exclusive upper bound on row count. A
	// negative value drops that many rows from the tail during
	// materialization only (the tokenizer still scans to EOF; see
	// spec.md open question on data_end).
	DataEnd int

	Names        []string // explicit column names, overrides header/auto names
	IncludeNames []string // if non-empty, only these columns are retained
	ExcludeNames []string // these columns are dropped even if included

	FillValues       []FillRule
	FillIncludeNames []string
	FillExcludeNames []string
}

// DefaultReaderConfig is the conventional "first line is the header, read to
// EOF" configuration.
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{
		Dialect:     DefaultConfig(),
		HeaderStart: 0,
		HasHeader:   true,
		DataStart:   1,
	}
}

// FillRule substitutes Replacement for any field whose raw bytes equal Bad
// (byte-exact; see spec.md's open question on fill-value key casing). If
// Columns is empty the rule substitutes in every column, and marks the row
// masked only in columns eligible under FillIncludeNames/FillExcludeNames;
// otherwise it applies only to the named columns, which are masked
// regardless of the include/exclude sets.
type FillRule struct {
	Bad         string
	Replacement string
	Columns     []string
}
