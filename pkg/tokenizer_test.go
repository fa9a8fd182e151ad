package pkg

import (
	"errors"
	"testing"
)

// tokenizeAll runs a full header-then-body pass the way ReadTable does, and
// returns the materialized rows as strings for easy comparison.
func tokenizeAll(t *testing.T, input string, cfg Config) (names []string, rows [][]string, err error) {
	t.Helper()
	buf := []byte(input)
	if len(buf) == 0 || buf[len(buf)-1] != '\n' {
		buf = append(buf, '\n')
	}

	probe := NewTokenizer(cfg, 1<<16)
	if err := probe.Tokenize(buf, 0, -1, true, nil); err != nil {
		return nil, nil, err
	}
	names = probe.HeaderNames()
	numCols := len(names)
	if numCols == 0 {
		return names, nil, nil
	}

	tok := NewTokenizer(cfg, numCols)
	if err := tok.Tokenize(buf, 1, -1, false, nil); err != nil {
		return names, nil, err
	}

	iters := make([]*ColumnIterator, numCols)
	for i := range iters {
		iters[i] = tok.Column(i)
	}
	rows = make([][]string, tok.NumRows())
	for r := range rows {
		row := make([]string, numCols)
		for i, it := range iters {
			row[i] = string(it.NextField())
		}
		rows[r] = row
	}
	return names, rows, nil
}

func TestTokenizer_SimpleRows(t *testing.T) {
	names, rows, err := tokenizeAll(t, "A,B,C\n1,2,3\n4,5,6\n", DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantNames := []string{"A", "B", "C"}
	if !equalStrings(names, wantNames) {
		t.Errorf("names = %v, want %v", names, wantNames)
	}
	want := [][]string{{"1", "2", "3"}, {"4", "5", "6"}}
	if !equalRows(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestTokenizer_EmptyInput(t *testing.T) {
	names, rows, err := tokenizeAll(t, "\n", DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("names = %v, want none (blank-only line produces no header row)", names)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %v, want zero rows", rows)
	}
}

func TestTokenizer_TrailingDelimiterEmptyField(t *testing.T) {
	_, rows, err := tokenizeAll(t, "A,B\n1,\n2,3\n", DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]string{{"1", ""}, {"2", "3"}}
	if !equalRows(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestTokenizer_QuotedFieldWithDelimiterAndNewline(t *testing.T) {
	_, rows, err := tokenizeAll(t, "A,B\n\"hello,world\",1\n", DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]string{{"hello,world", "1"}}
	if !equalRows(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}

	_, rows, err = tokenizeAll(t, "A,B\n\"line1\nline2\",2\n", DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = [][]string{{"line1\nline2", "2"}}
	if !equalRows(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestTokenizer_CommentLineSkippedBeforeHeader(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HasComment = true
	cfg.Comment = '#'
	names, rows, err := tokenizeAll(t, "#hello\nA,B\n1,2\n", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalStrings(names, []string{"A", "B"}) {
		t.Errorf("names = %v, want [A B]", names)
	}
	if !equalRows(rows, [][]string{{"1", "2"}}) {
		t.Errorf("rows = %v, want [[1 2]]", rows)
	}
}

func TestTokenizer_CommentLineBetweenDataRows(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HasComment = true
	cfg.Comment = '#'
	_, rows, err := tokenizeAll(t, "A,B\n1,2\n#skip this\n3,4\n", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalRows(rows, [][]string{{"1", "2"}, {"3", "4"}}) {
		t.Errorf("rows = %v, want [[1 2] [3 4]]", rows)
	}
}

func TestTokenizer_RaggedRow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FillExtraCols = false
	_, _, err := tokenizeAll(t, "A,B,C\n1,2\n", cfg)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if parseErr.Code != ErrNotEnoughCols {
		t.Errorf("Code = %v, want ErrNotEnoughCols", parseErr.Code)
	}
	if parseErr.Line != 1 {
		t.Errorf("Line = %d, want 1", parseErr.Line)
	}

	cfg.FillExtraCols = true
	_, rows, err := tokenizeAll(t, "A,B,C\n1,2\n", cfg)
	if err != nil {
		t.Fatalf("unexpected error with FillExtraCols=true: %v", err)
	}
	if !equalRows(rows, [][]string{{"1", "2", ""}}) {
		t.Errorf("rows = %v, want [[1 2 \"\"]]", rows)
	}
}

func TestTokenizer_TooManyCols(t *testing.T) {
	cfg := DefaultConfig()
	buf := []byte("A,B\n1,2,3\n")

	probe := NewTokenizer(cfg, 1<<16)
	if err := probe.Tokenize(buf, 0, -1, true, nil); err != nil {
		t.Fatalf("header probe failed: %v", err)
	}
	numCols := len(probe.HeaderNames())

	tok := NewTokenizer(cfg, numCols)
	err := tok.Tokenize(buf, 0, -1, false, nil)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if parseErr.Code != ErrTooManyCols {
		t.Errorf("Code = %v, want ErrTooManyCols", parseErr.Code)
	}
}

func TestTokenizer_ColumnSelectionMask(t *testing.T) {
	cfg := DefaultConfig()
	buf := []byte("A,B,C\n1,2,3\n4,5,6\n")

	tok := NewTokenizer(cfg, 3)
	useCols := []bool{true, false, true}
	if err := tok.Tokenize(buf, 1, -1, false, useCols); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, want 2", tok.NumRows())
	}

	colA := tok.Column(0)
	colA.Start()
	var gotA []string
	for !colA.Finished() {
		gotA = append(gotA, string(colA.NextField()))
	}
	if !equalStrings(gotA, []string{"1", "4"}) {
		t.Errorf("column A = %v, want [1 4]", gotA)
	}

	colB := tok.Column(1)
	colB.Start()
	if !colB.Finished() {
		t.Errorf("masked-out column B should have no stored records")
	}
}

func TestTokenizer_RoundTripDeterministic(t *testing.T) {
	input := "A,B\n1,x\n2,y\n3,z\n"
	_, first, err := tokenizeAll(t, input, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, second, err := tokenizeAll(t, input, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalRows(first, second) {
		t.Errorf("tokenizing the same input twice produced different results: %v vs %v", first, second)
	}
}

func TestTokenizer_ReusedAcrossHeaderAndBodyPasses(t *testing.T) {
	buf := []byte("A,B\n1,2\n3,4\n")
	tok := NewTokenizer(DefaultConfig(), 1<<16)
	if err := tok.Tokenize(buf, 0, -1, true, nil); err != nil {
		t.Fatalf("header pass failed: %v", err)
	}
	if !equalStrings(tok.HeaderNames(), []string{"A", "B"}) {
		t.Errorf("HeaderNames() = %v, want [A B]", tok.HeaderNames())
	}

	tok2 := NewTokenizer(DefaultConfig(), 2)
	if err := tok2.Tokenize(buf, 1, -1, false, nil); err != nil {
		t.Fatalf("body pass failed: %v", err)
	}
	if tok2.NumRows() != 2 {
		t.Errorf("NumRows() = %d, want 2", tok2.NumRows())
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalRows(a, b [][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalStrings(a[i], b[i]) {
			return false
		}
	}
	return true
}
