package pkg

import (
	"errors"
	"strings"
	"testing"
)

func TestReadTable_AllIntColumns(t *testing.T) {
	table, err := ReadTable(strings.NewReader("A,B,C\n1,2,3\n4,5,6\n"), DefaultReaderConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalStrings(table.Headers, []string{"A", "B", "C"}) {
		t.Fatalf("Headers = %v, want [A B C]", table.Headers)
	}
	for name, want := range map[string][]int64{"A": {1, 4}, "B": {2, 5}, "C": {3, 6}} {
		col := table.Columns[name]
		if col == nil {
			t.Fatalf("column %q missing", name)
		}
		if col.Kind != TypeInt {
			t.Fatalf("column %q Kind = %v, want TypeInt", name, col.Kind)
		}
		if len(col.Ints) != len(want) || col.Ints[0] != want[0] || col.Ints[1] != want[1] {
			t.Errorf("column %q Ints = %v, want %v", name, col.Ints, want)
		}
	}
}

func TestReadTable_ColumnFallsBackToString(t *testing.T) {
	table, err := ReadTable(strings.NewReader("x,y\n1,2.5\n3,foo\n"), DefaultReaderConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x := table.Columns["x"]
	if x.Kind != TypeInt || !equalInt64(x.Ints, []int64{1, 3}) {
		t.Errorf("column x = %+v, want int [1 3]", x)
	}
	y := table.Columns["y"]
	if y.Kind != TypeString {
		t.Fatalf("column y Kind = %v, want TypeString", y.Kind)
	}
	if !equalStrings(y.Strings, []string{"2.5", "foo"}) {
		t.Errorf("column y Strings = %v, want [2.5 foo]", y.Strings)
	}
}

func TestReadTable_FillValueMasksColumn(t *testing.T) {
	cfg := DefaultReaderConfig()
	cfg.FillValues = []FillRule{{Bad: "", Replacement: "99", Columns: []string{"b"}}}
	table, err := ReadTable(strings.NewReader("a,b\n1,\n2,3\n"), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := table.Columns["b"]
	if b.Kind != TypeInt || !equalInt64(b.Ints, []int64{99, 3}) {
		t.Fatalf("column b = %+v, want int [99 3]", b)
	}
	if !b.Masked || !boolsEqual(b.Mask, []bool{true, false}) {
		t.Errorf("column b Mask = %v (Masked=%v), want [true false]", b.Mask, b.Masked)
	}
}

func TestReadTable_CommentSkippedBeforeHeaderCounting(t *testing.T) {
	cfg := DefaultReaderConfig()
	cfg.Dialect.HasComment = true
	cfg.Dialect.Comment = '#'
	table, err := ReadTable(strings.NewReader("#hello\nA,B\n1,2\n"), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalStrings(table.Headers, []string{"A", "B"}) {
		t.Fatalf("Headers = %v, want [A B]", table.Headers)
	}
}

func TestReadTable_QuotedFieldWithEmbeddedDelimiter(t *testing.T) {
	table, err := ReadTable(strings.NewReader("A,B\n\"hello,world\",1\n"), DefaultReaderConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := table.Columns["A"]
	if a.Kind != TypeString || !equalStrings(a.Strings, []string{"hello,world"}) {
		t.Fatalf("column A = %+v, want string [hello,world]", a)
	}
	b := table.Columns["B"]
	if b.Kind != TypeInt || !equalInt64(b.Ints, []int64{1}) {
		t.Fatalf("column B = %+v, want int [1]", b)
	}
}

func TestReadTable_RaggedRowFailsWithRowIndex(t *testing.T) {
	cfg := DefaultReaderConfig()
	cfg.Dialect.FillExtraCols = false
	_, err := ReadTable(strings.NewReader("A,B,C\n1,2\n"), cfg)
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
}

func TestReadTable_NoHeaderAutoGeneratesNames(t *testing.T) {
	cfg := DefaultReaderConfig()
	cfg.HasHeader = false
	cfg.DataStart = 0
	table, err := ReadTable(strings.NewReader("1,2,3\n4,5,6\n"), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalStrings(table.Headers, []string{"col1", "col2", "col3"}) {
		t.Fatalf("Headers = %v, want [col1 col2 col3]", table.Headers)
	}
}

func TestReadTable_IncludeExcludeNames(t *testing.T) {
	cfg := DefaultReaderConfig()
	cfg.ExcludeNames = []string{"b"}
	table, err := ReadTable(strings.NewReader("a,b,c\n1,2,3\n"), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalStrings(table.Headers, []string{"a", "c"}) {
		t.Fatalf("Headers = %v, want [a c]", table.Headers)
	}
	if _, ok := table.Columns["b"]; ok {
		t.Errorf("excluded column b present in Columns")
	}
}

func TestReadTable_DataEndNegativeTrimsTail(t *testing.T) {
	cfg := DefaultReaderConfig()
	cfg.DataEnd = -1
	table, err := ReadTable(strings.NewReader("a\n1\n2\n3\n"), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := table.Columns["a"]
	if !equalInt64(a.Ints, []int64{1, 2}) {
		t.Errorf("column a = %v, want [1 2] (last row trimmed)", a.Ints)
	}
}

func TestReadTable_EmptyInputProducesEmptyTable(t *testing.T) {
	cfg := DefaultReaderConfig()
	table, err := ReadTable(strings.NewReader(""), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Rows) != 0 {
		t.Errorf("Rows = %v, want none", table.Rows)
	}
}

func equalInt64(a, b []int64) bool {
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

func boolsEqual(a, b []bool) bool {
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
