package pkg

// ColumnType is the dtype a column settled on after the materializer's
// type-fallback chain.
type ColumnType int

const (
	TypeInt ColumnType = iota
	TypeFloat
	TypeString
)

func (k ColumnType) String() string {
	switch k {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	default:
		return "string"
	}
}

// Column is the materialized output of one logical column: exactly one of
// Ints/Floats/Strings is populated, selected by Kind. Mask always has the
// same length as the value slice and reports which rows a fill rule marked
// as masked; Masked is true when any row is marked. A row substituted by a
// rule whose masking does not cover this column is not marked.
type Column struct {
	Name    string
	Kind    ColumnType
	Ints    []int64
	Floats  []float64
	Strings []string
	Masked  bool
	Mask    []bool
}

// Len returns the number of materialized rows in the column.
func (c *Column) Len() int {
	switch c.Kind {
	case TypeInt:
		return len(c.Ints)
	case TypeFloat:
		return len(c.Floats)
	default:
		return len(c.Strings)
	}
}

// fillEntry is a resolved fill-value substitution for one column.
type fillEntry struct {
	replacement string
	masked      bool
}

// resolveFillNames computes the globally-eligible fill-masking column set:
// every declared column, intersected with include (if supplied), minus
// exclude.
func resolveFillNames(allNames, include, exclude []string) map[string]bool {
	eligible := make(map[string]bool, len(allNames))
	if len(include) == 0 {
		for _, n := range allNames {
			eligible[n] = true
		}
	} else {
		includeSet := make(map[string]bool, len(include))
		for _, n := range include {
			includeSet[n] = true
		}
		for _, n := range allNames {
			if includeSet[n] {
				eligible[n] = true
			}
		}
	}
	for _, n := range exclude {
		delete(eligible, n)
	}
	return eligible
}

// resolveFillForColumn builds the bad-value lookup table for one column,
// matching fill-value keys byte-exact (see spec.md's open question on
// case-sensitivity: this repository documents and keeps byte-exact
// matching rather than guessing at case-insensitivity).
func resolveFillForColumn(colName string, rules []FillRule, fillEligible map[string]bool) map[string]fillEntry {
	if len(rules) == 0 {
		return nil
	}
	out := make(map[string]fillEntry, len(rules))
	for _, r := range rules {
		applies := false
		masked := false
		if len(r.Columns) > 0 {
			for _, c := range r.Columns {
				if c == colName {
					applies = true
					masked = true
					break
				}
			}
		} else {
			applies = true
			masked = fillEligible[colName]
		}
		if applies {
			out[r.Bad] = fillEntry{replacement: r.Replacement, masked: masked}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// applyFill substitutes raw per fillMap, reporting whether this row should
// be marked masked.
func applyFill(raw []byte, fillMap map[string]fillEntry) (value []byte, masked bool) {
	if fillMap == nil {
		return raw, false
	}
	if entry, ok := fillMap[string(raw)]; ok {
		return []byte(entry.replacement), entry.masked
	}
	return raw, false
}

// MaterializeColumn runs the int -> float -> string type-fallback chain
// over length rows of iter, applying fillMap during every pass. On a
// conversion failure the whole column restarts from row 0 under the next
// candidate type; string materialization always succeeds.
func MaterializeColumn(name string, iter *ColumnIterator, length int, fillMap map[string]fillEntry) *Column {
	if ints, mask, ok := materializeInts(iter, length, fillMap); ok {
		return &Column{Name: name, Kind: TypeInt, Ints: ints, Masked: anyTrue(mask), Mask: mask}
	}
	if floats, mask, ok := materializeFloats(iter, length, fillMap); ok {
		return &Column{Name: name, Kind: TypeFloat, Floats: floats, Masked: anyTrue(mask), Mask: mask}
	}
	strs, mask := materializeStrings(iter, length, fillMap)
	return &Column{Name: name, Kind: TypeString, Strings: strs, Masked: anyTrue(mask), Mask: mask}
}

func materializeInts(iter *ColumnIterator, length int, fillMap map[string]fillEntry) ([]int64, []bool, bool) {
	iter.Start()
	out := make([]int64, 0, length)
	mask := make([]bool, 0, length)
	for row := 0; row < length; row++ {
		if iter.Finished() {
			break
		}
		raw := iter.NextField()
		value, masked := applyFill(raw, fillMap)
		n, err := ParseInt(value)
		if err != nil {
			return nil, nil, false
		}
		out = append(out, n)
		mask = append(mask, masked)
	}
	return out, mask, true
}

func materializeFloats(iter *ColumnIterator, length int, fillMap map[string]fillEntry) ([]float64, []bool, bool) {
	iter.Start()
	out := make([]float64, 0, length)
	mask := make([]bool, 0, length)
	for row := 0; row < length; row++ {
		if iter.Finished() {
			break
		}
		raw := iter.NextField()
		value, masked := applyFill(raw, fillMap)
		f, err := ParseFloat(value)
		if err != nil {
			return nil, nil, false
		}
		out = append(out, f)
		mask = append(mask, masked)
	}
	return out, mask, true
}

func materializeStrings(iter *ColumnIterator, length int, fillMap map[string]fillEntry) ([]string, []bool) {
	iter.Start()
	out := make([]string, 0, length)
	mask := make([]bool, 0, length)
	for row := 0; row < length; row++ {
		if iter.Finished() {
			break
		}
		raw := iter.NextField()
		value, masked := applyFill(raw, fillMap)
		// A Go string is just bytes; decoding here can never fail the way
		// a validating UTF-8 decoder could, so there is no lossy fallback
		// path to implement (see spec.md §7's unreachable string-conversion
		// error class).
		out = append(out, string(value))
		mask = append(mask, masked)
	}
	return out, mask
}

func anyTrue(mask []bool) bool {
	for _, m := range mask {
		if m {
			return true
		}
	}
	return false
}
