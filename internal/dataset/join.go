package dataset

import (
	"github.com/rotisserie/eris"
)

// InnerJoin merges left and right on the named key column, pulling the given
// right-side columns into the output. Standard relational semantics: a left
// row survives only if its key appears on the right, and duplicate right keys
// fan out one output row per match. Output columns are the left header plus
// the pulled columns (the key itself is not duplicated).
func InnerJoin(left, right *Frame, key string, pull []string) (*Frame, error) {
	if err := left.RequireColumns(key); err != nil {
		return nil, eris.Wrap(err, "join: left frame")
	}
	required := append([]string{key}, pull...)
	if err := right.RequireColumns(required...); err != nil {
		return nil, eris.Wrap(err, "join: right frame")
	}

	// Index right rows by key, preserving duplicates for fan-out.
	rightByKey := make(map[string][][]string)
	for _, row := range right.Rows {
		k := right.Get(row, key)
		rightByKey[k] = append(rightByKey[k], row)
	}

	header := append([]string{}, left.Header...)
	for _, col := range pull {
		if col == key {
			continue
		}
		header = append(header, col)
	}

	var rows [][]string
	for _, lrow := range left.Rows {
		k := left.Get(lrow, key)
		for _, rrow := range rightByKey[k] {
			out := append([]string{}, lrow...)
			for _, col := range pull {
				if col == key {
					continue
				}
				out = append(out, right.Get(rrow, col))
			}
			rows = append(rows, out)
		}
	}

	return NewFrame(header, rows), nil
}
