package stat

import (
	"fmt"

	"github.com/npillmayer/springs"
	"github.com/npillmayer/springs/table"
)

// Defaults for shape columns absent from a row.
const (
	DefaultDiameter = 1.0
	DefaultTension  = 0.75
)

// NormalizeRows prepares a panel's rows for ComputePanel. Rows are never
// modified in place; the result is a normalized copy.
//
//   - If any two rows share a group value, every row's group is rewritten
//     to "<group>-<i>", with i the 1-based position of the row.
//   - Absent diameters are set to 1, a diameter of 0 is an error.
//   - Absent tensions are set to 0.75, a tension <= 0 is an error.
//
// Shape columns holding nil count as absent. Non-numeric or non-finite shape
// values are errors as well. Any error fails the whole batch, and the error
// names the first offending row.
func NormalizeRows(rows table.Table) (table.Table, error) {
	norm := rows.Clone()
	if hasDuplicateGroups(norm) {
		tracer().Debugf("duplicate groups in batch of %d rows, making them unique", len(norm))
		for i, row := range norm {
			if g, ok := row.Attrs.Get(table.ColGroup); ok {
				row.Attrs.Set(table.ColGroup, fmt.Sprintf("%v-%d", g, i+1))
			}
		}
	}
	for i, row := range norm {
		d, err := shape(row.Attrs, table.ColDiameter, DefaultDiameter)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if d == 0 {
			tracer().Errorf("row %d: diameter of 0 is not permitted", i+1)
			return nil, fmt.Errorf("row %d: %w", i+1, springs.ErrZeroDiameter)
		}
	}
	for i, row := range norm {
		t, err := shape(row.Attrs, table.ColTension, DefaultTension)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if !(t > 0) {
			tracer().Errorf("row %d: tension must be greater than 0, is %g", i+1, t)
			return nil, fmt.Errorf("row %d: %w", i+1, springs.ErrInvalidTension)
		}
	}
	return norm, nil
}

// shape resolves a shape column to a finite number, setting the default if
// the column is absent.
func shape(attrs *table.Attrs, col string, deflt float64) (float64, error) {
	v, present, err := attrs.Float(col)
	if err != nil {
		raw, _ := attrs.Get(col)
		return 0, springs.NotNumeric(col, raw)
	}
	if !present {
		attrs.Set(col, deflt)
		return deflt, nil
	}
	if !springs.IsFinite(v) {
		return 0, springs.NotFinite(col, v)
	}
	attrs.Set(col, v)
	return v, nil
}

func hasDuplicateGroups(rows table.Table) bool {
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		g, ok := row.Attrs.Get(table.ColGroup)
		if !ok {
			continue
		}
		key := fmt.Sprintf("%T:%v", g, g)
		if seen[key] {
			return true
		}
		seen[key] = true
	}
	return false
}
