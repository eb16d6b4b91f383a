package stat

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/npillmayer/springs/coil"
	"github.com/npillmayer/springs/table"
)

// ComputePanel expands normalized rows into springs with n points per
// revolution. Every generated point carries a copy of the non-positional
// columns of its row. Points are concatenated in row order, and within a
// row in traversal order.
//
// With workers > 1 the springs are generated concurrently; the result is the
// same as for a sequential run. If generating any spring fails, no points
// are returned.
func ComputePanel(rows table.Table, n int, workers int) (table.Points, error) {
	parts := make([]table.Points, len(rows))
	if workers <= 1 {
		for i, row := range rows {
			pts, err := computeRow(i, row, n)
			if err != nil {
				return nil, err
			}
			parts[i] = pts
		}
	} else {
		var g errgroup.Group
		g.SetLimit(workers)
		for i, row := range rows {
			i, row := i, row
			g.Go(func() error {
				pts, err := computeRow(i, row, n)
				parts[i] = pts
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}
	points := table.Concat(parts...)
	tracer().Infof("expanded %d rows into %d points", len(rows), len(points))
	return points, nil
}

func computeRow(i int, row table.Row, n int) (table.Points, error) {
	d, err := resolved(row.Attrs, table.ColDiameter)
	if err != nil {
		return nil, fmt.Errorf("row %d: %w", i+1, err)
	}
	t, err := resolved(row.Attrs, table.ColTension)
	if err != nil {
		return nil, fmt.Errorf("row %d: %w", i+1, err)
	}
	positions, err := coil.Generate(coil.Segment{
		From:     row.From(),
		To:       row.To(),
		Diameter: d,
		Tension:  t,
	}, n)
	if err != nil {
		return nil, fmt.Errorf("row %d: %w", i+1, err)
	}
	return table.Expand(positions, row.Attrs), nil
}

// resolved reads a shape column which NormalizeRows has set.
func resolved(attrs *table.Attrs, col string) (float64, error) {
	v, ok, err := attrs.Float(col)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("column %q missing, rows have not been normalized", col)
	}
	return v, nil
}

// Run performs the complete computation for one panel: it normalizes params
// and rows, then expands the rows.
func Run(rows table.Table, params Params) (table.Points, error) {
	params, err := NormalizeParams(params)
	if err != nil {
		return nil, err
	}
	rows, err = NormalizeRows(rows)
	if err != nil {
		return nil, err
	}
	return ComputePanel(rows, *params.N, params.Workers)
}

// MustRun is like Run, but panics on invalid input.
func MustRun(rows table.Table, params Params) table.Points {
	pts, err := Run(rows, params)
	if err != nil {
		panic(err)
	}
	return pts
}
