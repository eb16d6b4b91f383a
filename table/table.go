// Package table holds the tabular data flowing through the spring pipeline:
// connection rows going in, generated points coming out.
//
// Rows and points carry a fixed set of positional fields plus an open-ended,
// ordered mapping of further columns (shape attributes, grouping, visual
// encodings, metadata). These further columns are opaque to the geometry and
// are replicated onto every point generated from a row.
package table

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/springs"
)

// Names of well-known columns.
const (
	ColX        = "x"
	ColY        = "y"
	ColXEnd     = "xend"
	ColYEnd     = "yend"
	ColDiameter = "diameter"
	ColTension  = "tension"
	ColGroup    = "group"
	ColPanel    = "PANEL"
)

// Positional lists the columns held as fields of a Row instead of Attrs.
var Positional = []string{ColX, ColY, ColXEnd, ColYEnd}

// IsPositional is a predicate: is column name one of x, y, xend, yend?
func IsPositional(name string) bool {
	for _, p := range Positional {
		if p == name {
			return true
		}
	}
	return false
}

// Row is a connection: start point, end point and non-positional columns.
type Row struct {
	X, Y       float64
	XEnd, YEnd float64
	Attrs      *Attrs
}

// From returns the start point of a connection.
func (r Row) From() springs.Pair {
	return springs.P(r.X, r.Y)
}

// To returns the end point of a connection.
func (r Row) To() springs.Pair {
	return springs.P(r.XEnd, r.YEnd)
}

func (r Row) String() string {
	return fmt.Sprintf("%s -> %s %s", r.From(), r.To(), r.Attrs)
}

// Table is an ordered set of connection rows.
type Table []Row

// Columns returns the names of the non-positional columns of t, in order of
// first appearance.
func (t Table) Columns() []string {
	seen := make(map[string]bool)
	var cols []string
	for _, row := range t {
		row.Attrs.Each(func(name string, _ interface{}) {
			if !seen[name] {
				seen[name] = true
				cols = append(cols, name)
			}
		})
	}
	return cols
}

// Clone returns a copy of t with cloned attributes, leaving t untouched.
func (t Table) Clone() Table {
	c := make(Table, len(t))
	for i, row := range t {
		c[i] = row
		c[i].Attrs = row.Attrs.Clone()
	}
	return c
}

// Point is a generated point of a spring, carrying the non-positional
// columns of its source row.
type Point struct {
	X, Y  float64
	Attrs *Attrs
}

// Pair returns the position of a point.
func (p Point) Pair() springs.Pair {
	return springs.P(p.X, p.Y)
}

// Points is an expanded table of generated points.
type Points []Point

// Expand attaches a copy of attrs to every position of a polyline.
func Expand(positions []springs.Pair, attrs *Attrs) Points {
	pts := make(Points, len(positions))
	for i, pos := range positions {
		pts[i] = Point{X: pos.X(), Y: pos.Y(), Attrs: attrs.Clone()}
	}
	return pts
}

// Concat appends point tables, in argument order.
func Concat(parts ...Points) Points {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	all := make(Points, 0, n)
	for _, p := range parts {
		all = append(all, p...)
	}
	return all
}

// Polyline is a run of points sharing a group, in drawing order.
type Polyline struct {
	Group    interface{} // value of the group column, nil if absent
	Panel    interface{} // value of the PANEL column, nil if absent
	Attrs    *Attrs      // columns of the first point of the run
	Vertices []springs.Pair
}

// Polylines splits pts into polylines, one for every run of consecutive
// points with equal group and panel values.
func (pts Points) Polylines() []Polyline {
	var lines []Polyline
	for i, p := range pts {
		g, _ := p.Attrs.Get(ColGroup)
		pnl, _ := p.Attrs.Get(ColPanel)
		if i == 0 || !reflect.DeepEqual(g, lines[len(lines)-1].Group) ||
			!reflect.DeepEqual(pnl, lines[len(lines)-1].Panel) {
			lines = append(lines, Polyline{Group: g, Panel: pnl, Attrs: p.Attrs})
		}
		cur := &lines[len(lines)-1]
		cur.Vertices = append(cur.Vertices, p.Pair())
	}
	return lines
}
