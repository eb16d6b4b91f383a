/*
Package layer assembles springs into a visualization layer.

A layer binds columns of raw records to aesthetics (x, y, xend, yend are
required; diameter, tension and any visual encoding are optional), splits
the records into panels, and runs the spring computation once per panel.
The result is an expanded table of points, ready for a line renderer,
together with the drawing parameters of the layer.

   l := layer.New(layer.Mapping{
       "x": "from_x", "y": "from_y", "xend": "to_x", "yend": "to_y",
       "colour": "class",
   }, layer.WithN(80), layer.WithArrow(layer.DefaultArrow()))
   points, err := l.Compute(records)

Shape attributes are accepted as mapped columns only. Diameter and tension
are in data units, they are not subject to scaling.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package layer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/springs"
	"github.com/npillmayer/springs/stat"
	"github.com/npillmayer/springs/table"
)

// tracer writes to trace with key 'springs.layer'
func tracer() tracing.Trace {
	return tracing.Select("springs.layer")
}

var (
	// ErrMissingAesthetic indicates a required aesthetic without a column.
	ErrMissingAesthetic = errors.New("missing required aesthetic")
	// ErrNilData indicates a nil record.
	ErrNilData = errors.New("data record must not be nil")
)

// NoGroup is the group of rows for which no group aesthetic is mapped.
const NoGroup = -1

// Mapping binds aesthetics (keys) to column names of the raw data (values).
type Mapping map[string]string

// Record is one row of raw data, an ordered mapping of column names to values.
type Record = *table.Attrs

// LineEnd is the style of line endings.
type LineEnd int

// Line end styles.
const (
	ButtEnd LineEnd = iota
	RoundEnd
	SquareEnd
)

func (e LineEnd) String() string {
	switch e {
	case RoundEnd:
		return "round"
	case SquareEnd:
		return "square"
	}
	return "butt"
}

// LineJoin is the style of line joins.
type LineJoin int

// Line join styles.
const (
	RoundJoin LineJoin = iota
	MitreJoin
	BevelJoin
)

func (j LineJoin) String() string {
	switch j {
	case MitreJoin:
		return "mitre"
	case BevelJoin:
		return "bevel"
	}
	return "round"
}

// ArrowEnds tells which ends of a spring get an arrow head.
type ArrowEnds int

// Arrow ends.
const (
	LastEnd ArrowEnds = iota
	FirstEnd
	BothEnds
)

// Arrow describes arrow heads decorating springs.
type Arrow struct {
	Angle  float64   // angle of the head's sides to the shaft, in degrees
	Length float64   // length of the head's sides, in device units
	Ends   ArrowEnds // where to draw heads
	Closed bool      // closed triangle instead of two open strokes
}

// DefaultArrow is an open arrow head at the end of a spring.
func DefaultArrow() *Arrow {
	return &Arrow{Angle: 30, Length: 10, Ends: LastEnd}
}

// Geom holds the drawing parameters of a layer.
type Geom struct {
	Arrow      *Arrow // nil for no arrow heads
	LineEnd    LineEnd
	LineJoin   LineJoin
	LineMitre  float64
	NaRm       bool // drop incomplete rows silently
	ShowLegend bool
}

// Layer is a spring layer: an aesthetics mapping, the parameters of the
// spring computation and the drawing parameters.
type Layer struct {
	Mapping Mapping
	Params  stat.Params
	Geom    Geom
	facet   string // column splitting the data into panels, "" for one panel
}

// Option configures a Layer.
type Option func(*Layer)

// WithN sets the number of points per revolution.
func WithN(n int) Option {
	return func(l *Layer) {
		l.Params.N = stat.N(n)
	}
}

// WithWorkers sets the number of goroutines used to generate springs.
func WithWorkers(w int) Option {
	return func(l *Layer) {
		l.Params.Workers = w
	}
}

// WithArrow decorates springs with arrow heads.
func WithArrow(a *Arrow) Option {
	return func(l *Layer) {
		l.Geom.Arrow = a
	}
}

// WithLineEnd sets the line end style.
func WithLineEnd(e LineEnd) Option {
	return func(l *Layer) {
		l.Geom.LineEnd = e
	}
}

// WithLineJoin sets the line join style.
func WithLineJoin(j LineJoin) Option {
	return func(l *Layer) {
		l.Geom.LineJoin = j
	}
}

// WithNaRm removes rows with missing positions without complaining.
func WithNaRm(narm bool) Option {
	return func(l *Layer) {
		l.Geom.NaRm = narm
	}
}

// WithShowLegend includes the layer in legends.
func WithShowLegend(show bool) Option {
	return func(l *Layer) {
		l.Geom.ShowLegend = show
	}
}

// WithFacet splits the data into one panel per distinct value of a column.
func WithFacet(column string) Option {
	return func(l *Layer) {
		l.facet = column
	}
}

// New creates a spring layer. It does not validate anything, errors are
// reported by Compute.
func New(mapping Mapping, opts ...Option) *Layer {
	l := &Layer{
		Mapping: mapping,
		Geom: Geom{
			LineEnd:    ButtEnd,
			LineJoin:   RoundJoin,
			LineMitre:  10,
			ShowLegend: true,
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Compute runs the spring computation on raw data: it maps columns to
// aesthetics, splits the rows into panels and expands every panel. Panels
// are returned in order of first appearance, concatenated.
//
// Parameters are validated once, before any panel is touched. If any panel
// fails, no points are returned.
func (l *Layer) Compute(data []Record) (table.Points, error) {
	if err := l.checkMapping(); err != nil {
		return nil, err
	}
	params, err := stat.NormalizeParams(l.Params)
	if err != nil {
		return nil, err
	}
	rows, err := l.mapRows(data)
	if err != nil {
		return nil, err
	}
	panels := splitPanels(rows)
	parts := make([]table.Points, len(panels))
	for i, panel := range panels {
		norm, err := stat.NormalizeRows(panel)
		if err != nil {
			return nil, fmt.Errorf("panel %d: %w", i+1, err)
		}
		if parts[i], err = stat.ComputePanel(norm, *params.N, params.Workers); err != nil {
			return nil, fmt.Errorf("panel %d: %w", i+1, err)
		}
	}
	points := table.Concat(parts...)
	tracer().Infof("layer: %d records, %d panels, %d points", len(data), len(panels), len(points))
	return points, nil
}

// MustCompute is like Compute, but panics on error.
func (l *Layer) MustCompute(data []Record) table.Points {
	pts, err := l.Compute(data)
	if err != nil {
		panic(err)
	}
	return pts
}

func (l *Layer) checkMapping() error {
	for _, aes := range stat.RequiredAes {
		if _, ok := l.Mapping[aes]; !ok {
			tracer().Errorf("aesthetic %q is not mapped", aes)
			return fmt.Errorf("%w: %s", ErrMissingAesthetic, aes)
		}
	}
	return nil
}

// mapRows converts raw records to connection rows. Positional aesthetics go
// to the fields of a row, all others to its attributes. Records with missing
// or non-finite positions are dropped.
func (l *Layer) mapRows(data []Record) (table.Table, error) {
	rows := make(table.Table, 0, len(data))
	dropped := 0
	for i, rec := range data {
		if rec == nil {
			return nil, fmt.Errorf("record %d: %w", i+1, ErrNilData)
		}
		var pos [4]float64
		complete := true
		for k, aes := range stat.RequiredAes {
			col := l.Mapping[aes]
			if !rec.Has(col) {
				return nil, fmt.Errorf("%w: %s (column %q absent in record %d)",
					ErrMissingAesthetic, aes, col, i+1)
			}
			v, ok, err := rec.Float(col)
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", i+1, springs.NotNumeric(aes, mustGet(rec, col)))
			}
			if !ok || !springs.IsFinite(v) {
				complete = false
			}
			pos[k] = v
		}
		if !complete {
			dropped++
			continue
		}
		row := table.Row{X: pos[0], Y: pos[1], XEnd: pos[2], YEnd: pos[3], Attrs: table.NewAttrs()}
		for _, aes := range l.aesthetics() {
			if v, ok := rec.Get(l.Mapping[aes]); ok {
				row.Attrs.Set(aes, v)
			}
		}
		if !row.Attrs.Has(table.ColGroup) {
			row.Attrs.Set(table.ColGroup, NoGroup)
		}
		if l.facet != "" {
			v, _ := rec.Get(l.facet)
			row.Attrs.Set(table.ColPanel, v)
		}
		rows = append(rows, row)
	}
	if dropped > 0 && !l.Geom.NaRm {
		tracer().Errorf("removed %d rows containing missing values", dropped)
	}
	return rows, nil
}

// aesthetics returns the non-positional mapped aesthetics: shape aesthetics
// first, then the others sorted by name.
func (l *Layer) aesthetics() []string {
	var aes []string
	for _, a := range stat.OptionalAes {
		if _, ok := l.Mapping[a]; ok {
			aes = append(aes, a)
		}
	}
	var others []string
	for a := range l.Mapping {
		if table.IsPositional(a) || a == table.ColDiameter || a == table.ColTension {
			continue
		}
		others = append(others, a)
	}
	sort.Strings(others)
	return append(aes, others...)
}

func mustGet(rec Record, col string) interface{} {
	v, _ := rec.Get(col)
	return v
}
