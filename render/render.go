// Package render strokes the polylines of a spring layer onto a gg drawing
// context. It stands in for a full plotting backend: data coordinates are
// mapped linearly into the canvas, and a few per-row columns (colour, alpha,
// linewidth) are honoured.
package render

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/gogpu/gg"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/springs"
	"github.com/npillmayer/springs/layer"
	"github.com/npillmayer/springs/table"
)

// tracer writes to trace with key 'springs.render'
func tracer() tracing.Trace {
	return tracing.Select("springs.render")
}

// Viewport is the target area of a drawing, in device units.
type Viewport struct {
	Width, Height float64
	Margin        float64
	// Limits restricts the data range shown. If nil, the extent of the
	// points is used.
	Limits *polyclip.Rectangle
}

// Transform returns the affine transformation from data space into the
// device space of vp, mapping the rectangle box to the area inside the
// margins. The y-axis is flipped, data y grows upwards.
func Transform(box polyclip.Rectangle, vp Viewport) springs.AT {
	w := box.Max.X - box.Min.X
	h := box.Max.Y - box.Min.Y
	sx, sy := 1.0, 1.0
	if w > 0 {
		sx = (vp.Width - 2*vp.Margin) / w
	}
	if h > 0 {
		sy = (vp.Height - 2*vp.Margin) / h
	}
	return springs.Translation(springs.P(-box.Min.X, -box.Min.Y)).
		Combine(springs.Scaling(sx, -sy)).
		Combine(springs.Translation(springs.P(vp.Margin, vp.Height-vp.Margin)))
}

// Default drawing attributes.
const (
	DefaultLineWidth = 1.0
	DefaultColour    = "#000000"
)

// Draw strokes the polylines of pts onto dc, decorated as told by geom.
// Polylines outside of vp.Limits are skipped.
func Draw(dc *gg.Context, pts table.Points, geom layer.Geom, vp Viewport) error {
	box, ok := layer.Extent(pts)
	if !ok {
		tracer().Infof("nothing to draw")
		return nil
	}
	if vp.Limits != nil {
		box = *vp.Limits
	}
	T := Transform(box, vp)
	dc.SetLineCap(lineCap(geom.LineEnd))
	dc.SetLineJoin(lineJoin(geom.LineJoin))
	dc.SetMiterLimit(geom.LineMitre)
	pal := newPalette()
	drawn := 0
	for _, line := range pts.Polylines() {
		if vp.Limits != nil && !overlaps(bbox(line.Vertices), *vp.Limits) {
			continue
		}
		dev := make([]springs.Pair, len(line.Vertices))
		for i, v := range line.Vertices {
			dev[i] = T.Transform(v)
		}
		c := pal.colour(line.Attrs)
		dc.SetRGBA(c.R, c.G, c.B, alpha(line.Attrs))
		dc.SetLineWidth(lineWidth(line.Attrs))
		dc.MoveTo(dev[0].X(), dev[0].Y())
		for _, v := range dev[1:] {
			dc.LineTo(v.X(), v.Y())
		}
		if err := dc.Stroke(); err != nil {
			return err
		}
		if geom.Arrow != nil && len(dev) > 1 {
			if err := drawArrows(dc, dev, geom.Arrow); err != nil {
				return err
			}
		}
		drawn++
	}
	tracer().Debugf("drew %d polylines", drawn)
	return nil
}

func drawArrows(dc *gg.Context, dev []springs.Pair, a *layer.Arrow) error {
	n := len(dev)
	if a.Ends == layer.LastEnd || a.Ends == layer.BothEnds {
		if err := arrowHead(dc, dev[n-2], dev[n-1], a); err != nil {
			return err
		}
	}
	if a.Ends == layer.FirstEnd || a.Ends == layer.BothEnds {
		if err := arrowHead(dc, dev[1], dev[0], a); err != nil {
			return err
		}
	}
	return nil
}

// arrowHead draws a head at tip, pointing away from 'from'.
func arrowHead(dc *gg.Context, from, tip springs.Pair, a *layer.Arrow) error {
	if springs.Is0(from.Dist(tip)) {
		return nil
	}
	back := springs.P(a.Length, 0).Rotated((from - tip).Angle())
	theta := a.Angle * math.Pi / 180
	left := tip + back.Rotated(theta)
	right := tip + back.Rotated(-theta)
	dc.MoveTo(left.X(), left.Y())
	dc.LineTo(tip.X(), tip.Y())
	dc.LineTo(right.X(), right.Y())
	if a.Closed {
		dc.ClosePath()
		return dc.Fill()
	}
	return dc.Stroke()
}

func lineCap(e layer.LineEnd) gg.LineCap {
	switch e {
	case layer.RoundEnd:
		return gg.LineCapRound
	case layer.SquareEnd:
		return gg.LineCapSquare
	}
	return gg.LineCapButt
}

func lineJoin(j layer.LineJoin) gg.LineJoin {
	switch j {
	case layer.MitreJoin:
		return gg.LineJoinMiter
	case layer.BevelJoin:
		return gg.LineJoinBevel
	}
	return gg.LineJoinRound
}

func lineWidth(attrs *table.Attrs) float64 {
	if w, ok, err := attrs.Float("linewidth"); ok && err == nil && w > 0 {
		return w
	}
	return DefaultLineWidth
}

func alpha(attrs *table.Attrs) float64 {
	if a, ok, err := attrs.Float("alpha"); ok && err == nil && a >= 0 && a <= 1 {
		return a
	}
	return 1
}

// palette assigns colours to colour values. Hex strings and a few names are
// taken literally, other values get colours from a discrete palette, in
// order of appearance.
type palette struct {
	assigned map[string]gg.RGBA
}

var named = map[string]string{
	"black": "#000000",
	"white": "#ffffff",
	"red":   "#e41a1c",
	"blue":  "#377eb8",
	"green": "#4daf4a",
	"grey":  "#999999",
	"gray":  "#999999",
}

var discrete = []string{"#1b9e77", "#d95f02", "#7570b3", "#e7298a", "#66a61e", "#e6ab02", "#a6761d"}

func newPalette() *palette {
	return &palette{assigned: make(map[string]gg.RGBA)}
}

func (p *palette) colour(attrs *table.Attrs) gg.RGBA {
	v, ok := attrs.Get("colour")
	if !ok || v == nil {
		return gg.Hex(DefaultColour)
	}
	if s, isstr := v.(string); isstr {
		if strings.HasPrefix(s, "#") {
			return gg.Hex(s)
		}
		if hex, found := named[strings.ToLower(s)]; found {
			return gg.Hex(hex)
		}
	}
	key := fmt.Sprintf("%T:%v", v, v)
	if c, found := p.assigned[key]; found {
		return c
	}
	c := gg.Hex(discrete[len(p.assigned)%len(discrete)])
	p.assigned[key] = c
	return c
}

func bbox(vertices []springs.Pair) polyclip.Rectangle {
	c := make(polyclip.Contour, len(vertices))
	for i, v := range vertices {
		c[i] = polyclip.Point{X: v.X(), Y: v.Y()}
	}
	return c.BoundingBox()
}

func overlaps(r, s polyclip.Rectangle) bool {
	return r.Min.X <= s.Max.X && s.Min.X <= r.Max.X &&
		r.Min.Y <= s.Max.Y && s.Min.Y <= r.Max.Y
}
