package render

import (
	"testing"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/gogpu/gg"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/springs"
	"github.com/npillmayer/springs/layer"
	"github.com/npillmayer/springs/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func springPoints(t *testing.T, colour interface{}) table.Points {
	t.Helper()
	l := layer.New(layer.Mapping{
		"x": "x0", "y": "y0", "xend": "x1", "yend": "y1",
		"diameter": "d", "colour": "c",
	}, layer.WithN(40))
	pts, err := l.Compute([]layer.Record{
		table.AttrsOf("x0", 0, "y0", 0, "x1", 10, "y1", 0, "d", 2, "c", colour),
	})
	require.NoError(t, err)
	return pts
}

func TestTransform(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := polyclip.Rectangle{Min: polyclip.Point{X: -1, Y: -1}, Max: polyclip.Point{X: 9, Y: 4}}
	T := Transform(box, Viewport{Width: 120, Height: 70, Margin: 10})
	lowerLeft := T.Transform(springs.P(-1, -1))
	upperRight := T.Transform(springs.P(9, 4))
	assert.True(t, lowerLeft.Equal(springs.P(10, 60)), "lower left is %v", lowerLeft)
	assert.True(t, upperRight.Equal(springs.P(110, 10)), "upper right is %v", upperRight)
	// degenerate boxes do not divide by zero
	flat := polyclip.Rectangle{Min: polyclip.Point{X: 0, Y: 2}, Max: polyclip.Point{X: 4, Y: 2}}
	p := Transform(flat, Viewport{Width: 50, Height: 50}).Transform(springs.P(4, 2))
	assert.True(t, springs.IsFinite(p.X()) && springs.IsFinite(p.Y()))
}

func TestDrawStrokesSprings(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := springPoints(t, "red")
	dc := gg.NewContext(200, 100)
	dc.ClearWithColor(gg.White)
	geom := layer.New(nil, layer.WithArrow(layer.DefaultArrow()), layer.WithLineEnd(layer.RoundEnd)).Geom
	err := Draw(dc, pts, geom, Viewport{Width: 200, Height: 100, Margin: 5})
	require.NoError(t, err)
	img := dc.Image()
	inked := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || bl != 0xffff {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 100, "expected the spring to leave some ink")
}

func TestDrawNothing(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	dc := gg.NewContext(10, 10)
	assert.NoError(t, Draw(dc, nil, layer.Geom{}, Viewport{Width: 10, Height: 10}))
}

func TestLimitsCullPolylines(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := springPoints(t, nil)
	far := polyclip.Rectangle{Min: polyclip.Point{X: 100, Y: 100}, Max: polyclip.Point{X: 200, Y: 200}}
	assert.False(t, overlaps(bbox(pts.Polylines()[0].Vertices), far))
	near := polyclip.Rectangle{Min: polyclip.Point{X: 5, Y: -5}, Max: polyclip.Point{X: 20, Y: 5}}
	assert.True(t, overlaps(bbox(pts.Polylines()[0].Vertices), near))
	dc := gg.NewContext(50, 50)
	assert.NoError(t, Draw(dc, pts, layer.Geom{}, Viewport{Width: 50, Height: 50, Limits: &far}))
}

func TestAttributes(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pal := newPalette()
	assert.Equal(t, gg.Hex("#000000"), pal.colour(table.NewAttrs()))
	assert.Equal(t, gg.Hex("#e41a1c"), pal.colour(table.AttrsOf("colour", "Red")))
	assert.Equal(t, gg.Hex("#123456"), pal.colour(table.AttrsOf("colour", "#123456")))
	a := pal.colour(table.AttrsOf("colour", "setosa"))
	b := pal.colour(table.AttrsOf("colour", "virginica"))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, pal.colour(table.AttrsOf("colour", "setosa")))
	assert.Equal(t, 2.5, lineWidth(table.AttrsOf("linewidth", 2.5)))
	assert.Equal(t, DefaultLineWidth, lineWidth(table.AttrsOf("linewidth", "thick")))
	assert.Equal(t, 0.3, alpha(table.AttrsOf("alpha", 0.3)))
	assert.Equal(t, 1.0, alpha(table.AttrsOf("alpha", 7)))
	assert.Equal(t, gg.LineCapSquare, lineCap(layer.SquareEnd))
	assert.Equal(t, gg.LineJoinBevel, lineJoin(layer.BevelJoin))
}
