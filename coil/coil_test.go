package coil

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/springs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func horizontal(length, diameter, tension float64) Segment {
	return Segment{
		From:     springs.P(0, 0),
		To:       springs.P(length, 0),
		Diameter: diameter,
		Tension:  tension,
	}
}

func TestConcreteScenario(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := horizontal(10, 2, 1)
	assert.InDelta(t, 10.0, seg.Length(), 1e-12)
	assert.InDelta(t, 5.0, Revolutions(seg), 1e-12)
	pts, err := Generate(seg, 50)
	require.NoError(t, err)
	require.Len(t, pts, 250)
	if !pts[0].Equal(springs.P(1, 0)) {
		t.Errorf("expected first point at (1,0), is %v", pts[0])
	}
	// last angle is 5*2π, center is at the end point
	last := pts[len(pts)-1]
	if !last.Equal(springs.P(11, 0)) {
		t.Errorf("expected last point at (11,0), is %v", last)
	}
}

func TestDegenerateSegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, d := range []float64{0.1, 1, 17} {
		for _, tension := range []float64{0.2, 0.75, 4} {
			seg := Segment{From: springs.P(3, -2), To: springs.P(3, -2), Diameter: d, Tension: tension}
			pts, err := Generate(seg, 50)
			require.NoError(t, err)
			assert.Empty(t, pts, "diameter %g, tension %g", d, tension)
		}
	}
}

func TestPointCountScalesWithLength(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, length := range []float64{1, 3.3, 10, 42} {
		short := PointCount(horizontal(length, 1, 0.75), 50)
		long := PointCount(horizontal(2*length, 1, 0.75), 50)
		assert.InDelta(t, 2*short, long, 1, "length %g", length)
	}
}

func TestTensionAndDiameterMonotonicity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// higher tension means fewer revolutions, i.e. a looser coil
	base := Revolutions(horizontal(12, 1, 1))
	assert.InDelta(t, base/2, Revolutions(horizontal(12, 1, 2)), 1e-12)
	assert.InDelta(t, base*4, Revolutions(horizontal(12, 1, 0.25)), 1e-12)
	assert.Greater(t, PointCount(horizontal(12, 1, 0.5), 50), PointCount(horizontal(12, 1, 1), 50))
	// diameter: fewer revolutions, but wider loops
	assert.InDelta(t, base/3, Revolutions(horizontal(12, 3, 1)), 1e-12)
	for _, d := range []float64{0.5, 1, 3} {
		pts, err := Generate(horizontal(12, d, 1), 50)
		require.NoError(t, err)
		maxY := 0.0
		for _, p := range pts {
			maxY = math.Max(maxY, math.Abs(p.Y()))
		}
		assert.InDelta(t, d/2, maxY, 1e-2*d, "diameter %g", d)
	}
}

func TestPointsPerRevolution(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := horizontal(10, 2, 1)
	assert.Equal(t, 50, PointCount(seg, 10))
	assert.Equal(t, 500, PointCount(seg, 100))
	// fractional revolutions: 10/(2*0.75) = 6.67 turns
	assert.Equal(t, 333, PointCount(horizontal(10, 2, 0.75), 50))
	// negative diameters would need a negative number of points
	assert.Equal(t, 0, PointCount(horizontal(10, -2, 1), 50))
}

func TestCenterSweepsAlongSegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := Segment{From: springs.P(1, 1), To: springs.P(4, 5), Diameter: 0.5, Tension: 1}
	pts, err := Generate(seg, 20)
	require.NoError(t, err)
	require.Len(t, pts, PointCount(seg, 20))
	centers := springs.Seq(0, 1, len(pts))
	for i, p := range pts {
		c := seg.From.Lerp(seg.To, centers[i])
		assert.InDelta(t, 0.25, p.Dist(c), 1e-9, "point %d", i)
	}
}

func TestSpringShortcut(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a, err := Spring(0, 0, 7, 3, 1, 0.75, 30)
	require.NoError(t, err)
	b := MustGenerate(Segment{From: springs.P(0, 0), To: springs.P(7, 3), Diameter: 1, Tension: 0.75}, 30)
	if diff := cmp.Diff(a, b, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Spring and Generate differ (-spring +generate):\n%s", diff)
	}
}

func TestInvalidTension(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, tension := range []float64{0, -1, math.NaN()} {
		pts, err := Generate(horizontal(10, 1, tension), 50)
		assert.Nil(t, pts)
		assert.True(t, errors.Is(err, springs.ErrInvalidTension), "tension %g", tension)
		assert.EqualError(t, err, "tension must be larger than 0")
	}
	assert.Panics(t, func() { MustGenerate(horizontal(1, 1, 0), 10) })
}

func TestTinyDiameter(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := horizontal(10, 1e-300, 1)
	assert.Equal(t, math.MaxInt, PointCount(seg, 50), "count must not wrap around")
	pts, err := Generate(seg, 50)
	assert.Nil(t, pts)
	assert.True(t, errors.Is(err, springs.ErrTooManyPoints))
	var cerr *springs.ConfigurationError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "diameter", cerr.Param)
	assert.Equal(t, MaxPoints, PointCount(horizontal(1, 1, 1), MaxPoints))
	_, err = Generate(horizontal(2, 1, 1), MaxPoints)
	assert.True(t, errors.Is(err, springs.ErrTooManyPoints))
}

func ExampleGenerate() {
	pts, err := Generate(Segment{
		From:     springs.P(0, 0),
		To:       springs.P(10, 0),
		Diameter: 2,
		Tension:  1,
	}, 50)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d points, first = %s\n", len(pts), pts[0])
	// Output: 250 points, first = (1,0)
}
