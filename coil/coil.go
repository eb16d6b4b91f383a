package coil

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/springs"
)

// tracer writes to trace with key 'springs.coil'
func tracer() tracing.Trace {
	return tracing.Select("springs.coil")
}

const twoPi = 2 * math.Pi

// MaxPoints is the largest number of points Generate will produce for a
// single segment.
const MaxPoints = 1 << 24

// Segment describes one connection to be drawn as a spring.
type Segment struct {
	From     springs.Pair // start point of the connection
	To       springs.Pair // end point of the connection
	Diameter float64      // width of the coil loops, must not be 0
	Tension  float64      // looseness of the coil, must be > 0
}

// Length is the euclidean length of the connection.
func (seg Segment) Length() float64 {
	return seg.From.Dist(seg.To)
}

// Revolutions returns the number of full turns of a segment's coil.
// Larger diameters and larger tensions both result in fewer turns.
func Revolutions(seg Segment) float64 {
	return seg.Length() / (seg.Diameter * seg.Tension)
}

// PointCount returns the number of points Generate will produce for a
// segment, given n points per revolution. Halves are rounded to even,
// negative counts are clamped to 0. A diameter of 0 would need infinitely
// many points and results in 0 points as well. Counts beyond the range of
// int saturate at math.MaxInt.
func PointCount(seg Segment, n int) int {
	cnt := math.RoundToEven(float64(n) * Revolutions(seg))
	if !(cnt > 0) || math.IsInf(cnt, 1) { // includes NaN
		return 0
	}
	if cnt >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(cnt)
}

// Generate produces the polyline of a spring along a segment, with n points
// per revolution. The points are in traversal order, from seg.From to seg.To.
//
// Generate fails if seg.Tension is not positive, or if the spring would need
// more than MaxPoints points. Diameter and n are expected to have been
// checked by the caller (see package stat).
func Generate(seg Segment, n int) ([]springs.Pair, error) {
	if !(seg.Tension > 0) {
		tracer().Errorf("tension must be larger than 0, is %g", seg.Tension)
		return nil, &springs.ConfigurationError{
			Param:  "tension",
			Reason: "tension must be larger than 0",
			Err:    springs.ErrInvalidTension,
		}
	}
	revolutions := Revolutions(seg)
	cnt := PointCount(seg, n)
	if cnt > MaxPoints {
		tracer().Errorf("spring %s -> %s of diameter %g needs %d points", seg.From, seg.To, seg.Diameter, cnt)
		return nil, &springs.ConfigurationError{
			Param:  "diameter",
			Reason: fmt.Sprintf("spring needs %d points, at most %d are possible", cnt, MaxPoints),
			Err:    springs.ErrTooManyPoints,
		}
	}
	tracer().Debugf("spring %s -> %s: %.4g revolutions, %d points", seg.From, seg.To, revolutions, cnt)
	angles := springs.Seq(0, revolutions*twoPi, cnt)
	cx := springs.Seq(seg.From.X(), seg.To.X(), cnt)
	cy := springs.Seq(seg.From.Y(), seg.To.Y(), cnt)
	r := seg.Diameter / 2
	pts := make([]springs.Pair, cnt)
	for i, theta := range angles {
		sin, cos := math.Sincos(theta)
		pts[i] = springs.P(cos*r+cx[i], sin*r+cy[i])
	}
	return pts, nil
}

// MustGenerate is like Generate, but panics on an invalid segment.
func MustGenerate(seg Segment, n int) []springs.Pair {
	pts, err := Generate(seg, n)
	if err != nil {
		panic(err)
	}
	return pts
}

// Spring is a shortcut for Generate, taking the coordinates of a
// connection as plain numbers.
func Spring(x, y, xend, yend, diameter, tension float64, n int) ([]springs.Pair, error) {
	return Generate(Segment{
		From:     springs.P(x, y),
		To:       springs.P(xend, yend),
		Diameter: diameter,
		Tension:  tension,
	}, n)
}
