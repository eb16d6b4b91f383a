/*
Package springs turns connections between two points into coil-shaped
polylines ("springs"), ready to be handed to a line renderer.

The root package holds points, affine transformations and the error
types shared by the sub-packages. The coil itself is synthesized by
package coil, batches of connections are normalized and expanded by
package stat, and package layer wires everything into a visualization
layer.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package springs

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'springs'
func tracer() tracing.Trace {
	return tracing.Select("springs")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// IsFinite is a predicate: is n neither NaN nor ±Inf ?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// Seq returns cnt values evenly spaced from 'from' to 'to', both ends
// included. For cnt = 1 the result is just 'from', for cnt <= 0 it is empty.
func Seq(from, to float64, cnt int) []float64 {
	if cnt <= 0 {
		return []float64{}
	}
	s := make([]float64, cnt)
	if cnt == 1 {
		s[0] = from
		return s
	}
	step := (to - from) / float64(cnt-1)
	for i := range s {
		s[i] = from + float64(i)*step
	}
	s[cnt-1] = to
	return s
}

// === Pair Data Type ========================================================

// Pair is a 2D-point, stored as a complex number.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Equal compares two pairs, up to Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Dist is the euclidean distance between p and p2.
func (p Pair) Dist(p2 Pair) float64 {
	return cmplx.Abs((p2 - p).C())
}

// Angle is the direction of p, seen as a vector from the origin, in radians.
func (p Pair) Angle() float64 {
	return cmplx.Phase(p.C())
}

// Lerp interpolates linearly between p (t=0) and p2 (t=1).
func (p Pair) Lerp(p2 Pair, t float64) Pair {
	return P(p.X()+(p2.X()-p.X())*t, p.Y()+(p2.Y()-p.Y())*t)
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	return Rotation(theta).Transform(p)
}

// === Affine Transformations ================================================

// AT is an affine transform, a 3x3 matrix flattened by rows.
type AT [9]float64

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	return AT{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	m := Identity()
	m[2], m[5] = p.X(), p.Y()
	return m
}

// Scaling transform. Scale x by sx and y by sy, relative to the origin.
func Scaling(sx, sy float64) AT {
	m := Identity()
	m[0], m[4] = sx, sy
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	sin, cos := math.Sincos(theta)
	return AT{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	}
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// Combine 2 affine transformations to a new one, m applied first.
// Returns a new transformation without changing the argument(s).
func (m AT) Combine(n AT) AT {
	var o AT
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o[row*3+col] = n[row*3]*m[col] + n[row*3+1]*m[3+col] + n[row*3+2]*m[6+col]
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x, y := p.F()
	return P(m[0]*x+m[1]*y+m[2], m[3]*x+m[4]*y+m[5])
}
