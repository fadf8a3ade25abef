package affine

import (
	"fmt"
	"math"
)

// Matrix represents a 2D affine transformation as a 3x3 homogeneous matrix
// stored in row-major order:
//
//	| a  b  0 |
//	| c  d  0 |
//	| tx ty 1 |
//
// Points are row vectors (x, y, 1) multiplied on the left, which gives:
//
//	x' = a*x + c*y + tx
//	y' = b*x + d*y + ty
//
// Matrix is a value type. Every function returns a new Matrix and never
// modifies its arguments, so matrices may be shared between goroutines
// freely.
type Matrix [9]float64

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Translation creates a translation matrix.
func Translation(tx, ty float64) Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		tx, ty, 1,
	}
}

// Rotation creates a rotation matrix (angle in radians).
//
// Rotation(math.Pi/2) maps (1, 0) to (0, -1). With y pointing down, as in
// pixel coordinates, positive angles therefore turn counter-clockwise on
// screen.
func Rotation(angle float64) Matrix {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Matrix{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Scaling creates a scaling matrix. Zero or negative factors are allowed and
// produce degenerate or mirrored transforms.
func Scaling(sx, sy float64) Matrix {
	return Matrix{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}

// Multiply returns the composition of a and b in which b is applied first
// and a second:
//
//	Apply(Multiply(a, b), p) == Apply(a, Apply(b, p))
//
// Under the row-vector convention this is the matrix product b × a.
// A translate-rotate-scale chain is therefore written in reading order,
// Multiply(Multiply(t, r), s), and scales before it rotates and rotates
// before it translates.
func Multiply(a, b Matrix) Matrix {
	a00, a01, a02 := a[0], a[1], a[2]
	a10, a11, a12 := a[3], a[4], a[5]
	a20, a21, a22 := a[6], a[7], a[8]
	b00, b01, b02 := b[0], b[1], b[2]
	b10, b11, b12 := b[3], b[4], b[5]
	b20, b21, b22 := b[6], b[7], b[8]

	return Matrix{
		b00*a00 + b01*a10 + b02*a20,
		b00*a01 + b01*a11 + b02*a21,
		b00*a02 + b01*a12 + b02*a22,
		b10*a00 + b11*a10 + b12*a20,
		b10*a01 + b11*a11 + b12*a21,
		b10*a02 + b11*a12 + b12*a22,
		b20*a00 + b21*a10 + b22*a20,
		b20*a01 + b21*a11 + b22*a21,
		b20*a02 + b21*a12 + b22*a22,
	}
}

// Compose multiplies the matrices from left to right. The last matrix is
// applied first. Compose() returns the identity.
func Compose(ms ...Matrix) Matrix {
	out := Identity()
	for _, m := range ms {
		out = Multiply(out, m)
	}
	return out
}

// Apply transforms p by m, computing (x, y, 1) × m.
func Apply(m Matrix, p Point) Point {
	return m.TransformPoint(p)
}

// Multiply returns Multiply(m, other): other is applied first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Multiply(m, other)
}

// Translate returns m with a translation applied before it.
func (m Matrix) Translate(tx, ty float64) Matrix {
	return Multiply(m, Translation(tx, ty))
}

// Rotate returns m with a rotation applied before it.
func (m Matrix) Rotate(angle float64) Matrix {
	return Multiply(m, Rotation(angle))
}

// Scale returns m with a scaling applied before it.
func (m Matrix) Scale(sx, sy float64) Matrix {
	return Multiply(m, Scaling(sx, sy))
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: p.X*m[0] + p.Y*m[3] + m[6],
		Y: p.X*m[1] + p.Y*m[4] + m[7],
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: p.X*m[0] + p.Y*m[3],
		Y: p.X*m[1] + p.Y*m[4],
	}
}

// IsIdentity returns true if the matrix is exactly the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m[0] == 1 && m[1] == 0 && m[3] == 0 && m[4] == 1
}

// ApproxEqual reports whether every element of m is within eps of the
// corresponding element of other.
func (m Matrix) ApproxEqual(other Matrix, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-other[i]) > eps {
			return false
		}
	}
	return true
}

// Float32 returns the nine elements converted to float32, still in
// row-major order.
func (m Matrix) Float32() [9]float32 {
	var out [9]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// String formats the matrix as three bracketed rows.
func (m Matrix) String() string {
	return fmt.Sprintf("[%g %g %g] [%g %g %g] [%g %g %g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}
