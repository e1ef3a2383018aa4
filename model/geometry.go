package model

import "math"

// Point represents a 2D point.
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Matrix represents a 2D affine transformation in the PDF convention
// [a b c d e f], i.e. the 3x3 matrix
//
//	| a b 0 |
//	| c d 0 |
//	| e f 1 |
//
// applied to row vectors. Composition follows the PDF text model:
// m.Mul(n) applies m first and n second, so the text rendering matrix
// is Tm.Mul(CTM).
type Matrix [6]float64

// Identity returns an identity matrix.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Translate creates a translation matrix.
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale creates a scaling matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// Transform applies the matrix transformation to a point.
func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// TransformVector applies only the linear part of the matrix to a
// vector, ignoring translation. Used for advances and directions.
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y,
		Y: m[1]*p.X + m[3]*p.Y,
	}
}

// Mul returns the matrix product m * other, applying m first and other
// second when transforming points.
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[2],
		m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2],
		m[2]*other[1] + m[3]*other[3],
		m[4]*other[0] + m[5]*other[2] + other[4],
		m[4]*other[1] + m[5]*other[3] + other[5],
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Norm returns the operator norm (largest singular value) of the linear
// part. Scaling a font size by this value yields the rendered size in
// device space regardless of rotation.
func (m Matrix) Norm() float64 {
	trace := m[0]*m[0] + m[1]*m[1] + m[2]*m[2] + m[3]*m[3]
	det := m.Determinant()
	disc := trace*trace - 4*det*det
	if disc < 0 {
		disc = 0
	}
	s2 := (trace + math.Sqrt(disc)) / 2
	if s2 < 0 {
		s2 = 0
	}
	return math.Sqrt(s2)
}

// IsIdentity returns true if the matrix is an identity matrix.
func (m Matrix) IsIdentity() bool {
	return m[0] == 1 && m[1] == 0 && m[2] == 0 && m[3] == 1 && m[4] == 0 && m[5] == 0
}

// Sanitized returns a copy with NaN and infinite entries replaced by
// the corresponding identity entries, so broken operands cannot poison
// later matrix math.
func (m Matrix) Sanitized() Matrix {
	id := Identity()
	out := m
	for i, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out[i] = id[i]
		}
	}
	return out
}

// BBox represents an axis-aligned rectangle in PDF point space with y
// growing upward: Top >= Bottom and Right >= Left after normalisation.
type BBox struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// NewBBox creates a bounding box from two corner points, normalising
// the edges so Left <= Right and Bottom <= Top.
func NewBBox(p1, p2 Point) BBox {
	return BBox{
		Top:    math.Max(p1.Y, p2.Y),
		Right:  math.Max(p1.X, p2.X),
		Bottom: math.Min(p1.Y, p2.Y),
		Left:   math.Min(p1.X, p2.X),
	}
}

// Union returns the smallest box containing both boxes.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		Top:    math.Max(b.Top, other.Top),
		Right:  math.Max(b.Right, other.Right),
		Bottom: math.Min(b.Bottom, other.Bottom),
		Left:   math.Min(b.Left, other.Left),
	}
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	return b.Top - b.Bottom
}

// Normalized returns a copy with edges swapped where needed so that
// Left <= Right and Bottom <= Top. Spans placed under a mirrored CTM
// (negative determinant) produce reversed edges otherwise.
func (b BBox) Normalized() BBox {
	out := b
	if out.Left > out.Right {
		out.Left, out.Right = out.Right, out.Left
	}
	if out.Bottom > out.Top {
		out.Bottom, out.Top = out.Top, out.Bottom
	}
	return out
}
