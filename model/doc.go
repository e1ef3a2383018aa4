// Package model provides the geometric primitives shared across the
// extraction pipeline: points, affine matrices in the PDF convention,
// and axis-aligned bounding boxes.
package model
