// Package resolver provides recursive resolution of indirect PDF
// object references with cycle detection and bounded depth.
package resolver
