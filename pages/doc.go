// Package pages provides access to the PDF page tree: traversal of
// interior /Pages nodes, flattening into document order, and lookup of
// inheritable page attributes such as Resources, MediaBox and Rotate.
package pages
