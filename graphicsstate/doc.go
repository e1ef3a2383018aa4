// Package graphicsstate models the PDF graphics and text state used
// during content stream interpretation: the current transformation
// matrix, the text state parameters, and the explicit save/restore
// stack driven by the q and Q operators.
package graphicsstate
