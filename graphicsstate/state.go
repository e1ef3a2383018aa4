package graphicsstate

import (
	"errors"

	"github.com/tsawler/pdftext/model"
)

// ErrStackUnderflow is reported when a Q operator appears without a
// matching q. The state is left unchanged.
var ErrStackUnderflow = errors.New("graphics state stack underflow")

// RenderMode values from the PDF text state. Mode 3 paints nothing and
// is used for invisible text (e.g. OCR layers).
const (
	RenderFill = iota
	RenderStroke
	RenderFillStroke
	RenderInvisible
	RenderFillClip
	RenderStrokeClip
	RenderFillStrokeClip
	RenderClip
)

// TextState holds the PDF text state parameters.
type TextState struct {
	Font            string  // Resource name of the selected font
	FontSize        float64 // Tfs in user units
	CharSpacing     float64 // Tc
	WordSpacing     float64 // Tw
	HorizontalScale float64 // Th as a fraction (Tz/100), default 1.0
	Leading         float64 // TL
	Rise            float64 // Ts
	RenderMode      int     // Tr

	// Text matrices. Both reset to identity at BT and are not
	// preserved across ET.
	TextMatrix model.Matrix
	LineMatrix model.Matrix
}

// GraphicsState tracks the subset of the PDF graphics state relevant to
// text extraction: the CTM and the text state. Clipping and colour are
// consumed but ignored.
type GraphicsState struct {
	CTM  model.Matrix
	Text TextState

	stack []snapshot
}

type snapshot struct {
	ctm  model.Matrix
	text TextState
}

// New creates a graphics state with default values.
func New() *GraphicsState {
	return &GraphicsState{
		CTM: model.Identity(),
		Text: TextState{
			HorizontalScale: 1.0,
			TextMatrix:      model.Identity(),
			LineMatrix:      model.Identity(),
		},
	}
}

// Save pushes the current state onto the stack (q operator).
func (gs *GraphicsState) Save() {
	gs.stack = append(gs.stack, snapshot{ctm: gs.CTM, text: gs.Text})
}

// Restore pops a state from the stack (Q operator). Underflow returns
// ErrStackUnderflow and leaves the state unchanged.
func (gs *GraphicsState) Restore() error {
	if len(gs.stack) == 0 {
		return ErrStackUnderflow
	}
	saved := gs.stack[len(gs.stack)-1]
	gs.stack = gs.stack[:len(gs.stack)-1]
	gs.CTM = saved.ctm
	gs.Text = saved.text
	return nil
}

// Depth returns the current stack depth.
func (gs *GraphicsState) Depth() int {
	return len(gs.stack)
}

// Concat prepends a transformation to the CTM (cm operator):
// CTM' = m · CTM.
func (gs *GraphicsState) Concat(m model.Matrix) {
	gs.CTM = m.Sanitized().Mul(gs.CTM)
}

// BeginText enters a text object (BT): both text matrices become the
// identity.
func (gs *GraphicsState) BeginText() {
	gs.Text.TextMatrix = model.Identity()
	gs.Text.LineMatrix = model.Identity()
}

// EndText leaves a text object (ET). The text matrices are meaningless
// outside a text object; reset them so stale positions cannot leak.
func (gs *GraphicsState) EndText() {
	gs.Text.TextMatrix = model.Identity()
	gs.Text.LineMatrix = model.Identity()
}

// SetTextMatrix sets both text matrices (Tm operator).
func (gs *GraphicsState) SetTextMatrix(m model.Matrix) {
	m = m.Sanitized()
	gs.Text.TextMatrix = m
	gs.Text.LineMatrix = m
}

// NextLineOffset moves to the start of the next line, offset from the
// current line start (Td operator): Tlm' = T(tx,ty) · Tlm; Tm = Tlm'.
func (gs *GraphicsState) NextLineOffset(tx, ty float64) {
	gs.Text.LineMatrix = model.Translate(tx, ty).Mul(gs.Text.LineMatrix)
	gs.Text.TextMatrix = gs.Text.LineMatrix
}

// NextLineOffsetSetLeading is the TD operator: as Td, but first sets
// the leading to -ty.
func (gs *GraphicsState) NextLineOffsetSetLeading(tx, ty float64) {
	gs.Text.Leading = -ty
	gs.NextLineOffset(tx, ty)
}

// NextLine moves to the start of the next line using the current
// leading (T* operator).
func (gs *GraphicsState) NextLine() {
	gs.NextLineOffset(0, -gs.Text.Leading)
}

// AdvanceText translates the text matrix by a glyph or adjustment
// displacement: Tm' = T(tx,ty) · Tm.
func (gs *GraphicsState) AdvanceText(tx, ty float64) {
	gs.Text.TextMatrix = model.Translate(tx, ty).Mul(gs.Text.TextMatrix)
}

// TextRenderingMatrix returns Tm · CTM, the matrix mapping text space
// to device space, with the rise applied as a vertical offset in text
// space.
func (gs *GraphicsState) TextRenderingMatrix() model.Matrix {
	trm := gs.Text.TextMatrix.Mul(gs.CTM)
	if gs.Text.Rise != 0 {
		trm = model.Translate(0, gs.Text.Rise).Mul(trm)
	}
	return trm
}
