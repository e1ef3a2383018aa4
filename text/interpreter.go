package text

import (
	"fmt"
	"math"

	"github.com/tsawler/pdftext/contentstream"
	"github.com/tsawler/pdftext/core"
	"github.com/tsawler/pdftext/font"
	"github.com/tsawler/pdftext/graphicsstate"
	"github.com/tsawler/pdftext/model"
)

// DefaultOperatorBudget bounds the number of operators evaluated for
// one page, including operators inside form XObjects. Exceeding it
// aborts the page with a warning.
const DefaultOperatorBudget = 10_000_000

// maxFormDepth bounds form XObject recursion.
const maxFormDepth = 32

// Interpreter evaluates a page's content stream against the graphics
// and text state machine and emits positioned glyphs. One interpreter
// serves one page; fonts are cached for the page's lifetime.
type Interpreter struct {
	gs   *graphicsstate.GraphicsState
	page int

	resolve   font.Resolver
	fonts     map[string]font.Decoder
	fontOrder []string // Resource names in first-use order
	current   font.Decoder

	glyphs   []Glyph
	warnings []Warning
	warnSeen map[string]bool

	opCount   int
	opBudget  int
	formDepth int
	formChain map[string]bool
}

// NewInterpreter creates an interpreter for one page. The resolver
// chases indirect references when loading fonts and form XObjects.
func NewInterpreter(page int, resolve font.Resolver) *Interpreter {
	return &Interpreter{
		gs:        graphicsstate.New(),
		page:      page,
		resolve:   resolve,
		fonts:     make(map[string]font.Decoder),
		warnSeen:  make(map[string]bool),
		opBudget:  DefaultOperatorBudget,
		formChain: make(map[string]bool),
	}
}

// SetOperatorBudget overrides the per-page operator budget.
func (in *Interpreter) SetOperatorBudget(budget int) {
	in.opBudget = budget
}

// Glyphs returns the glyphs emitted so far, in evaluation order.
func (in *Interpreter) Glyphs() []Glyph {
	return in.glyphs
}

// Warnings returns the soft problems encountered, de-duplicated and in
// first-occurrence order. Font diagnostics are folded in, in font
// first-use order so the output is deterministic.
func (in *Interpreter) Warnings() []Warning {
	out := in.warnings
	for _, name := range in.fontOrder {
		f := in.fonts[name]
		if f == nil {
			continue
		}
		for _, msg := range f.Diagnostics() {
			key := WarnFontDecode + "\x00" + f.BaseName() + "\x00" + msg
			if in.warnSeen[key] {
				continue
			}
			in.warnSeen[key] = true
			out = append(out, Warning{Kind: WarnFontDecode, Font: f.BaseName(), Message: msg})
		}
	}
	in.warnings = out
	return out
}

func (in *Interpreter) warn(kind, fontName, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	key := kind + "\x00" + fontName + "\x00" + msg
	if in.warnSeen[key] {
		return
	}
	in.warnSeen[key] = true
	in.warnings = append(in.warnings, Warning{Kind: kind, Font: fontName, Message: msg})
}

// Run evaluates a content stream against the page's resource
// dictionary. The returned error is page-fatal (exhausted operator
// budget); parse problems and other soft problems land in Warnings.
func (in *Interpreter) Run(content []byte, resources core.Dict) error {
	parser := contentstream.NewParser(content)
	ops, err := parser.Parse()
	if err != nil {
		return fmt.Errorf("failed to parse content stream: %w", err)
	}
	for _, problem := range parser.Problems() {
		in.warn(WarnContentParse, "", "%v", problem)
	}

	return in.execute(ops, resources)
}

// execute runs an operation list. It is shared by the top-level stream
// and recursive form XObject invocations.
func (in *Interpreter) execute(ops []contentstream.Operation, resources core.Dict) error {
	for _, op := range ops {
		in.opCount++
		if in.opCount > in.opBudget {
			in.warn(WarnOperatorBudget, "", "operator budget of %d exceeded, aborting page", in.opBudget)
			return fmt.Errorf("operator budget exceeded")
		}
		if err := in.apply(op, resources); err != nil {
			return err
		}
	}
	return nil
}

// apply evaluates a single operation. Unrecognised operators are
// skipped; their operands were already discarded by the parser
// contract.
func (in *Interpreter) apply(op contentstream.Operation, resources core.Dict) error {
	switch op.Operator {
	// Graphics state
	case "q":
		in.gs.Save()
	case "Q":
		if err := in.gs.Restore(); err != nil {
			in.warn(WarnStackUnderflow, "", "graphics state stack underflow, state unchanged")
		}
	case "cm":
		if m, ok := operandMatrix(op.Operands); ok {
			in.gs.Concat(m)
		} else {
			in.warn(WarnBadOperands, "", "cm expects six numbers")
		}

	// Text object
	case "BT":
		in.gs.BeginText()
	case "ET":
		in.gs.EndText()

	// Text state
	case "Tf":
		in.applyTf(op.Operands, resources)
	case "Tc":
		if v, ok := operandNumber(op.Operands, 0); ok {
			in.gs.Text.CharSpacing = v
		}
	case "Tw":
		if v, ok := operandNumber(op.Operands, 0); ok {
			in.gs.Text.WordSpacing = v
		}
	case "Tz":
		if v, ok := operandNumber(op.Operands, 0); ok {
			in.gs.Text.HorizontalScale = v / 100
		}
	case "TL":
		if v, ok := operandNumber(op.Operands, 0); ok {
			in.gs.Text.Leading = v
		}
	case "Ts":
		if v, ok := operandNumber(op.Operands, 0); ok {
			in.gs.Text.Rise = v
		}
	case "Tr":
		if v, ok := operandNumber(op.Operands, 0); ok {
			in.gs.Text.RenderMode = int(v)
		}

	// Text positioning
	case "Td":
		if tx, ok := operandNumber(op.Operands, 0); ok {
			if ty, ok := operandNumber(op.Operands, 1); ok {
				in.gs.NextLineOffset(tx, ty)
			}
		}
	case "TD":
		if tx, ok := operandNumber(op.Operands, 0); ok {
			if ty, ok := operandNumber(op.Operands, 1); ok {
				in.gs.NextLineOffsetSetLeading(tx, ty)
			}
		}
	case "Tm":
		if m, ok := operandMatrix(op.Operands); ok {
			in.gs.SetTextMatrix(m)
		} else {
			in.warn(WarnBadOperands, "", "Tm expects six numbers")
		}
	case "T*":
		in.gs.NextLine()

	// Text showing
	case "Tj":
		if len(op.Operands) == 1 {
			if s, ok := op.Operands[0].(core.String); ok {
				in.showText([]byte(s))
			}
		}
	case "TJ":
		if len(op.Operands) == 1 {
			if arr, ok := op.Operands[0].(core.Array); ok {
				in.showTextArray(arr)
			}
		}
	case "'":
		in.gs.NextLine()
		if len(op.Operands) == 1 {
			if s, ok := op.Operands[0].(core.String); ok {
				in.showText([]byte(s))
			}
		}
	case "\"":
		if len(op.Operands) == 3 {
			if aw, ok := operandNumber(op.Operands, 0); ok {
				in.gs.Text.WordSpacing = aw
			}
			if ac, ok := operandNumber(op.Operands, 1); ok {
				in.gs.Text.CharSpacing = ac
			}
			in.gs.NextLine()
			if s, ok := op.Operands[2].(core.String); ok {
				in.showText([]byte(s))
			}
		}

	// XObjects
	case "Do":
		if len(op.Operands) == 1 {
			if name, ok := op.Operands[0].(core.Name); ok {
				return in.applyDo(string(name), resources)
			}
		}

	// Marked content and everything else: consumed and ignored.
	// Content inside marked-content scopes is processed normally by
	// virtue of the flat operation list.
	}

	return nil
}

// applyTf selects the current font and size from the page's font
// resources.
func (in *Interpreter) applyTf(operands []core.Object, resources core.Dict) {
	if len(operands) != 2 {
		in.warn(WarnBadOperands, "", "Tf expects a name and a size")
		return
	}
	name, ok := operands[0].(core.Name)
	if !ok {
		in.warn(WarnBadOperands, "", "Tf font operand is not a name")
		return
	}
	size, ok := core.ToNumber(operands[1])
	if !ok {
		in.warn(WarnBadOperands, "", "Tf size operand is not a number")
		return
	}

	in.gs.Text.Font = string(name)
	in.gs.Text.FontSize = sanitize(size)
	in.current = in.lookupFont(string(name), resources)
}

// lookupFont resolves a font resource name to a cached decoder.
func (in *Interpreter) lookupFont(name string, resources core.Dict) font.Decoder {
	if f, ok := in.fonts[name]; ok {
		return f
	}

	fontsObj := in.resolveObj(resources.Get("Font"))
	fontsDict, ok := fontsObj.(core.Dict)
	if !ok {
		in.warn(WarnMissingFont, "", "page resources have no /Font dictionary")
		in.cacheFont(name, nil)
		return nil
	}

	fontObj := in.resolveObj(fontsDict.Get(name))
	fontDict, ok := fontObj.(core.Dict)
	if !ok {
		in.warn(WarnMissingFont, "", "font resource %q not found", name)
		in.cacheFont(name, nil)
		return nil
	}

	f, err := font.Make(fontDict, in.resolve)
	if err != nil {
		in.warn(WarnFontLoad, name, "failed to load font %q: %v", name, err)
		in.cacheFont(name, nil)
		return nil
	}

	in.cacheFont(name, f)
	return f
}

// cacheFont records a font lookup result, keeping first-use order for
// deterministic warning output.
func (in *Interpreter) cacheFont(name string, f font.Decoder) {
	if _, ok := in.fonts[name]; !ok {
		in.fontOrder = append(in.fontOrder, name)
	}
	in.fonts[name] = f
}

// applyDo recursively interprets a form XObject. Image XObjects are
// ignored.
func (in *Interpreter) applyDo(name string, resources core.Dict) error {
	xobjsObj := in.resolveObj(resources.Get("XObject"))
	xobjs, ok := xobjsObj.(core.Dict)
	if !ok {
		return nil
	}

	xobj := in.resolveObj(xobjs.Get(name))
	stream, ok := xobj.(*core.Stream)
	if !ok {
		return nil
	}
	if subtype, _ := stream.Dict.GetName("Subtype"); subtype != "Form" {
		return nil
	}

	// Cycle and depth guards: forms may reference each other.
	key := fmt.Sprintf("%p", stream)
	if in.formChain[key] {
		in.warn(WarnFormRecursion, "", "form XObject cycle involving %q, skipping", name)
		return nil
	}
	if in.formDepth >= maxFormDepth {
		in.warn(WarnFormRecursion, "", "form XObject nesting exceeds %d, skipping %q", maxFormDepth, name)
		return nil
	}

	data, err := stream.Decode()
	if err != nil {
		in.warn(WarnContentParse, "", "failed to decode form XObject %q: %v", name, err)
		return nil
	}

	formResources := resources
	if res, ok := in.resolveObj(stream.Dict.Get("Resources")).(core.Dict); ok {
		formResources = res
	}

	parser := contentstream.NewParser(data)
	ops, err := parser.Parse()
	if err != nil {
		in.warn(WarnContentParse, "", "failed to parse form XObject %q: %v", name, err)
		return nil
	}
	for _, problem := range parser.Problems() {
		in.warn(WarnContentParse, "", "%v", problem)
	}

	// A form executes inside its own graphics state scope with its
	// /Matrix prepended to the CTM.
	in.gs.Save()
	if mObj := stream.Dict.Get("Matrix"); mObj != nil {
		if arr, ok := in.resolveObj(mObj).(core.Array); ok && len(arr) == 6 {
			if vals, ok := arr.Numbers(); ok {
				var m model.Matrix
				copy(m[:], vals)
				in.gs.Concat(m)
			}
		}
	}

	in.formChain[key] = true
	in.formDepth++
	err = in.execute(ops, formResources)
	in.formDepth--
	delete(in.formChain, key)

	if restoreErr := in.gs.Restore(); restoreErr != nil {
		in.warn(WarnStackUnderflow, "", "form %q left an unbalanced graphics state", name)
	}
	return err
}

// showText decodes a shown string through the current font and emits
// one glyph per produced Unicode fragment.
func (in *Interpreter) showText(data []byte) {
	if len(data) == 0 {
		return
	}
	if in.current == nil {
		in.warn(WarnMissingFont, "", "text shown before any font was selected")
		return
	}

	ts := &in.gs.Text
	vertical := in.current.WritingMode() == font.WritingVertical
	ascent, descent, haveMetrics := in.current.Metrics()

	for _, code := range in.current.Decode(data) {
		// trm0 excludes horizontal scaling and rise: it supplies the
		// glyph origin frame and the device-space size.
		trm0 := ts.TextMatrix.Mul(in.gs.CTM)
		size := sanitize(ts.FontSize * trm0.Norm())

		spacing := ts.CharSpacing
		if code.IsSpace {
			spacing += ts.WordSpacing
		}

		var tx, ty float64
		var originText model.Point
		if vertical {
			// Vertical mode advances down one em by default and
			// centres the glyph on the vertical origin.
			ty = -(ts.FontSize + spacing)
			originText = model.Point{X: -code.Width * ts.FontSize / 2, Y: -0.88 * ts.FontSize}
		} else {
			tx = (code.Width*ts.FontSize + spacing) * ts.HorizontalScale
		}

		if ts.RenderMode != graphicsstate.RenderInvisible && code.Text != "" {
			trm := ts.TextMatrix.Mul(in.gs.CTM)
			if ts.Rise != 0 || originText.X != 0 || originText.Y != 0 {
				trm = model.Translate(originText.X, originText.Y+ts.Rise).Mul(trm)
			}
			origin := trm.Transform(model.Point{})
			advance := trm0.TransformVector(model.Point{X: tx, Y: ty})

			glyph := Glyph{
				Text:     code.Text,
				Origin:   model.Point{X: sanitize(origin.X), Y: sanitize(origin.Y)},
				Advance:  model.Point{X: sanitize(advance.X), Y: sanitize(advance.Y)},
				Size:     size,
				Vertical: vertical,
				Page:     in.page,
			}
			if haveMetrics {
				glyph.Ascent = sanitize(ascent * size)
				glyph.Descent = sanitize(descent * size)
			}

			// Empty-advance artifacts from empty strings carry no
			// information for layout.
			if glyph.Text != "" || glyph.Advance.X != 0 || glyph.Advance.Y != 0 {
				in.glyphs = append(in.glyphs, glyph)
			}
		}

		in.gs.AdvanceText(sanitize(tx), sanitize(ty))
	}
}

// showTextArray evaluates a TJ array: strings are shown, numbers kern
// the text matrix by (-n/1000)·Tfs·Th on the writing axis.
func (in *Interpreter) showTextArray(arr core.Array) {
	vertical := in.current != nil && in.current.WritingMode() == font.WritingVertical

	for _, item := range arr {
		switch v := item.(type) {
		case core.String:
			in.showText([]byte(v))
		case core.Int, core.Real:
			n, _ := core.ToNumber(v)
			ts := &in.gs.Text
			if vertical {
				in.gs.AdvanceText(0, sanitize(-n/1000*ts.FontSize))
			} else {
				in.gs.AdvanceText(sanitize(-n/1000*ts.FontSize*ts.HorizontalScale), 0)
			}
		}
	}
}

// resolveObj chases an indirect reference, returning nil on failure.
func (in *Interpreter) resolveObj(obj core.Object) core.Object {
	if obj == nil {
		return nil
	}
	if _, ok := obj.(core.IndirectRef); !ok {
		return obj
	}
	if in.resolve == nil {
		return nil
	}
	out, err := in.resolve(obj)
	if err != nil {
		return nil
	}
	return out
}

// operandNumber extracts the i-th operand as a sanitised float.
func operandNumber(operands []core.Object, i int) (float64, bool) {
	if i >= len(operands) {
		return 0, false
	}
	v, ok := core.ToNumber(operands[i])
	if !ok {
		return 0, false
	}
	return sanitize(v), true
}

// operandMatrix converts six numeric operands into a matrix.
func operandMatrix(operands []core.Object) (model.Matrix, bool) {
	if len(operands) != 6 {
		return model.Identity(), false
	}
	var m model.Matrix
	for i, op := range operands {
		v, ok := core.ToNumber(op)
		if !ok {
			return model.Identity(), false
		}
		m[i] = v
	}
	return m.Sanitized(), true
}

// sanitize clamps NaN and infinities to zero so broken operands cannot
// poison positions.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
