package font

import (
	"fmt"

	"github.com/tsawler/pdftext/core"

	"golang.org/x/text/unicode/norm"
)

// WritingMode selects the text advance axis.
type WritingMode int

const (
	WritingHorizontal WritingMode = iota
	WritingVertical
)

// Code is one decoded character code: the code value, its Unicode
// text, the advance width, and the number of input bytes it consumed.
type Code struct {
	Code  uint32
	Text  string
	Width float64 // Text-space units per unit font size (glyph width / 1000 for simple fonts)
	Bytes int

	// IsSpace marks the single-byte code 32 of a simple font, the only
	// code word spacing applies to.
	IsSpace bool
}

// Decoder is the capability set every font flavour provides: byte
// string decoding, advance widths, and the writing mode.
type Decoder interface {
	// Decode partitions the input into character codes, left to
	// right, and decodes each to Unicode. Codes with no mapping
	// produce U+FFFD.
	Decode(b []byte) []Code

	// WritingMode reports the advance axis of the font.
	WritingMode() WritingMode

	// BaseName returns the font's base name (e.g. "Helvetica").
	BaseName() string

	// Metrics returns the ascent and descent in text-space units per
	// unit font size, when the font descriptor provides them.
	Metrics() (ascent, descent float64, ok bool)

	// Diagnostics returns the soft problems collected while building
	// and using the decoder, each distinct message once.
	Diagnostics() []string
}

// Resolver resolves an object that may be an indirect reference.
type Resolver func(core.Object) (core.Object, error)

// Make builds a Decoder for a font dictionary. The resolver is used to
// chase indirect references inside the dictionary. Malformed entries
// degrade to defaults and are reported through the decoder's
// diagnostics rather than failing the page.
func Make(dict core.Dict, resolve Resolver) (Decoder, error) {
	subtype, _ := dict.GetName("Subtype")
	switch subtype {
	case "Type0":
		return newCIDFont(dict, resolve)
	case "Type3":
		return newType3Font(dict, resolve)
	case "Type1", "MMType1", "TrueType", "":
		return newSimpleFont(dict, resolve)
	default:
		return nil, fmt.Errorf("unsupported font subtype %q", subtype)
	}
}

// diagnostics collects soft problems, de-duplicated by message.
type diagnostics struct {
	seen  map[string]bool
	notes []string
}

func (d *diagnostics) add(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if d.seen == nil {
		d.seen = make(map[string]bool)
	}
	if d.seen[msg] {
		return
	}
	d.seen[msg] = true
	d.notes = append(d.notes, msg)
}

func (d *diagnostics) list() []string {
	return d.notes
}

// resolved chases an indirect reference, returning the input unchanged
// on resolver failure.
func resolved(obj core.Object, resolve Resolver) core.Object {
	if obj == nil || resolve == nil {
		return obj
	}
	if _, ok := obj.(core.IndirectRef); !ok {
		return obj
	}
	out, err := resolve(obj)
	if err != nil {
		return nil
	}
	return out
}

// dictName reads a name entry through the resolver.
func dictName(dict core.Dict, key string, resolve Resolver) string {
	obj := resolved(dict.Get(key), resolve)
	if name, ok := obj.(core.Name); ok {
		return string(name)
	}
	return ""
}

// dictNumber reads a numeric entry through the resolver.
func dictNumber(dict core.Dict, key string, resolve Resolver) (float64, bool) {
	return core.ToNumber(resolved(dict.Get(key), resolve))
}

// parseToUnicode loads and parses the font's ToUnicode CMap, when
// present. A malformed CMap adds a diagnostic and keeps the mappings
// parsed before the fault; when none parsed the result is nil and the
// caller falls back to the encoding path.
func parseToUnicode(dict core.Dict, resolve Resolver, diag *diagnostics) *ToUnicodeCMap {
	obj := resolved(dict.Get("ToUnicode"), resolve)
	if obj == nil {
		return nil
	}

	stream, ok := obj.(*core.Stream)
	if !ok {
		// /ToUnicode Identity-H style names add nothing over the
		// encoding path.
		return nil
	}

	data, err := stream.Decode()
	if err != nil {
		diag.add("failed to decode ToUnicode stream: %v", err)
		return nil
	}

	cmap, err := ParseToUnicodeCMap(data)
	if err != nil {
		diag.add("malformed ToUnicode CMap: %v", err)
		// Keep whatever prefix parsed successfully.
	}
	if cmap.Len() == 0 {
		return nil
	}
	return cmap
}

// parseSimpleWidths reads the FirstChar/Widths arrays of a simple
// font into a code -> width map (glyph-space units).
func parseSimpleWidths(dict core.Dict, resolve Resolver, diag *diagnostics) map[uint32]float64 {
	widthsObj := resolved(dict.Get("Widths"), resolve)
	arr, ok := widthsObj.(core.Array)
	if !ok {
		return nil
	}

	firstChar := 0
	if fc, ok := dictNumber(dict, "FirstChar", resolve); ok {
		firstChar = int(fc)
	}

	widths := make(map[uint32]float64, len(arr))
	for i, elem := range arr {
		w, ok := core.ToNumber(resolved(elem, resolve))
		if !ok {
			diag.add("non-numeric width at index %d", i)
			continue
		}
		widths[uint32(firstChar+i)] = w
	}
	return widths
}

// descriptorMetrics extracts ascent, descent and missing width from
// the font descriptor. Ascent and descent are scaled to text-space
// fractions; the missing width stays in glyph-space units.
type descriptorMetrics struct {
	ascent       float64
	descent      float64
	missingWidth float64
	haveMetrics  bool
}

func parseDescriptor(dict core.Dict, resolve Resolver) descriptorMetrics {
	var m descriptorMetrics

	obj := resolved(dict.Get("FontDescriptor"), resolve)
	desc, ok := obj.(core.Dict)
	if !ok {
		return m
	}

	if asc, ok := dictNumber(desc, "Ascent", resolve); ok {
		m.ascent = asc / 1000
		m.haveMetrics = true
	}
	if dsc, ok := dictNumber(desc, "Descent", resolve); ok {
		m.descent = dsc / 1000
		m.haveMetrics = true
	}
	if mw, ok := dictNumber(desc, "MissingWidth", resolve); ok {
		m.missingWidth = mw
	}
	return m
}

// normalize applies NFC normalisation so that decoded text compares
// equal regardless of how a producer composed its accents.
func normalize(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
