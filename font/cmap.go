package font

import (
	"fmt"
	"unicode/utf16"
)

// codespaceRange describes one codespace interval: byte strings of a
// fixed length whose big-endian value falls in [low, high].
type codespaceRange struct {
	low  uint32
	high uint32
	size int // Length in bytes, 1..4
}

// ToUnicodeCMap maps character codes to Unicode strings, as parsed from
// a font's ToUnicode stream. Mappings may target multi-codepoint
// strings (ligatures such as "fi").
type ToUnicodeCMap struct {
	codespaces []codespaceRange
	singles    map[uint32]string
	ranges     []bfRange
}

// bfRange is one beginbfrange entry. Either dst (base value form,
// where the last UTF-16 unit is incremented by the offset into the
// range) or dstArray (explicit destination per code) is set.
type bfRange struct {
	lo, hi   uint32
	dst      []uint16
	dstArray []string
}

// Lookup returns the Unicode string for a character code.
func (c *ToUnicodeCMap) Lookup(code uint32) (string, bool) {
	if c == nil {
		return "", false
	}
	if s, ok := c.singles[code]; ok {
		return s, true
	}
	for _, r := range c.ranges {
		if code < r.lo || code > r.hi {
			continue
		}
		offset := code - r.lo
		if r.dstArray != nil {
			if int(offset) < len(r.dstArray) {
				return r.dstArray[offset], true
			}
			return "", false
		}
		if len(r.dst) == 0 {
			return "", false
		}
		units := make([]uint16, len(r.dst))
		copy(units, r.dst)
		units[len(units)-1] += uint16(offset)
		return string(utf16.Decode(units)), true
	}
	return "", false
}

// Len returns the number of bfchar entries plus bfrange entries.
func (c *ToUnicodeCMap) Len() int {
	if c == nil {
		return 0
	}
	return len(c.singles) + len(c.ranges)
}

// ParseToUnicodeCMap parses the contents of a ToUnicode stream.
func ParseToUnicodeCMap(data []byte) (*ToUnicodeCMap, error) {
	cmap := &ToUnicodeCMap{singles: make(map[uint32]string)}

	lex := newCMapLexer(data)
	for {
		tok, ok := lex.next()
		if !ok {
			break
		}
		if tok.kind != cmapKeyword {
			continue
		}

		switch tok.text {
		case "begincodespacerange":
			if err := parseCodespaces(lex, &cmap.codespaces); err != nil {
				return cmap, err
			}
		case "beginbfchar":
			if err := cmap.parseBfChar(lex); err != nil {
				return cmap, err
			}
		case "beginbfrange":
			if err := cmap.parseBfRange(lex); err != nil {
				return cmap, err
			}
		}
	}

	return cmap, nil
}

func (c *ToUnicodeCMap) parseBfChar(lex *cmapLexer) error {
	for {
		src, ok := lex.next()
		if !ok {
			return fmt.Errorf("unterminated bfchar section")
		}
		if src.kind == cmapKeyword {
			return nil // endbfchar
		}
		dst, ok := lex.next()
		if !ok || src.kind != cmapHex || dst.kind != cmapHex {
			return fmt.Errorf("malformed bfchar entry")
		}
		c.singles[hexToCode(src.bytes)] = string(utf16.Decode(hexToUTF16(dst.bytes)))
	}
}

func (c *ToUnicodeCMap) parseBfRange(lex *cmapLexer) error {
	for {
		lo, ok := lex.next()
		if !ok {
			return fmt.Errorf("unterminated bfrange section")
		}
		if lo.kind == cmapKeyword {
			return nil // endbfrange
		}
		hi, ok := lex.next()
		if !ok || lo.kind != cmapHex || hi.kind != cmapHex {
			return fmt.Errorf("malformed bfrange entry")
		}

		dst, ok := lex.next()
		if !ok {
			return fmt.Errorf("truncated bfrange entry")
		}

		r := bfRange{lo: hexToCode(lo.bytes), hi: hexToCode(hi.bytes)}
		switch dst.kind {
		case cmapHex:
			r.dst = hexToUTF16(dst.bytes)
		case cmapArrayStart:
			for {
				elem, ok := lex.next()
				if !ok {
					return fmt.Errorf("unterminated bfrange array")
				}
				if elem.kind == cmapArrayEnd {
					break
				}
				if elem.kind == cmapHex {
					r.dstArray = append(r.dstArray, string(utf16.Decode(hexToUTF16(elem.bytes))))
				}
			}
		default:
			return fmt.Errorf("malformed bfrange destination")
		}
		c.ranges = append(c.ranges, r)
	}
}

// CIDEncoding partitions byte strings into character codes and maps
// the codes to CIDs. It represents either a predefined CMap (such as
// Identity-H) or an embedded CMap stream.
type CIDEncoding struct {
	name       string
	wmode      int
	codespaces []codespaceRange
	cidSingles map[uint32]uint32
	cidRanges  []cidRange
}

type cidRange struct {
	lo, hi uint32
	size   int
	cid    uint32
}

// IdentityEncoding returns the Identity-H or Identity-V encoding:
// 2-byte codes mapping directly to CIDs.
func IdentityEncoding(vertical bool) *CIDEncoding {
	name := "Identity-H"
	wmode := 0
	if vertical {
		name = "Identity-V"
		wmode = 1
	}
	return &CIDEncoding{
		name:       name,
		wmode:      wmode,
		codespaces: []codespaceRange{{low: 0, high: 0xFFFF, size: 2}},
		cidRanges:  []cidRange{{lo: 0, hi: 0xFFFF, size: 2, cid: 0}},
	}
}

// ParseCIDEncoding parses an embedded CMap stream into a CIDEncoding.
func ParseCIDEncoding(data []byte) (*CIDEncoding, error) {
	enc := &CIDEncoding{cidSingles: make(map[uint32]uint32)}

	lex := newCMapLexer(data)
	var prev []cmapToken

	for {
		tok, ok := lex.next()
		if !ok {
			break
		}

		if tok.kind != cmapKeyword {
			prev = append(prev, tok)
			if len(prev) > 8 {
				prev = prev[1:]
			}
			continue
		}

		switch tok.text {
		case "begincodespacerange":
			if err := parseCodespaces(lex, &enc.codespaces); err != nil {
				return enc, err
			}
		case "begincidrange":
			if err := enc.parseCIDRange(lex); err != nil {
				return enc, err
			}
		case "begincidchar":
			if err := enc.parseCIDChar(lex); err != nil {
				return enc, err
			}
		case "def":
			// Catch "/WMode <n> def".
			if len(prev) >= 2 &&
				prev[len(prev)-2].kind == cmapName && prev[len(prev)-2].text == "WMode" &&
				prev[len(prev)-1].kind == cmapNumber {
				enc.wmode = int(prev[len(prev)-1].num)
			}
			if len(prev) >= 2 &&
				prev[len(prev)-2].kind == cmapName && prev[len(prev)-2].text == "CMapName" &&
				prev[len(prev)-1].kind == cmapName {
				enc.name = prev[len(prev)-1].text
			}
		}
		prev = prev[:0]
	}

	if len(enc.codespaces) == 0 {
		// Degenerate CMap: fall back to 2-byte identity codespace.
		enc.codespaces = []codespaceRange{{low: 0, high: 0xFFFF, size: 2}}
	}
	return enc, nil
}

func (e *CIDEncoding) parseCIDRange(lex *cmapLexer) error {
	for {
		lo, ok := lex.next()
		if !ok {
			return fmt.Errorf("unterminated cidrange section")
		}
		if lo.kind == cmapKeyword {
			return nil // endcidrange
		}
		hi, ok1 := lex.next()
		cid, ok2 := lex.next()
		if !ok1 || !ok2 || lo.kind != cmapHex || hi.kind != cmapHex || cid.kind != cmapNumber {
			return fmt.Errorf("malformed cidrange entry")
		}
		e.cidRanges = append(e.cidRanges, cidRange{
			lo:   hexToCode(lo.bytes),
			hi:   hexToCode(hi.bytes),
			size: len(lo.bytes),
			cid:  uint32(cid.num),
		})
	}
}

func (e *CIDEncoding) parseCIDChar(lex *cmapLexer) error {
	for {
		src, ok := lex.next()
		if !ok {
			return fmt.Errorf("unterminated cidchar section")
		}
		if src.kind == cmapKeyword {
			return nil // endcidchar
		}
		cid, ok := lex.next()
		if !ok || src.kind != cmapHex || cid.kind != cmapNumber {
			return fmt.Errorf("malformed cidchar entry")
		}
		e.cidSingles[hexToCode(src.bytes)] = uint32(cid.num)
	}
}

// WMode returns the writing mode: 0 horizontal, 1 vertical.
func (e *CIDEncoding) WMode() int {
	return e.wmode
}

// Name returns the CMap name, if known.
func (e *CIDEncoding) Name() string {
	return e.name
}

// NextCode consumes the next character code from the input,
// partitioning by the codespace ranges. Codes are matched shortest
// first, widening a byte at a time, per the CMap matching rules. If no
// codespace matches, a single byte is consumed so decoding always makes
// progress.
func (e *CIDEncoding) NextCode(b []byte) (code uint32, size int) {
	if len(b) == 0 {
		return 0, 0
	}

	v := uint32(b[0])
	for width := 1; width <= 4; width++ {
		for _, cs := range e.codespaces {
			if cs.size == width && v >= cs.low && v <= cs.high {
				return v, width
			}
		}
		if width >= len(b) {
			break
		}
		v = v<<8 | uint32(b[width])
	}

	return uint32(b[0]), 1
}

// CID maps a character code to a CID. Unmapped codes return false.
func (e *CIDEncoding) CID(code uint32) (uint32, bool) {
	if cid, ok := e.cidSingles[code]; ok {
		return cid, true
	}
	for _, r := range e.cidRanges {
		if code >= r.lo && code <= r.hi {
			return r.cid + (code - r.lo), true
		}
	}
	return 0, false
}

// parseCodespaces reads hex pairs until the closing keyword.
func parseCodespaces(lex *cmapLexer, out *[]codespaceRange) error {
	for {
		lo, ok := lex.next()
		if !ok {
			return fmt.Errorf("unterminated codespacerange section")
		}
		if lo.kind == cmapKeyword {
			return nil // endcodespacerange
		}
		hi, ok := lex.next()
		if !ok || lo.kind != cmapHex || hi.kind != cmapHex {
			return fmt.Errorf("malformed codespacerange entry")
		}
		*out = append(*out, codespaceRange{
			low:  hexToCode(lo.bytes),
			high: hexToCode(hi.bytes),
			size: len(lo.bytes),
		})
	}
}

// hexToCode interprets up to four hex-decoded bytes as a big-endian
// code value.
func hexToCode(b []byte) uint32 {
	var v uint32
	for _, c := range b {
		v = v<<8 | uint32(c)
	}
	return v
}

// hexToUTF16 interprets hex-decoded bytes as big-endian UTF-16 code
// units. A single byte is treated as one unit.
func hexToUTF16(b []byte) []uint16 {
	if len(b) == 1 {
		return []uint16{uint16(b[0])}
	}
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		units = append(units, uint16(b[i])<<8|uint16(b[i+1]))
	}
	return units
}

// cmapTokenKind enumerates the token types of the CMap subset of
// PostScript syntax.
type cmapTokenKind int

const (
	cmapHex cmapTokenKind = iota
	cmapNumber
	cmapName
	cmapKeyword
	cmapArrayStart
	cmapArrayEnd
)

type cmapToken struct {
	kind  cmapTokenKind
	bytes []byte // cmapHex: decoded bytes
	num   float64
	text  string
}

// cmapLexer tokenises the PostScript subset used by CMap programs.
// Dictionaries and literal strings are skipped; only the constructs
// the mapping sections use are surfaced.
type cmapLexer struct {
	data []byte
	pos  int
}

func newCMapLexer(data []byte) *cmapLexer {
	return &cmapLexer{data: data}
}

func (l *cmapLexer) next() (cmapToken, bool) {
	for l.pos < len(l.data) {
		c := l.data[l.pos]

		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0:
			l.pos++

		case c == '%':
			for l.pos < len(l.data) && l.data[l.pos] != '\n' && l.data[l.pos] != '\r' {
				l.pos++
			}

		case c == '<' && l.pos+1 < len(l.data) && l.data[l.pos+1] == '<':
			l.skipDict()

		case c == '<':
			return l.readHex(), true

		case c == '[':
			l.pos++
			return cmapToken{kind: cmapArrayStart}, true

		case c == ']':
			l.pos++
			return cmapToken{kind: cmapArrayEnd}, true

		case c == '/':
			l.pos++
			start := l.pos
			for l.pos < len(l.data) && !isCMapDelim(l.data[l.pos]) {
				l.pos++
			}
			return cmapToken{kind: cmapName, text: string(l.data[start:l.pos])}, true

		case c == '(':
			l.skipString()

		case c == '-' || c == '.' || (c >= '0' && c <= '9'):
			return l.readNumber(), true

		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			start := l.pos
			for l.pos < len(l.data) && !isCMapDelim(l.data[l.pos]) {
				l.pos++
			}
			return cmapToken{kind: cmapKeyword, text: string(l.data[start:l.pos])}, true

		default:
			l.pos++
		}
	}
	return cmapToken{}, false
}

func (l *cmapLexer) readHex() cmapToken {
	l.pos++ // skip '<'
	var out []byte
	var pending byte
	havePending := false

	for l.pos < len(l.data) {
		c := l.data[l.pos]
		if c == '>' {
			l.pos++
			break
		}
		v, ok := hexNibble(c)
		if !ok {
			l.pos++
			continue
		}
		if havePending {
			out = append(out, pending<<4|v)
			havePending = false
		} else {
			pending = v
			havePending = true
		}
		l.pos++
	}
	if havePending {
		out = append(out, pending<<4)
	}
	return cmapToken{kind: cmapHex, bytes: out}
}

func (l *cmapLexer) readNumber() cmapToken {
	start := l.pos
	if l.data[l.pos] == '-' {
		l.pos++
	}
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		if (c >= '0' && c <= '9') || c == '.' {
			l.pos++
		} else {
			break
		}
	}
	var v float64
	fmt.Sscanf(string(l.data[start:l.pos]), "%g", &v)
	return cmapToken{kind: cmapNumber, num: v}
}

func (l *cmapLexer) skipDict() {
	depth := 0
	for l.pos+1 < len(l.data) {
		if l.data[l.pos] == '<' && l.data[l.pos+1] == '<' {
			depth++
			l.pos += 2
			continue
		}
		if l.data[l.pos] == '>' && l.data[l.pos+1] == '>' {
			depth--
			l.pos += 2
			if depth == 0 {
				return
			}
			continue
		}
		l.pos++
	}
	l.pos = len(l.data)
}

func (l *cmapLexer) skipString() {
	l.pos++ // skip '('
	depth := 1
	for l.pos < len(l.data) && depth > 0 {
		switch l.data[l.pos] {
		case '\\':
			l.pos++
		case '(':
			depth++
		case ')':
			depth--
		}
		l.pos++
	}
}

func isCMapDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\f', 0, '<', '>', '[', ']', '/', '(', ')', '%', '{', '}':
		return true
	}
	return false
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
