package font

import (
	"strings"
	"sync"
	"unicode/utf16"
)

// The Adobe Glyph List maps PostScript glyph names to Unicode. The
// table below is the subset covering the standard Latin encodings,
// common punctuation and symbols; algorithmic names (uniXXXX, uXXXXXX)
// are handled separately in GlyphToUnicode. The full table is built
// once per process on first use.

var (
	glyphOnce  sync.Once
	glyphTable map[string]rune
)

func glyphNames() map[string]rune {
	glyphOnce.Do(func() {
		glyphTable = make(map[string]rune, len(aglEntries))
		for _, e := range aglEntries {
			glyphTable[e.name] = e.r
		}
	})
	return glyphTable
}

// GlyphToUnicode resolves a glyph name to a Unicode string. Names of
// the form uniXXXX (exactly four hex digits, possibly repeated) and
// uXXXX..uXXXXXX decode to the literal codepoints. Returns "" and
// false for unknown names.
func GlyphToUnicode(name string) (string, bool) {
	if r, ok := glyphNames()[name]; ok {
		return string(r), true
	}

	// uniXXXX or uniXXXXXXXX...: a sequence of 4-digit UTF-16 code
	// units.
	if strings.HasPrefix(name, "uni") && len(name) >= 7 && (len(name)-3)%4 == 0 {
		var units []uint16
		for i := 3; i < len(name); i += 4 {
			v, ok := parseHex(name[i : i+4])
			if !ok {
				units = nil
				break
			}
			units = append(units, uint16(v))
		}
		if units != nil {
			return string(utf16.Decode(units)), true
		}
	}

	// uXXXX to uXXXXXX: a single codepoint of 4-6 hex digits.
	if strings.HasPrefix(name, "u") && len(name) >= 5 && len(name) <= 7 {
		if v, ok := parseHex(name[1:]); ok && v <= 0x10FFFF {
			return string(rune(v)), true
		}
	}

	// Suffixed variants like "a.sc" or "one.oldstyle" resolve through
	// their base name.
	if dot := strings.IndexByte(name, '.'); dot > 0 {
		return GlyphToUnicode(name[:dot])
	}

	return "", false
}

func parseHex(s string) (uint32, bool) {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint32(c - '0')
		case c >= 'A' && c <= 'F':
			v |= uint32(c-'A') + 10
		case c >= 'a' && c <= 'f':
			v |= uint32(c-'a') + 10
		default:
			return 0, false
		}
	}
	return v, true
}

type aglEntry struct {
	name string
	r    rune
}

var aglEntries = []aglEntry{
	{"A", 'A'}, {"B", 'B'}, {"C", 'C'}, {"D", 'D'}, {"E", 'E'},
	{"F", 'F'}, {"G", 'G'}, {"H", 'H'}, {"I", 'I'}, {"J", 'J'},
	{"K", 'K'}, {"L", 'L'}, {"M", 'M'}, {"N", 'N'}, {"O", 'O'},
	{"P", 'P'}, {"Q", 'Q'}, {"R", 'R'}, {"S", 'S'}, {"T", 'T'},
	{"U", 'U'}, {"V", 'V'}, {"W", 'W'}, {"X", 'X'}, {"Y", 'Y'},
	{"Z", 'Z'},
	{"a", 'a'}, {"b", 'b'}, {"c", 'c'}, {"d", 'd'}, {"e", 'e'},
	{"f", 'f'}, {"g", 'g'}, {"h", 'h'}, {"i", 'i'}, {"j", 'j'},
	{"k", 'k'}, {"l", 'l'}, {"m", 'm'}, {"n", 'n'}, {"o", 'o'},
	{"p", 'p'}, {"q", 'q'}, {"r", 'r'}, {"s", 's'}, {"t", 't'},
	{"u", 'u'}, {"v", 'v'}, {"w", 'w'}, {"x", 'x'}, {"y", 'y'},
	{"z", 'z'},
	{"zero", '0'}, {"one", '1'}, {"two", '2'}, {"three", '3'},
	{"four", '4'}, {"five", '5'}, {"six", '6'}, {"seven", '7'},
	{"eight", '8'}, {"nine", '9'},
	{"space", ' '}, {"exclam", '!'}, {"quotedbl", '"'},
	{"numbersign", '#'}, {"dollar", '$'}, {"percent", '%'},
	{"ampersand", '&'}, {"quotesingle", '\''}, {"parenleft", '('},
	{"parenright", ')'}, {"asterisk", '*'}, {"plus", '+'},
	{"comma", ','}, {"hyphen", '-'}, {"period", '.'}, {"slash", '/'},
	{"colon", ':'}, {"semicolon", ';'}, {"less", '<'}, {"equal", '='},
	{"greater", '>'}, {"question", '?'}, {"at", '@'},
	{"bracketleft", '['}, {"backslash", '\\'}, {"bracketright", ']'},
	{"asciicircum", '^'}, {"underscore", '_'}, {"grave", '`'},
	{"braceleft", '{'}, {"bar", '|'}, {"braceright", '}'},
	{"asciitilde", '~'},
	{"exclamdown", 0x00A1}, {"cent", 0x00A2}, {"sterling", 0x00A3},
	{"currency", 0x00A4}, {"yen", 0x00A5}, {"brokenbar", 0x00A6},
	{"section", 0x00A7}, {"dieresis", 0x00A8}, {"copyright", 0x00A9},
	{"ordfeminine", 0x00AA}, {"guillemotleft", 0x00AB},
	{"logicalnot", 0x00AC}, {"registered", 0x00AE}, {"macron", 0x00AF},
	{"degree", 0x00B0}, {"plusminus", 0x00B1}, {"twosuperior", 0x00B2},
	{"threesuperior", 0x00B3}, {"acute", 0x00B4}, {"mu", 0x00B5},
	{"paragraph", 0x00B6}, {"periodcentered", 0x00B7},
	{"cedilla", 0x00B8}, {"onesuperior", 0x00B9},
	{"ordmasculine", 0x00BA}, {"guillemotright", 0x00BB},
	{"onequarter", 0x00BC}, {"onehalf", 0x00BD},
	{"threequarters", 0x00BE}, {"questiondown", 0x00BF},
	{"Agrave", 0x00C0}, {"Aacute", 0x00C1}, {"Acircumflex", 0x00C2},
	{"Atilde", 0x00C3}, {"Adieresis", 0x00C4}, {"Aring", 0x00C5},
	{"AE", 0x00C6}, {"Ccedilla", 0x00C7}, {"Egrave", 0x00C8},
	{"Eacute", 0x00C9}, {"Ecircumflex", 0x00CA}, {"Edieresis", 0x00CB},
	{"Igrave", 0x00CC}, {"Iacute", 0x00CD}, {"Icircumflex", 0x00CE},
	{"Idieresis", 0x00CF}, {"Eth", 0x00D0}, {"Ntilde", 0x00D1},
	{"Ograve", 0x00D2}, {"Oacute", 0x00D3}, {"Ocircumflex", 0x00D4},
	{"Otilde", 0x00D5}, {"Odieresis", 0x00D6}, {"multiply", 0x00D7},
	{"Oslash", 0x00D8}, {"Ugrave", 0x00D9}, {"Uacute", 0x00DA},
	{"Ucircumflex", 0x00DB}, {"Udieresis", 0x00DC}, {"Yacute", 0x00DD},
	{"Thorn", 0x00DE}, {"germandbls", 0x00DF},
	{"agrave", 0x00E0}, {"aacute", 0x00E1}, {"acircumflex", 0x00E2},
	{"atilde", 0x00E3}, {"adieresis", 0x00E4}, {"aring", 0x00E5},
	{"ae", 0x00E6}, {"ccedilla", 0x00E7}, {"egrave", 0x00E8},
	{"eacute", 0x00E9}, {"ecircumflex", 0x00EA}, {"edieresis", 0x00EB},
	{"igrave", 0x00EC}, {"iacute", 0x00ED}, {"icircumflex", 0x00EE},
	{"idieresis", 0x00EF}, {"eth", 0x00F0}, {"ntilde", 0x00F1},
	{"ograve", 0x00F2}, {"oacute", 0x00F3}, {"ocircumflex", 0x00F4},
	{"otilde", 0x00F5}, {"odieresis", 0x00F6}, {"divide", 0x00F7},
	{"oslash", 0x00F8}, {"ugrave", 0x00F9}, {"uacute", 0x00FA},
	{"ucircumflex", 0x00FB}, {"udieresis", 0x00FC}, {"yacute", 0x00FD},
	{"thorn", 0x00FE}, {"ydieresis", 0x00FF},
	{"Amacron", 0x0100}, {"amacron", 0x0101}, {"Lslash", 0x0141},
	{"lslash", 0x0142}, {"OE", 0x0152}, {"oe", 0x0153},
	{"Scaron", 0x0160}, {"scaron", 0x0161}, {"Ydieresis", 0x0178},
	{"Zcaron", 0x017D}, {"zcaron", 0x017E}, {"florin", 0x0192},
	{"dotlessi", 0x0131},
	{"circumflex", 0x02C6}, {"caron", 0x02C7}, {"breve", 0x02D8},
	{"dotaccent", 0x02D9}, {"ring", 0x02DA}, {"ogonek", 0x02DB},
	{"tilde", 0x02DC}, {"hungarumlaut", 0x02DD},
	{"endash", 0x2013}, {"emdash", 0x2014},
	{"quoteleft", 0x2018}, {"quoteright", 0x2019},
	{"quotesinglbase", 0x201A}, {"quotedblleft", 0x201C},
	{"quotedblright", 0x201D}, {"quotedblbase", 0x201E},
	{"dagger", 0x2020}, {"daggerdbl", 0x2021}, {"bullet", 0x2022},
	{"ellipsis", 0x2026}, {"perthousand", 0x2030},
	{"guilsinglleft", 0x2039}, {"guilsinglright", 0x203A},
	{"fraction", 0x2044}, {"Euro", 0x20AC}, {"trademark", 0x2122},
	{"minus", 0x2212}, {"lozenge", 0x25CA},
	{"fi", 0xFB01}, {"fl", 0xFB02}, {"ff", 0xFB00},
	{"ffi", 0xFB03}, {"ffl", 0xFB04},
	{"nbspace", 0x00A0}, {"softhyphen", 0x00AD},
	{"Delta", 0x2206}, {"Omega", 0x2126}, {"pi", 0x03C0},
	{"summation", 0x2211}, {"product", 0x220F}, {"radical", 0x221A},
	{"infinity", 0x221E}, {"integral", 0x222B},
	{"approxequal", 0x2248}, {"notequal", 0x2260},
	{"lessequal", 0x2264}, {"greaterequal", 0x2265},
	{"partialdiff", 0x2202}, {"apple", 0xF8FF},
	{"arrowleft", 0x2190}, {"arrowup", 0x2191},
	{"arrowright", 0x2192}, {"arrowdown", 0x2193},
	{"arrowboth", 0x2194},
}
