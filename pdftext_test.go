package pdftext

import (
	"bytes"
	"crypto/md5"
	"crypto/rc4"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// rawObject is one indirect object for the test PDF builder: the body
// text and an optional binary stream payload (the builder adds the
// /Length entry and stream framing).
type rawObject struct {
	body   string
	stream []byte
}

// buildPDF assembles a document from the given objects (object i+1
// gets objects[i]) with a classic cross-reference table. trailerExtra
// is spliced into the trailer dictionary.
func buildPDF(objects []rawObject, trailerExtra string) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects)+1)
	for i, obj := range objects {
		offsets[i+1] = buf.Len()
		if obj.stream != nil {
			fmt.Fprintf(&buf, "%d 0 obj\n<< %s /Length %d >>\nstream\n", i+1, obj.body, len(obj.stream))
			buf.Write(obj.stream)
			buf.WriteString("\nendstream\nendobj\n")
		} else {
			fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj.body)
		}
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objects); i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R %s >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, trailerExtra, xrefOffset)

	return buf.Bytes()
}

// singlePagePDF builds a one-page document with a Helvetica font at
// /F1 and the given content stream.
func singlePagePDF(content string) []byte {
	return buildPDF([]rawObject{
		{body: "<< /Type /Catalog /Pages 2 0 R >>"},
		{body: "<< /Type /Pages /Kids [3 0 R] /Count 1 >>"},
		{body: "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
			"/Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>"},
		{body: "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>"},
		{body: "", stream: []byte(content)},
	}, "")
}

// multiPagePDF builds one page per content string.
func multiPagePDF(contents []string) []byte {
	n := len(contents)
	objects := []rawObject{
		{body: "<< /Type /Catalog /Pages 2 0 R >>"},
	}

	var kids []string
	for i := 0; i < n; i++ {
		kids = append(kids, fmt.Sprintf("%d 0 R", 3+i))
	}
	objects = append(objects, rawObject{body: fmt.Sprintf(
		"<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), n)})

	fontNum := 3 + n
	for i := 0; i < n; i++ {
		objects = append(objects, rawObject{body: fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
				"/Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>",
			fontNum, fontNum+1+i)})
	}
	objects = append(objects, rawObject{body: "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>"})
	for _, content := range contents {
		objects = append(objects, rawObject{body: "", stream: []byte(content)})
	}

	return buildPDF(objects, "")
}

func TestSimpleDocument(t *testing.T) {
	data := singlePagePDF("BT /F1 12 Tf 72 720 Td (This is a small demonstration .pdf file) Tj ET")

	out, err := FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}

	if got := out.String(); !strings.Contains(got, "This is a small demonstration .pdf file") {
		t.Errorf("String() = %q, want the demonstration phrase", got)
	}

	lines := out.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	span := lines[0][0]
	if span.Page != 1 {
		t.Errorf("span page = %d, want 1", span.Page)
	}
	if span.FontSize != 12 {
		t.Errorf("span font size = %v, want 12", span.FontSize)
	}
	if span.BBox.Left != 72 {
		t.Errorf("span left = %v, want 72", span.BBox.Left)
	}
}

func TestFromPathMatchesFromBytes(t *testing.T) {
	data := singlePagePDF("BT /F1 12 Tf 72 720 Td (path or bytes) Tj ET")

	path := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	fromPath, err := FromPath(path)
	if err != nil {
		t.Fatalf("FromPath failed: %v", err)
	}
	fromBytes, err := FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}

	if fromPath.String() != fromBytes.String() {
		t.Error("String() differs between FromPath and FromBytes")
	}
	if fromPath.StringPretty() != fromBytes.StringPretty() {
		t.Error("StringPretty() differs between FromPath and FromBytes")
	}
	if diff := cmp.Diff(fromBytes.Lines(), fromPath.Lines()); diff != "" {
		t.Errorf("Lines() differ:\n%s", diff)
	}
}

func TestDeterminism(t *testing.T) {
	data := multiPagePDF([]string{
		"BT /F1 12 Tf 72 720 Td (first page body text) Tj ET",
		"BT /F1 10 Tf 72 700 Td (second) Tj 200 0 Td (column) Tj ET",
	})

	a, err := FromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromBytes(data)
	if err != nil {
		t.Fatal(err)
	}

	if a.String() != b.String() {
		t.Error("String() is not deterministic")
	}
	if a.StringPretty() != b.StringPretty() {
		t.Error("StringPretty() is not deterministic")
	}
	if diff := cmp.Diff(a.Lines(), b.Lines()); diff != "" {
		t.Errorf("Lines() are not deterministic:\n%s", diff)
	}
}

func TestFromReader(t *testing.T) {
	data := singlePagePDF("BT /F1 12 Tf 72 720 Td (streamed) Tj ET")

	out, err := FromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}
	if !strings.Contains(out.String(), "streamed") {
		t.Errorf("String() = %q", out.String())
	}
}

func TestTwoColumnSameLine(t *testing.T) {
	content := "BT /F1 12 Tf 72 700 Td (Alpha) Tj ET " +
		"BT /F1 12 Tf 400 700 Td (Beta) Tj ET"
	out, err := FromBytes(singlePagePDF(content))
	if err != nil {
		t.Fatal(err)
	}

	lines := out.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want both columns on one line", len(lines))
	}
	if len(lines[0]) != 2 {
		t.Fatalf("got %d spans, want 2", len(lines[0]))
	}
	if lines[0][0].Text != "Alpha" || lines[0][1].Text != "Beta" {
		t.Errorf("spans = %q, %q; want Alpha, Beta", lines[0][0].Text, lines[0][1].Text)
	}

	if !strings.Contains(out.String(), "Alpha Beta") {
		t.Errorf("String() = %q, want the columns joined by a space", out.String())
	}
}

func TestPageOrderAndSeparator(t *testing.T) {
	data := multiPagePDF([]string{
		"BT /F1 12 Tf 72 720 Td (one) Tj ET",
		"BT /F1 12 Tf 72 720 Td (two) Tj ET",
	})
	out, err := FromBytes(data)
	if err != nil {
		t.Fatal(err)
	}

	if got := out.String(); got != "one\n\ntwo" {
		t.Errorf("String() = %q, want pages separated by a blank line", got)
	}

	// Every span on page 1 precedes every span on page 2.
	lastPage := 0
	for _, line := range out.Lines() {
		for _, span := range line {
			if span.Page < lastPage {
				t.Fatalf("page order violated: %d after %d", span.Page, lastPage)
			}
			lastPage = span.Page
		}
	}
}

func TestLigatureToUnicode(t *testing.T) {
	cmap := "/CIDInit /ProcSet findresource begin\n" +
		"1 begincodespacerange\n<00> <FF>\nendcodespacerange\n" +
		"2 beginbfchar\n<01> <00660069>\n<6E> <006E>\nendbfchar\nendcmap\n"

	data := buildPDF([]rawObject{
		{body: "<< /Type /Catalog /Pages 2 0 R >>"},
		{body: "<< /Type /Pages /Kids [3 0 R] /Count 1 >>"},
		{body: "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
			"/Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>"},
		{body: "<< /Type /Font /Subtype /Type1 /BaseFont /Custom /ToUnicode 6 0 R >>"},
		{body: "", stream: []byte("BT /F1 12 Tf 72 700 Td (\001n) Tj ET")},
		{body: "", stream: []byte(cmap)},
	}, "")

	out, err := FromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if got := out.String(); !strings.Contains(got, "fin") {
		t.Errorf("String() = %q, want the expanded ligature fi followed by n", got)
	}
}

func TestInvisibleTextAbsent(t *testing.T) {
	content := "BT /F1 12 Tf 72 700 Td 3 Tr (secret layer) Tj 0 Tr 0 -20 Td (visible) Tj ET"
	out, err := FromBytes(singlePagePDF(content))
	if err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if strings.Contains(got, "secret") {
		t.Errorf("invisible text leaked: %q", got)
	}
	if !strings.Contains(got, "visible") {
		t.Errorf("visible text missing: %q", got)
	}
}

func TestRotatedText(t *testing.T) {
	// 90-degree rotation via the text matrix; narrow glyphs so the
	// per-glyph baseline steps stay inside the grouping tolerance.
	content := "BT /F1 12 Tf 0 1 -1 0 300 100 Tm (lll) Tj ET"
	out, err := FromBytes(singlePagePDF(content))
	if err != nil {
		t.Fatal(err)
	}

	lines := out.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want rotated glyphs grouped into one", len(lines))
	}
	span := lines[0][0]
	if span.Text != "lll" {
		t.Errorf("text = %q, want lll", span.Text)
	}

	width := span.BBox.Right - span.BBox.Left
	height := span.BBox.Top - span.BBox.Bottom
	if height <= width {
		t.Errorf("bbox %v should be taller than wide for rotated text", span.BBox)
	}
}

func TestCIDIdentityH(t *testing.T) {
	cmap := "1 begincodespacerange\n<0000> <FFFF>\nendcodespacerange\n" +
		"2 beginbfchar\n<0041> <4F60>\n<0042> <597D>\nendbfchar\nendcmap\n"

	data := buildPDF([]rawObject{
		{body: "<< /Type /Catalog /Pages 2 0 R >>"},
		{body: "<< /Type /Pages /Kids [3 0 R] /Count 1 >>"},
		{body: "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
			"/Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>"},
		{body: "<< /Type /Font /Subtype /Type0 /BaseFont /TestCID /Encoding /Identity-H " +
			"/DescendantFonts [6 0 R] /ToUnicode 7 0 R >>"},
		{body: "", stream: []byte("BT /F1 12 Tf 72 700 Td <00410042> Tj ET")},
		{body: "<< /Type /Font /Subtype /CIDFontType2 /BaseFont /TestCID /DW 1000 >>"},
		{body: "", stream: []byte(cmap)},
	}, "")

	out, err := FromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if got := out.String(); !strings.Contains(got, "你好") {
		t.Errorf("String() = %q, want the CID text in content order", got)
	}
}

// encryptedPDF builds a revision 2 RC4-encrypted document whose only
// page shows the given text. The user password is "secret".
func encryptedPDF(t *testing.T, plaintext string) []byte {
	t.Helper()

	id := []byte("0123456789abcdef")
	userPwd := "secret"
	pad := []byte{
		0x28, 0xBF, 0x4E, 0x5E, 0x4E, 0x75, 0x8A, 0x41,
		0x64, 0x00, 0x4E, 0x56, 0xFF, 0xFA, 0x01, 0x08,
		0x2E, 0x2E, 0x00, 0xB6, 0xD0, 0x68, 0x3E, 0x80,
		0x2F, 0x0C, 0xA9, 0xFE, 0x64, 0x53, 0x69, 0x7A,
	}
	padded := func(pwd string) []byte {
		out := make([]byte, 32)
		n := copy(out, pwd)
		copy(out[n:], pad)
		return out
	}

	// /O from the owner password (Algorithm 3, revision 2).
	ownerHash := md5.Sum(padded("owner"))
	c, _ := rc4.NewCipher(ownerHash[:5])
	o := make([]byte, 32)
	c.XORKeyStream(o, padded(userPwd))

	// File key (Algorithm 2) with P = -4.
	h := md5.New()
	h.Write(padded(userPwd))
	h.Write(o)
	h.Write([]byte{0xFC, 0xFF, 0xFF, 0xFF})
	h.Write(id)
	key := h.Sum(nil)[:5]

	// /U (Algorithm 4).
	u := make([]byte, 32)
	c, _ = rc4.NewCipher(key)
	c.XORKeyStream(u, pad)

	// Encrypt the content stream with the object 5 key.
	content := fmt.Sprintf("BT /F1 12 Tf 72 700 Td (%s) Tj ET", plaintext)
	objmd := md5.New()
	objmd.Write(key)
	objmd.Write([]byte{5, 0, 0, 0, 0})
	objKey := objmd.Sum(nil)[:10]

	encContent := make([]byte, len(content))
	c, _ = rc4.NewCipher(objKey)
	c.XORKeyStream(encContent, []byte(content))

	hexStr := func(b []byte) string {
		return fmt.Sprintf("<%X>", b)
	}

	return buildPDF([]rawObject{
		{body: "<< /Type /Catalog /Pages 2 0 R >>"},
		{body: "<< /Type /Pages /Kids [3 0 R] /Count 1 >>"},
		{body: "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
			"/Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>"},
		{body: "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>"},
		{body: "", stream: encContent},
		{body: "<< /Filter /Standard /V 1 /R 2 /Length 40 /P -4 " +
			"/O " + hexStr(o) + " /U " + hexStr(u) + " >>"},
	}, fmt.Sprintf("/Encrypt 6 0 R /ID [%s %s]", hexStr(id), hexStr(id)))
}

func TestEncryptedWithPassword(t *testing.T) {
	data := encryptedPDF(t, "Confidential")

	out, err := FromBytes(data, WithPassword("secret"))
	if err != nil {
		t.Fatalf("FromBytes with password failed: %v", err)
	}
	if !strings.Contains(out.String(), "Confidential") {
		t.Errorf("String() = %q, want the decrypted text", out.String())
	}
}

func TestEncryptedNoPassword(t *testing.T) {
	data := encryptedPDF(t, "Confidential")

	_, err := FromBytes(data)
	if !errors.Is(err, ErrEncryptedNoPassword) {
		t.Errorf("got %v, want ErrEncryptedNoPassword", err)
	}
}

func TestEncryptedWrongPassword(t *testing.T) {
	data := encryptedPDF(t, "Confidential")

	_, err := FromBytes(data, WithPassword("nope"))
	if !errors.Is(err, ErrWrongPassword) {
		t.Errorf("got %v, want ErrWrongPassword", err)
	}
}

func TestInvalidPDF(t *testing.T) {
	_, err := FromBytes([]byte("certainly not a PDF"))
	if !errors.Is(err, ErrInvalidPDF) {
		t.Errorf("got %v, want ErrInvalidPDF", err)
	}
}

func TestMissingFile(t *testing.T) {
	_, err := FromPath(filepath.Join(t.TempDir(), "missing.pdf"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if errors.Is(err, ErrInvalidPDF) {
		t.Error("missing file should surface as an I/O error, not ErrInvalidPDF")
	}
}

func TestUnknownFilterSkipsPage(t *testing.T) {
	data := buildPDF([]rawObject{
		{body: "<< /Type /Catalog /Pages 2 0 R >>"},
		{body: "<< /Type /Pages /Kids [3 0 R 4 0 R] /Count 2 >>"},
		{body: "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
			"/Resources << /Font << /F1 5 0 R >> >> /Contents 6 0 R >>"},
		{body: "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
			"/Resources << /Font << /F1 5 0 R >> >> /Contents 7 0 R >>"},
		{body: "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>"},
		{body: "/Filter /JBIG2Decode", stream: []byte("\x01\x02\x03")},
		{body: "", stream: []byte("BT /F1 12 Tf 72 700 Td (survivor) Tj ET")},
	}, "")

	out, err := FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}

	if !strings.Contains(out.String(), "survivor") {
		t.Errorf("other pages must continue: %q", out.String())
	}

	found := false
	for _, w := range out.Warnings() {
		if w.Kind == "page-skipped" && w.Page == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a page-skipped warning for page 1, got %v", out.Warnings())
	}
}

func TestPlainStructuredConsistency(t *testing.T) {
	data := multiPagePDF([]string{
		"BT /F1 12 Tf 72 720 Td (hello world) Tj ET BT /F1 12 Tf 400 720 Td (right) Tj ET",
		"BT /F1 12 Tf 72 720 Td (page two here) Tj ET",
	})
	out, err := FromBytes(data)
	if err != nil {
		t.Fatal(err)
	}

	// Rebuilding the plain text from the structured lines must match
	// String() exactly.
	var parts []string
	for _, line := range out.Lines() {
		var texts []string
		for _, span := range line {
			texts = append(texts, span.Text)
		}
		parts = append(parts, strings.Join(texts, " "))
	}
	rebuilt := strings.Join(parts, "\n")

	if rebuilt != out.String() {
		t.Errorf("structured text %q != plain text %q", rebuilt, out.String())
	}
}

func TestBBoxWellFormed(t *testing.T) {
	data := multiPagePDF([]string{
		"BT /F1 12 Tf 72 720 Td (abc def) Tj ET",
		"BT /F1 8 Tf 0 1 -1 0 300 100 Tm (lll) Tj ET",
	})
	out, err := FromBytes(data)
	if err != nil {
		t.Fatal(err)
	}

	for _, line := range out.Lines() {
		for _, span := range line {
			if span.BBox.Left > span.BBox.Right {
				t.Errorf("span %q: left %v > right %v", span.Text, span.BBox.Left, span.BBox.Right)
			}
			if span.BBox.Bottom > span.BBox.Top {
				t.Errorf("span %q: bottom %v > top %v", span.Text, span.BBox.Bottom, span.BBox.Top)
			}
		}
	}
}

func TestLineMonotonicity(t *testing.T) {
	data := singlePagePDF(
		"BT /F1 12 Tf 72 700 Td (first) Tj 0 -20 Td (second) Tj 0 -20 Td (third) Tj ET")
	out, err := FromBytes(data)
	if err != nil {
		t.Fatal(err)
	}

	prevTop := 1e9
	for _, line := range out.Lines() {
		if len(line) == 0 {
			continue
		}
		top := line[0].BBox.Top
		if top > prevTop+1e-6 {
			t.Errorf("line tops not descending: %v after %v", top, prevTop)
		}
		prevTop = top
	}
}

func TestStringPrettyPreservesColumns(t *testing.T) {
	// Single-glyph spans keep the assertion independent of the grid
	// cell size.
	content := "BT /F1 12 Tf 72 700 Td (A) Tj ET BT /F1 12 Tf 400 700 Td (B) Tj ET"
	out, err := FromBytes(singlePagePDF(content))
	if err != nil {
		t.Fatal(err)
	}

	pretty := out.StringPretty()
	if !strings.Contains(pretty, "A") || !strings.Contains(pretty, "B") {
		t.Fatalf("pretty output missing glyphs: %q", pretty)
	}

	for _, line := range strings.Split(pretty, "\n") {
		if strings.Contains(line, "A") {
			ai := strings.Index(line, "A")
			bi := strings.Index(line, "B")
			if bi == -1 {
				t.Fatalf("columns not on the same row: %q", pretty)
			}
			if bi-ai < 20 {
				t.Errorf("columns too close in pretty output: %q", line)
			}
		}
	}
}

func TestBoundingBoxString(t *testing.T) {
	b := BoundingBox{Top: 712.5, Right: 200.2, Bottom: 700, Left: 72}
	got := b.String()
	want := "(712.5, 200.2, 700.0, 72.0)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestEmptyPage(t *testing.T) {
	data := buildPDF([]rawObject{
		{body: "<< /Type /Catalog /Pages 2 0 R >>"},
		{body: "<< /Type /Pages /Kids [3 0 R] /Count 1 >>"},
		{body: "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>"},
	}, "")

	out, err := FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}
	if out.String() != "" {
		t.Errorf("String() = %q, want empty", out.String())
	}
	if len(out.Lines()) != 0 {
		t.Errorf("Lines() = %v, want none", out.Lines())
	}
}

func TestWarningsDeduplicated(t *testing.T) {
	// Unmapped codes in one font must produce a single warning for
	// the (kind, page, font) triple no matter how often they occur.
	content := "BT /F1 12 Tf 72 700 Td (\002\002\002\002) Tj (\002\002) Tj ET"
	out, err := FromBytes(singlePagePDF(content))
	if err != nil {
		t.Fatal(err)
	}

	count := 0
	for _, w := range out.Warnings() {
		if w.Kind == "font-decode" && w.Page == 1 {
			count++
		}
	}
	if count > 1 {
		t.Errorf("got %d font-decode warnings, want at most 1: %v", count, out.Warnings())
	}
}
