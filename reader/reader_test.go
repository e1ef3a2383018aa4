package reader

import (
	"bytes"
	"fmt"
	"testing"
)

// buildClassicPDF assembles a minimal one-page document with a classic
// cross-reference table. Object i+1 gets bodies[i].
func buildClassicPDF(bodies []string) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(bodies)+1)
	for i, body := range bodies {
		offsets[i+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(bodies)+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(bodies); i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(bodies)+1, xrefOffset)

	return buf.Bytes()
}

func minimalBodies(content string) []string {
	return []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
			"/Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
	}
}

func TestReaderBasicDocument(t *testing.T) {
	content := "BT /F1 12 Tf (Hi) Tj ET"
	data := buildClassicPDF(minimalBodies(content))

	r, err := NewReaderFromBytes(data, "")
	if err != nil {
		t.Fatalf("NewReaderFromBytes failed: %v", err)
	}

	if v := r.Version(); v.Major != 1 || v.Minor != 4 {
		t.Errorf("version = %v, want 1.4", v)
	}

	count, err := r.PageCount()
	if err != nil {
		t.Fatalf("PageCount failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("PageCount = %d, want 1", count)
	}

	page, err := r.GetPage(0)
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}

	box, err := page.MediaBox()
	if err != nil {
		t.Fatalf("MediaBox failed: %v", err)
	}
	if box != [4]float64{0, 0, 612, 792} {
		t.Errorf("MediaBox = %v", box)
	}

	got, err := page.Contents()
	if err != nil {
		t.Fatalf("Contents failed: %v", err)
	}
	if !bytes.Contains(got, []byte("(Hi) Tj")) {
		t.Errorf("content = %q, want the text operators", got)
	}

	resources, err := page.Resources()
	if err != nil {
		t.Fatalf("Resources failed: %v", err)
	}
	if !resources.Has("Font") {
		t.Error("resources missing /Font")
	}
}

func TestReaderInheritedResources(t *testing.T) {
	// Resources live on the Pages node, not the page itself.
	bodies := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 " +
			"/Resources << /Font << /F1 4 0 R >> >> /MediaBox [0 0 200 400] >>",
		"<< /Type /Page /Parent 2 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}
	data := buildClassicPDF(bodies)

	r, err := NewReaderFromBytes(data, "")
	if err != nil {
		t.Fatalf("NewReaderFromBytes failed: %v", err)
	}
	page, err := r.GetPage(0)
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}

	resources, err := page.Resources()
	if err != nil {
		t.Fatalf("Resources failed: %v", err)
	}
	if !resources.Has("Font") {
		t.Error("inherited resources not found")
	}

	box, _ := page.MediaBox()
	if box[2] != 200 || box[3] != 400 {
		t.Errorf("inherited MediaBox = %v, want 200x400", box)
	}
}

func TestReaderMissingHeader(t *testing.T) {
	if _, err := NewReaderFromBytes([]byte("not a pdf at all"), ""); err == nil {
		t.Error("expected error for a non-PDF input")
	}
}

// buildObjStmPDF assembles a document whose catalog, page tree and
// font live inside an object stream, indexed by a cross-reference
// stream.
func buildObjStmPDF(t *testing.T, content string) []byte {
	t.Helper()

	// Objects 1-4 packed into the object stream (object 6).
	packed := []struct {
		num  int
		body string
	}{
		{1, "<< /Type /Catalog /Pages 2 0 R >>"},
		{2, "<< /Type /Pages /Kids [3 0 R] /Count 1 >>"},
		{3, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
			"/Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>"},
		{4, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>"},
	}

	var header, body string
	for _, p := range packed {
		header += fmt.Sprintf("%d %d ", p.num, len(body))
		body += p.body + "\n"
	}
	stmPayload := header + body

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.5\n")

	// Object 5: the page content stream.
	off5 := buf.Len()
	fmt.Fprintf(&buf, "5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
		len(content), content)

	// Object 6: the object stream.
	off6 := buf.Len()
	fmt.Fprintf(&buf, "6 0 obj\n<< /Type /ObjStm /N %d /First %d /Length %d >>\nstream\n%s\nendstream\nendobj\n",
		len(packed), len(header), len(stmPayload), stmPayload)

	// Object 7: the cross-reference stream. W [1 2 2].
	off7 := buf.Len()
	row := func(typ int, f2, f3 int) []byte {
		return []byte{byte(typ), byte(f2 >> 8), byte(f2), byte(f3 >> 8), byte(f3)}
	}
	var rows []byte
	rows = append(rows, row(0, 0, 0xFFFF)...) // object 0: free
	for idx := 0; idx < 4; idx++ {            // objects 1-4: in stream 6
		rows = append(rows, row(2, 6, idx)...)
	}
	rows = append(rows, row(1, off5, 0)...)
	rows = append(rows, row(1, off6, 0)...)
	rows = append(rows, row(1, off7, 0)...)

	fmt.Fprintf(&buf, "7 0 obj\n<< /Type /XRef /Size 8 /W [1 2 2] /Root 1 0 R /Length %d >>\nstream\n",
		len(rows))
	buf.Write(rows)
	buf.WriteString("\nendstream\nendobj\n")

	fmt.Fprintf(&buf, "startxref\n%d\n%%%%EOF\n", off7)
	return buf.Bytes()
}

func TestReaderObjectStreamDocument(t *testing.T) {
	content := "BT /F1 12 Tf (Compressed) Tj ET"
	data := buildObjStmPDF(t, content)

	r, err := NewReaderFromBytes(data, "")
	if err != nil {
		t.Fatalf("NewReaderFromBytes failed: %v", err)
	}

	count, err := r.PageCount()
	if err != nil {
		t.Fatalf("PageCount failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("PageCount = %d, want 1", count)
	}

	page, err := r.GetPage(0)
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}
	got, err := page.Contents()
	if err != nil {
		t.Fatalf("Contents failed: %v", err)
	}
	if !bytes.Contains(got, []byte("Compressed")) {
		t.Errorf("content = %q", got)
	}
}

func TestReaderIsEncrypted(t *testing.T) {
	data := buildClassicPDF(minimalBodies("BT ET"))
	r, err := NewReaderFromBytes(data, "")
	if err != nil {
		t.Fatal(err)
	}
	if r.IsEncrypted() {
		t.Error("unencrypted document reported as encrypted")
	}
}
