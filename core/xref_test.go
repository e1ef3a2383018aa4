package core

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestParseClassicXRefTable(t *testing.T) {
	content := "xref\n" +
		"0 3\n" +
		"0000000000 65535 f \n" +
		"0000000017 00000 n \n" +
		"0000000081 00000 n \n" +
		"trailer\n" +
		"<< /Size 3 /Root 1 0 R >>\n"

	parser := NewXRefParser(strings.NewReader(content))
	table, err := parser.ParseAt(0)
	if err != nil {
		t.Fatalf("ParseAt failed: %v", err)
	}

	if table.Size() != 3 {
		t.Errorf("Size() = %d, want 3", table.Size())
	}

	entry, ok := table.Get(1)
	if !ok {
		t.Fatal("entry 1 missing")
	}
	if !entry.InUse || entry.Offset != 17 {
		t.Errorf("entry 1 = %+v, want in-use at 17", entry)
	}

	entry, ok = table.Get(0)
	if !ok || entry.InUse {
		t.Errorf("entry 0 should be a free entry, got %+v", entry)
	}

	if size, _ := table.Trailer.GetInt("Size"); size != 3 {
		t.Errorf("trailer Size = %d, want 3", size)
	}
	if ref, ok := table.Trailer.GetIndirectRef("Root"); !ok || ref.Number != 1 {
		t.Errorf("trailer Root = %v, want 1 0 R", table.Trailer.Get("Root"))
	}
}

func TestParseXRefSubsections(t *testing.T) {
	content := "xref\n" +
		"0 1\n" +
		"0000000000 65535 f \n" +
		"5 2\n" +
		"0000000100 00000 n \n" +
		"0000000200 00000 n \n" +
		"trailer\n<< /Size 7 >>\n"

	parser := NewXRefParser(strings.NewReader(content))
	table, err := parser.ParseAt(0)
	if err != nil {
		t.Fatalf("ParseAt failed: %v", err)
	}

	if entry, ok := table.Get(6); !ok || entry.Offset != 200 {
		t.Errorf("entry 6 = %+v, want offset 200", entry)
	}
	if _, ok := table.Get(3); ok {
		t.Error("entry 3 should not exist")
	}
}

func TestFindStartXRef(t *testing.T) {
	data := "%PDF-1.4\njunk\nstartxref\n1234\n%%EOF\n"
	parser := NewXRefParser(strings.NewReader(data))

	offset, err := parser.FindStartXRef()
	if err != nil {
		t.Fatalf("FindStartXRef failed: %v", err)
	}
	if offset != 1234 {
		t.Errorf("offset = %d, want 1234", offset)
	}
}

func TestParseChainFollowsPrev(t *testing.T) {
	// Older section: objects 1 and 2.
	older := "xref\n0 3\n" +
		"0000000000 65535 f \n" +
		"0000000011 00000 n \n" +
		"0000000022 00000 n \n" +
		"trailer\n<< /Size 3 /Root 1 0 R >>\n"

	var buf bytes.Buffer
	buf.WriteString(older)
	newerOffset := int64(buf.Len())

	// Newer incremental section overrides object 2.
	newer := "xref\n2 1\n" +
		"0000000099 00000 n \n" +
		"trailer\n<< /Size 3 /Prev 0 >>\n"
	buf.WriteString(newer)

	parser := NewXRefParser(bytes.NewReader(buf.Bytes()))
	table, err := parser.ParseChain(newerOffset)
	if err != nil {
		t.Fatalf("ParseChain failed: %v", err)
	}

	// Newer entry wins.
	if entry, _ := table.Get(2); entry == nil || entry.Offset != 99 {
		t.Errorf("entry 2 = %+v, want offset 99 from the newer section", entry)
	}
	// Older-only entry survives.
	if entry, _ := table.Get(1); entry == nil || entry.Offset != 11 {
		t.Errorf("entry 1 = %+v, want offset 11 from the older section", entry)
	}
	// Root comes through the merged trailer.
	if _, ok := table.Trailer.GetIndirectRef("Root"); !ok {
		t.Error("merged trailer missing /Root")
	}
}

func TestParseXRefStream(t *testing.T) {
	// Uncompressed cross-reference stream: W [1 2 1], three rows.
	rows := []byte{
		0, 0x00, 0x00, 0xFF, // free object
		1, 0x00, 0x64, 0x00, // regular object at offset 100
		2, 0x00, 0x07, 0x02, // compressed: stream 7, index 2
	}

	doc := fmt.Sprintf(
		"9 0 obj\n<< /Type /XRef /Size 3 /W [1 2 1] /Length %d /Root 1 0 R >>\nstream\n%s\nendstream\nendobj\n",
		len(rows), rows)

	parser := NewXRefParser(strings.NewReader(doc))
	table, err := parser.ParseAt(0)
	if err != nil {
		t.Fatalf("ParseAt failed: %v", err)
	}

	if entry, _ := table.Get(0); entry == nil || entry.InUse {
		t.Errorf("entry 0 = %+v, want free", entry)
	}
	if entry, _ := table.Get(1); entry == nil || !entry.InUse || entry.Offset != 100 {
		t.Errorf("entry 1 = %+v, want offset 100", entry)
	}
	entry, _ := table.Get(2)
	if entry == nil || !entry.Compressed || entry.StreamNum != 7 || entry.StreamIndex != 2 {
		t.Errorf("entry 2 = %+v, want compressed in stream 7 index 2", entry)
	}
}

func TestParseXRefStreamWithIndex(t *testing.T) {
	rows := []byte{
		1, 0x00, 0x10, 0x00, // object 4 at offset 16
		1, 0x00, 0x20, 0x00, // object 5 at offset 32
	}

	doc := fmt.Sprintf(
		"9 0 obj\n<< /Type /XRef /Size 6 /Index [4 2] /W [1 2 1] /Length %d >>\nstream\n%s\nendstream\nendobj\n",
		len(rows), rows)

	parser := NewXRefParser(strings.NewReader(doc))
	table, err := parser.ParseAt(0)
	if err != nil {
		t.Fatalf("ParseAt failed: %v", err)
	}

	if entry, _ := table.Get(4); entry == nil || entry.Offset != 16 {
		t.Errorf("entry 4 = %+v, want offset 16", entry)
	}
	if entry, _ := table.Get(5); entry == nil || entry.Offset != 32 {
		t.Errorf("entry 5 = %+v, want offset 32", entry)
	}
	if _, ok := table.Get(0); ok {
		t.Error("entry 0 should not exist with /Index [4 2]")
	}
}
