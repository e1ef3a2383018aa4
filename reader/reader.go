package reader

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/tsawler/pdftext/core"
	"github.com/tsawler/pdftext/crypt"
	"github.com/tsawler/pdftext/pages"
)

// ErrEncrypted is returned when a document is encrypted and no password
// authenticates (the empty user password was tried).
var ErrEncrypted = errors.New("document is encrypted")

// PDFVersion represents a PDF version.
type PDFVersion struct {
	Major int
	Minor int
}

// String returns the version as a string (e.g. "1.7").
func (v PDFVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

var headerRe = regexp.MustCompile(`%PDF-(\d+)\.(\d+)`)

// Reader reads a PDF document and provides object, catalog and page
// access. The whole document is held in memory so that nested object
// loads (e.g. an indirect stream /Length during object parsing) never
// disturb each other.
type Reader struct {
	data      []byte
	xrefTable *core.XRefTable
	trailer   core.Dict
	version   PDFVersion
	handler   *crypt.SecurityHandler
	encRef    core.IndirectRef // Object holding the encrypt dictionary

	objCache map[int]core.Object
	loading  map[int]bool // Guards against xref entries that form cycles
	pageTree *pages.PageTree
}

// Ensure Reader satisfies the interfaces consumed downstream.
var (
	_ pages.ObjectResolver   = (*Reader)(nil)
	_ core.ReferenceResolver = (*Reader)(nil)
)

// Open opens a PDF file and returns a Reader. An empty password is used
// for encrypted documents.
func Open(filename string) (*Reader, error) {
	return OpenWithPassword(filename, "")
}

// OpenWithPassword opens a PDF file, authenticating encrypted documents
// with the given password.
func OpenWithPassword(filename, password string) (*Reader, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return NewReaderFromBytes(data, password)
}

// NewReaderFromBytes creates a Reader over an in-memory document.
func NewReaderFromBytes(data []byte, password string) (*Reader, error) {
	r := &Reader{
		data:     data,
		objCache: make(map[int]core.Object),
		loading:  make(map[int]bool),
	}

	version, err := r.parseHeader()
	if err != nil {
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}
	r.version = version

	xrefParser := core.NewXRefParser(bytes.NewReader(data))
	startOffset, err := xrefParser.FindStartXRef()
	if err != nil {
		return nil, fmt.Errorf("failed to locate xref: %w", err)
	}
	table, err := xrefParser.ParseChain(startOffset)
	if err != nil {
		return nil, fmt.Errorf("failed to parse xref: %w", err)
	}
	r.xrefTable = table
	r.trailer = table.Trailer

	if err := r.setupEncryption(password); err != nil {
		return nil, err
	}

	return r, nil
}

// Close releases the reader. It exists for symmetry with Open; the
// in-memory document needs no explicit cleanup.
func (r *Reader) Close() error {
	return nil
}

// parseHeader parses the %PDF-x.y header. The header must appear within
// the first kilobyte (some files carry leading junk).
func (r *Reader) parseHeader() (PDFVersion, error) {
	head := r.data
	if len(head) > 1024 {
		head = head[:1024]
	}

	m := headerRe.FindSubmatch(head)
	if m == nil {
		return PDFVersion{}, fmt.Errorf("no PDF header found")
	}

	var major, minor int
	fmt.Sscanf(string(m[1]), "%d", &major)
	fmt.Sscanf(string(m[2]), "%d", &minor)
	return PDFVersion{Major: major, Minor: minor}, nil
}

// setupEncryption creates the security handler when the trailer carries
// an /Encrypt entry.
func (r *Reader) setupEncryption(password string) error {
	encObj := r.trailer.Get("Encrypt")
	if encObj == nil {
		return nil
	}

	var encDict core.Dict
	switch v := encObj.(type) {
	case core.Dict:
		encDict = v
	case core.IndirectRef:
		r.encRef = v
		resolved, err := r.ResolveReference(v)
		if err != nil {
			return fmt.Errorf("failed to load encrypt dictionary: %w", err)
		}
		dict, ok := resolved.(core.Dict)
		if !ok {
			return fmt.Errorf("invalid /Encrypt type: %T", resolved)
		}
		encDict = dict
	default:
		return fmt.Errorf("invalid /Encrypt type: %T", encObj)
	}

	// First element of /ID feeds key derivation.
	var id []byte
	if idArr, ok := r.trailer.GetArray("ID"); ok && len(idArr) > 0 {
		if s, ok := idArr[0].(core.String); ok {
			id = []byte(s)
		}
	}

	handler, err := crypt.NewSecurityHandler(encDict, id, password)
	if err != nil {
		if errors.Is(err, crypt.ErrWrongPassword) && password == "" {
			return ErrEncrypted
		}
		return err
	}
	r.handler = handler

	// Objects cached before the handler existed hold raw ciphertext.
	r.objCache = make(map[int]core.Object)
	return nil
}

// IsEncrypted reports whether the document carries an encrypt
// dictionary.
func (r *Reader) IsEncrypted() bool {
	return r.trailer.Has("Encrypt")
}

// Version returns the PDF version from the header.
func (r *Reader) Version() PDFVersion {
	return r.version
}

// Trailer returns the trailer dictionary.
func (r *Reader) Trailer() core.Dict {
	return r.trailer
}

// GetObject loads an object by number, consulting the cache first.
// Compressed objects are transparently extracted from their object
// stream.
func (r *Reader) GetObject(objNum int) (core.Object, error) {
	if obj, ok := r.objCache[objNum]; ok {
		return obj, nil
	}
	if r.loading[objNum] {
		return nil, fmt.Errorf("cyclic load of object %d", objNum)
	}
	r.loading[objNum] = true
	defer delete(r.loading, objNum)

	entry, ok := r.xrefTable.Get(objNum)
	if !ok {
		return nil, fmt.Errorf("object %d not found in xref table", objNum)
	}
	if !entry.InUse {
		return core.Null{}, nil
	}

	var obj core.Object
	var err error
	if entry.Compressed {
		obj, err = r.loadCompressedObject(objNum, entry)
	} else {
		obj, err = r.loadRegularObject(objNum, entry)
	}
	if err != nil {
		return nil, err
	}

	r.objCache[objNum] = obj
	return obj, nil
}

// loadRegularObject parses an uncompressed indirect object at its file
// offset and applies decryption. Each object gets its own reader over
// the document bytes, so nested loads cannot disturb the parse.
func (r *Reader) loadRegularObject(objNum int, entry *core.XRefEntry) (core.Object, error) {
	if entry.Offset < 0 || entry.Offset >= int64(len(r.data)) {
		return nil, fmt.Errorf("object %d offset %d outside document", objNum, entry.Offset)
	}

	parser := core.NewParser(bytes.NewReader(r.data[entry.Offset:]))
	parser.SetReferenceResolver(r)
	indObj, err := parser.ParseIndirectObject()
	if err != nil {
		return nil, fmt.Errorf("failed to parse object %d: %w", objNum, err)
	}
	if indObj.Ref.Number != objNum {
		return nil, fmt.Errorf("object number mismatch: expected %d, got %d", objNum, indObj.Ref.Number)
	}

	obj := indObj.Object
	if r.handler != nil && objNum != r.encRef.Number {
		obj = r.decryptObject(indObj.Ref, obj)
	}
	return obj, nil
}

// loadCompressedObject extracts an object stored inside an object
// stream. The containing stream was decrypted when loaded, so the
// embedded objects need no further decryption.
func (r *Reader) loadCompressedObject(objNum int, entry *core.XRefEntry) (core.Object, error) {
	containerObj, err := r.GetObject(entry.StreamNum)
	if err != nil {
		return nil, fmt.Errorf("failed to load object stream %d: %w", entry.StreamNum, err)
	}
	stream, ok := containerObj.(*core.Stream)
	if !ok {
		return nil, fmt.Errorf("object %d is not a stream", entry.StreamNum)
	}

	objStm, err := core.NewObjectStream(stream)
	if err != nil {
		return nil, err
	}

	obj, num, err := objStm.GetObjectByIndex(entry.StreamIndex)
	if err != nil || num != objNum {
		// Index mismatch: fall back to a scan by object number.
		obj, err = objStm.GetObjectByNumber(objNum)
		if err != nil {
			return nil, fmt.Errorf("object %d not found in object stream %d: %w", objNum, entry.StreamNum, err)
		}
	}
	return obj, nil
}

// decryptObject decrypts all strings (and the stream payload) reachable
// in an object. Cross-reference streams are never encrypted.
func (r *Reader) decryptObject(ref core.IndirectRef, obj core.Object) core.Object {
	switch v := obj.(type) {
	case core.String:
		decrypted, err := r.handler.DecryptString(ref, []byte(v))
		if err != nil {
			return v
		}
		return core.String(decrypted)

	case core.Array:
		out := make(core.Array, len(v))
		for i, elem := range v {
			out[i] = r.decryptObject(ref, elem)
		}
		return out

	case core.Dict:
		out := make(core.Dict, len(v))
		for key, val := range v {
			out[key] = r.decryptObject(ref, val)
		}
		return out

	case *core.Stream:
		if typeName, _ := v.Dict.GetName("Type"); typeName == "XRef" {
			return v
		}
		dict := r.decryptObject(ref, v.Dict).(core.Dict)
		data, err := r.handler.DecryptStream(ref, v.Data)
		if err != nil {
			return &core.Stream{Dict: dict, Data: v.Data}
		}
		return &core.Stream{Dict: dict, Data: data}

	default:
		return obj
	}
}

// ResolveReference resolves an indirect reference.
func (r *Reader) ResolveReference(ref core.IndirectRef) (core.Object, error) {
	return r.GetObject(ref.Number)
}

// Resolve resolves an object if it is an indirect reference, otherwise
// returns it unchanged.
func (r *Reader) Resolve(obj core.Object) (core.Object, error) {
	if ref, ok := obj.(core.IndirectRef); ok {
		return r.ResolveReference(ref)
	}
	return obj, nil
}

// Catalog returns the document catalog.
func (r *Reader) Catalog() (core.Dict, error) {
	rootObj := r.trailer.Get("Root")
	if rootObj == nil {
		return nil, fmt.Errorf("trailer missing /Root entry")
	}

	resolved, err := r.Resolve(rootObj)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve catalog: %w", err)
	}
	catalog, ok := resolved.(core.Dict)
	if !ok {
		return nil, fmt.Errorf("catalog is not a dictionary: %T", resolved)
	}
	return catalog, nil
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() (int, error) {
	if err := r.ensurePageTree(); err != nil {
		return 0, err
	}
	return r.pageTree.Count()
}

// GetPage returns the page at the given index (0-based).
func (r *Reader) GetPage(index int) (*pages.Page, error) {
	if err := r.ensurePageTree(); err != nil {
		return nil, err
	}
	return r.pageTree.GetPage(index)
}

// Pages returns all pages in document order.
func (r *Reader) Pages() ([]*pages.Page, error) {
	if err := r.ensurePageTree(); err != nil {
		return nil, err
	}
	return r.pageTree.Pages()
}

// ensurePageTree loads the page tree on first use.
func (r *Reader) ensurePageTree() error {
	if r.pageTree != nil {
		return nil
	}

	catalog, err := r.Catalog()
	if err != nil {
		return err
	}

	pagesObj := catalog.Get("Pages")
	if pagesObj == nil {
		return fmt.Errorf("catalog missing /Pages entry")
	}
	resolved, err := r.Resolve(pagesObj)
	if err != nil {
		return fmt.Errorf("failed to resolve pages: %w", err)
	}
	pagesDict, ok := resolved.(core.Dict)
	if !ok {
		return fmt.Errorf("pages is not a dictionary: %T", resolved)
	}

	r.pageTree = pages.NewPageTree(pagesDict, r)
	return nil
}
