package pages

import (
	"fmt"

	"github.com/tsawler/pdftext/core"
)

// ObjectResolver is the interface the page tree needs for resolving
// indirect references.
type ObjectResolver interface {
	Resolve(obj core.Object) (core.Object, error)
	ResolveReference(ref core.IndirectRef) (core.Object, error)
}

// PageTree represents the PDF page tree and provides a flattened view
// of its leaves in document order.
type PageTree struct {
	root     core.Dict
	resolver ObjectResolver
	pages    []*Page
}

// NewPageTree creates a new page tree from the root pages dictionary.
func NewPageTree(root core.Dict, resolver ObjectResolver) *PageTree {
	return &PageTree{
		root:     root,
		resolver: resolver,
	}
}

// Count returns the total number of pages.
func (t *PageTree) Count() (int, error) {
	if t.pages != nil {
		return len(t.pages), nil
	}
	if count, ok := t.root.GetInt("Count"); ok {
		return int(count), nil
	}
	// Damaged /Count: fall back to an actual traversal.
	pages, err := t.Pages()
	if err != nil {
		return 0, err
	}
	return len(pages), nil
}

// GetPage returns the page at the given index (0-based).
func (t *PageTree) GetPage(index int) (*Page, error) {
	pages, err := t.Pages()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(pages) {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, len(pages))
	}
	return pages[index], nil
}

// Pages returns all pages in document order.
func (t *PageTree) Pages() ([]*Page, error) {
	if t.pages != nil {
		return t.pages, nil
	}

	t.pages = make([]*Page, 0)
	visited := make(map[string]bool)
	if err := t.walk(t.root, nil, visited, 0); err != nil {
		t.pages = nil
		return nil, fmt.Errorf("failed to traverse page tree: %w", err)
	}
	return t.pages, nil
}

// walk recursively traverses a page tree node. parents carries the
// chain of ancestor /Pages dictionaries for inheritable attributes,
// innermost last.
func (t *PageTree) walk(node core.Dict, parents []core.Dict, visited map[string]bool, depth int) error {
	if depth > 64 {
		return fmt.Errorf("page tree nesting exceeds 64 levels")
	}

	typeName, _ := node.GetName("Type")
	switch typeName {
	case "Pages", "": // Some writers omit /Type on interior nodes.
		kidsObj := node.Get("Kids")
		if kidsObj == nil {
			if typeName == "" {
				// Neither a Pages node nor a Page: ignore.
				return nil
			}
			return fmt.Errorf("pages node missing /Kids")
		}

		kidsResolved, err := t.resolver.Resolve(kidsObj)
		if err != nil {
			return fmt.Errorf("failed to resolve /Kids: %w", err)
		}
		kids, ok := kidsResolved.(core.Array)
		if !ok {
			return fmt.Errorf("invalid /Kids type: %T", kidsResolved)
		}

		chain := append(parents, node)
		for i, kidObj := range kids {
			// Guard against trees that reference a node twice.
			if ref, ok := kidObj.(core.IndirectRef); ok {
				key := ref.String()
				if visited[key] {
					continue
				}
				visited[key] = true
			}

			kidResolved, err := t.resolver.Resolve(kidObj)
			if err != nil {
				return fmt.Errorf("failed to resolve kid %d: %w", i, err)
			}
			kidDict, ok := kidResolved.(core.Dict)
			if !ok {
				return fmt.Errorf("invalid kid type: %T", kidResolved)
			}
			if err := t.walk(kidDict, chain, visited, depth+1); err != nil {
				return err
			}
		}
		return nil

	case "Page":
		ancestors := make([]core.Dict, len(parents))
		copy(ancestors, parents)
		t.pages = append(t.pages, &Page{
			dict:      node,
			ancestors: ancestors,
			resolver:  t.resolver,
		})
		return nil

	default:
		return fmt.Errorf("unexpected page tree node type %q", typeName)
	}
}

// Page represents a single PDF page.
type Page struct {
	dict      core.Dict
	ancestors []core.Dict // Ancestor /Pages nodes, innermost last
	resolver  ObjectResolver
}

// NewPage creates a page from a dictionary. ancestors lists the page's
// /Pages ancestors, innermost last, for inheritable attributes.
func NewPage(dict core.Dict, ancestors []core.Dict, resolver ObjectResolver) *Page {
	return &Page{dict: dict, ancestors: ancestors, resolver: resolver}
}

// inherited looks up an attribute on the page, walking the ancestor
// chain when absent.
func (p *Page) inherited(key string) core.Object {
	if obj := p.dict.Get(key); obj != nil {
		return obj
	}
	for i := len(p.ancestors) - 1; i >= 0; i-- {
		if obj := p.ancestors[i].Get(key); obj != nil {
			return obj
		}
	}
	return nil
}

// MediaBox returns the page media box as [llx lly urx ury]. The
// attribute is inheritable; a missing box defaults to US Letter.
func (p *Page) MediaBox() ([4]float64, error) {
	box, err := p.getBox("MediaBox")
	if err != nil {
		return [4]float64{0, 0, 612, 792}, nil
	}
	return box, nil
}

// CropBox returns the page crop box, defaulting to the media box.
func (p *Page) CropBox() ([4]float64, error) {
	box, err := p.getBox("CropBox")
	if err != nil {
		return p.MediaBox()
	}
	return box, nil
}

// getBox retrieves an inheritable box attribute.
func (p *Page) getBox(name string) ([4]float64, error) {
	var box [4]float64

	boxObj := p.inherited(name)
	if boxObj == nil {
		return box, fmt.Errorf("%s not found", name)
	}

	resolved, err := p.resolver.Resolve(boxObj)
	if err != nil {
		return box, fmt.Errorf("failed to resolve %s: %w", name, err)
	}
	arr, ok := resolved.(core.Array)
	if !ok || len(arr) != 4 {
		return box, fmt.Errorf("invalid %s value", name)
	}

	for i, elem := range arr {
		resolvedElem, err := p.resolver.Resolve(elem)
		if err != nil {
			return box, err
		}
		v, ok := core.ToNumber(resolvedElem)
		if !ok {
			return box, fmt.Errorf("invalid %s element type: %T", name, resolvedElem)
		}
		box[i] = v
	}
	return box, nil
}

// Resources returns the page resources dictionary (inheritable). A page
// without resources returns an empty dictionary.
func (p *Page) Resources() (core.Dict, error) {
	resourcesObj := p.inherited("Resources")
	if resourcesObj == nil {
		return core.Dict{}, nil
	}

	resolved, err := p.resolver.Resolve(resourcesObj)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve Resources: %w", err)
	}
	dict, ok := resolved.(core.Dict)
	if !ok {
		return nil, fmt.Errorf("invalid Resources type: %T", resolved)
	}
	return dict, nil
}

// Contents returns the decoded and concatenated content stream bytes
// for the page. A page without contents returns nil.
func (p *Page) Contents() ([]byte, error) {
	contentsObj := p.dict.Get("Contents")
	if contentsObj == nil {
		return nil, nil
	}

	resolved, err := p.resolver.Resolve(contentsObj)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve Contents: %w", err)
	}

	var streams []*core.Stream
	switch v := resolved.(type) {
	case *core.Stream:
		streams = []*core.Stream{v}
	case core.Array:
		for i, elem := range v {
			elemResolved, err := p.resolver.Resolve(elem)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve contents[%d]: %w", i, err)
			}
			if s, ok := elemResolved.(*core.Stream); ok {
				streams = append(streams, s)
			}
		}
	default:
		return nil, fmt.Errorf("invalid Contents type: %T", resolved)
	}

	var data []byte
	for _, s := range streams {
		decoded, err := s.Decode()
		if err != nil {
			return nil, fmt.Errorf("failed to decode content stream: %w", err)
		}
		data = append(data, decoded...)
		// Streams in an array are logically separated by whitespace.
		data = append(data, '\n')
	}
	return data, nil
}

// Rotate returns the page rotation in degrees (0, 90, 180 or 270;
// inheritable).
func (p *Page) Rotate() int {
	rotateObj := p.inherited("Rotate")
	if rotateObj == nil {
		return 0
	}
	if rotate, ok := rotateObj.(core.Int); ok {
		r := int(rotate) % 360
		if r < 0 {
			r += 360
		}
		return r
	}
	return 0
}

// Width returns the page width from the media box.
func (p *Page) Width() float64 {
	box, _ := p.MediaBox()
	return box[2] - box[0]
}

// Height returns the page height from the media box.
func (p *Page) Height() float64 {
	box, _ := p.MediaBox()
	return box[3] - box[1]
}
