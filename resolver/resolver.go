package resolver

import (
	"fmt"

	"github.com/tsawler/pdftext/core"
)

// ObjectReader is the interface the resolver needs from a document
// reader.
type ObjectReader interface {
	GetObject(objNum int) (core.Object, error)
	ResolveReference(ref core.IndirectRef) (core.Object, error)
}

// ObjectResolver resolves indirect references in PDF objects, including
// references nested in dictionaries and arrays. It guards against
// reference cycles and runaway nesting.
type ObjectResolver struct {
	reader   ObjectReader
	visited  map[int]bool
	maxDepth int
	depth    int
}

// Option configures the resolver.
type Option func(*ObjectResolver)

// WithMaxDepth sets the maximum recursion depth (default: 100).
func WithMaxDepth(depth int) Option {
	return func(r *ObjectResolver) {
		r.maxDepth = depth
	}
}

// NewResolver creates a new object resolver.
func NewResolver(reader ObjectReader, opts ...Option) *ObjectResolver {
	r := &ObjectResolver{
		reader:   reader,
		visited:  make(map[int]bool),
		maxDepth: 100,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve resolves an object, following a single level of indirect
// reference. Nested references inside dictionaries and arrays are left
// alone.
func (r *ObjectResolver) Resolve(obj core.Object) (core.Object, error) {
	return r.resolve(obj, false)
}

// ResolveDeep recursively resolves every indirect reference reachable
// from the object, fully expanding the tree.
func (r *ObjectResolver) ResolveDeep(obj core.Object) (core.Object, error) {
	return r.resolve(obj, true)
}

func (r *ObjectResolver) resolve(obj core.Object, deep bool) (core.Object, error) {
	// A fresh visited set per top-level call: cycles are detected
	// within one resolution tree, while repeated resolution of shared
	// objects across calls stays legal.
	if r.depth == 0 {
		r.visited = make(map[int]bool)
	}
	if r.depth >= r.maxDepth {
		return nil, fmt.Errorf("maximum resolution depth (%d) exceeded", r.maxDepth)
	}

	switch v := obj.(type) {
	case core.IndirectRef:
		if r.visited[v.Number] {
			return nil, fmt.Errorf("circular reference detected for object %d", v.Number)
		}
		r.visited[v.Number] = true
		defer delete(r.visited, v.Number)

		resolved, err := r.reader.ResolveReference(v)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve reference %s: %w", v, err)
		}

		if deep {
			r.depth++
			resolved, err = r.resolve(resolved, deep)
			r.depth--
			if err != nil {
				return nil, err
			}
		}
		return resolved, nil

	case core.Dict:
		if !deep {
			return v, nil
		}
		resolved := make(core.Dict, len(v))
		for key, value := range v {
			r.depth++
			rv, err := r.resolve(value, deep)
			r.depth--
			if err != nil {
				return nil, fmt.Errorf("failed to resolve dict key %s: %w", key, err)
			}
			resolved[key] = rv
		}
		return resolved, nil

	case core.Array:
		if !deep {
			return v, nil
		}
		resolved := make(core.Array, len(v))
		for i, elem := range v {
			r.depth++
			re, err := r.resolve(elem, deep)
			r.depth--
			if err != nil {
				return nil, fmt.Errorf("failed to resolve array element %d: %w", i, err)
			}
			resolved[i] = re
		}
		return resolved, nil

	case *core.Stream:
		if !deep {
			return v, nil
		}
		r.depth++
		resolvedDict, err := r.resolve(v.Dict, deep)
		r.depth--
		if err != nil {
			return nil, fmt.Errorf("failed to resolve stream dict: %w", err)
		}
		return &core.Stream{Dict: resolvedDict.(core.Dict), Data: v.Data}, nil

	default:
		return obj, nil
	}
}

// ResolveReference resolves a single indirect reference without
// recursing into the result.
func (r *ObjectResolver) ResolveReference(ref core.IndirectRef) (core.Object, error) {
	return r.reader.ResolveReference(ref)
}

// GetObject loads an object by number.
func (r *ObjectResolver) GetObject(objNum int) (core.Object, error) {
	return r.reader.GetObject(objNum)
}
