package resolver

import (
	"strings"
	"testing"

	"github.com/tsawler/pdftext/core"
)

// mapReader serves objects from a map.
type mapReader map[int]core.Object

func (m mapReader) GetObject(objNum int) (core.Object, error) {
	if obj, ok := m[objNum]; ok {
		return obj, nil
	}
	return core.Null{}, nil
}

func (m mapReader) ResolveReference(ref core.IndirectRef) (core.Object, error) {
	return m.GetObject(ref.Number)
}

func TestResolveShallow(t *testing.T) {
	reader := mapReader{
		1: core.Dict{"Inner": core.IndirectRef{Number: 2}},
		2: core.Int(42),
	}
	r := NewResolver(reader)

	obj, err := r.Resolve(core.IndirectRef{Number: 1})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	dict, ok := obj.(core.Dict)
	if !ok {
		t.Fatalf("got %T, want Dict", obj)
	}
	// Shallow resolution leaves nested references alone.
	if _, ok := dict.Get("Inner").(core.IndirectRef); !ok {
		t.Errorf("nested reference was resolved: %v", dict.Get("Inner"))
	}
}

func TestResolveDeep(t *testing.T) {
	reader := mapReader{
		1: core.Dict{"Inner": core.IndirectRef{Number: 2}},
		2: core.Array{core.IndirectRef{Number: 3}},
		3: core.String("leaf"),
	}
	r := NewResolver(reader)

	obj, err := r.ResolveDeep(core.IndirectRef{Number: 1})
	if err != nil {
		t.Fatalf("ResolveDeep failed: %v", err)
	}
	dict := obj.(core.Dict)
	arr, ok := dict.Get("Inner").(core.Array)
	if !ok {
		t.Fatalf("Inner is %T, want Array", dict.Get("Inner"))
	}
	if arr.Get(0) != core.String("leaf") {
		t.Errorf("leaf = %v, want the resolved string", arr.Get(0))
	}
}

func TestResolveCycleDetected(t *testing.T) {
	reader := mapReader{
		1: core.IndirectRef{Number: 2},
		2: core.IndirectRef{Number: 1},
	}
	r := NewResolver(reader)

	_, err := r.ResolveDeep(core.IndirectRef{Number: 1})
	if err == nil {
		t.Fatal("expected error for a reference cycle")
	}
	if !strings.Contains(err.Error(), "circular") {
		t.Errorf("error %v should mention the cycle", err)
	}
}

func TestResolveDepthLimit(t *testing.T) {
	// A long chain of nested arrays exceeds a small depth limit.
	reader := mapReader{}
	for i := 1; i <= 20; i++ {
		reader[i] = core.Array{core.IndirectRef{Number: i + 1}}
	}
	reader[21] = core.Int(0)

	r := NewResolver(reader, WithMaxDepth(5))
	if _, err := r.ResolveDeep(core.IndirectRef{Number: 1}); err == nil {
		t.Error("expected error once the depth limit is hit")
	}
}

func TestResolveNonReference(t *testing.T) {
	r := NewResolver(mapReader{})
	obj, err := r.Resolve(core.Int(7))
	if err != nil || obj != core.Int(7) {
		t.Errorf("Resolve(Int) = %v, %v; want the value unchanged", obj, err)
	}
}

func TestSharedObjectsAcrossBranches(t *testing.T) {
	// The same object referenced from two branches is not a cycle.
	reader := mapReader{
		1: core.Dict{
			"A": core.IndirectRef{Number: 2},
			"B": core.IndirectRef{Number: 2},
		},
		2: core.String("shared"),
	}
	r := NewResolver(reader)

	obj, err := r.ResolveDeep(core.IndirectRef{Number: 1})
	if err != nil {
		t.Fatalf("ResolveDeep failed: %v", err)
	}
	dict := obj.(core.Dict)
	if dict.Get("A") != core.String("shared") || dict.Get("B") != core.String("shared") {
		t.Errorf("shared object not resolved in both branches: %v", dict)
	}
}
