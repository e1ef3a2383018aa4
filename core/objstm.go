package core

import (
	"bytes"
	"fmt"
)

// ObjectStream represents a PDF object stream (/Type /ObjStm),
// introduced in PDF 1.5. Object streams store multiple non-stream
// objects inside a single compressed stream.
type ObjectStream struct {
	stream  *Stream
	n       int // Number of objects in the stream
	first   int // Byte offset of the first object in the decoded data
	decoded []byte
	offsets []objStmOffset
	objects map[int]Object // Cache keyed by index
}

// objStmOffset pairs an object number with its byte offset within the
// decoded data.
type objStmOffset struct {
	ObjNum int
	Offset int
}

// NewObjectStream creates an ObjectStream from a stream object. The
// stream must have /Type /ObjStm plus the required /N and /First
// entries.
func NewObjectStream(stream *Stream) (*ObjectStream, error) {
	if stream == nil {
		return nil, fmt.Errorf("stream is nil")
	}

	if typeName, _ := stream.Dict.GetName("Type"); typeName != "ObjStm" {
		return nil, fmt.Errorf("stream is not an object stream, got type %q", typeName)
	}

	n, ok := stream.Dict.GetInt("N")
	if !ok || n < 0 {
		return nil, fmt.Errorf("object stream has missing or invalid /N")
	}
	first, ok := stream.Dict.GetInt("First")
	if !ok || first < 0 {
		return nil, fmt.Errorf("object stream has missing or invalid /First")
	}

	return &ObjectStream{
		stream:  stream,
		n:       int(n),
		first:   int(first),
		objects: make(map[int]Object),
	}, nil
}

// N returns the number of objects stored in the stream.
func (os *ObjectStream) N() int {
	return os.n
}

// decode decodes the stream payload and parses the header on first
// access.
func (os *ObjectStream) decode() error {
	if os.decoded != nil {
		return nil
	}

	decoded, err := os.stream.Decode()
	if err != nil {
		return fmt.Errorf("failed to decode object stream: %w", err)
	}
	os.decoded = decoded

	if os.first > len(decoded) {
		return fmt.Errorf("/First offset %d exceeds decoded length %d", os.first, len(decoded))
	}

	// Header: N pairs of "objNum offset" integers.
	parser := NewParser(bytes.NewReader(decoded[:os.first]))
	os.offsets = make([]objStmOffset, 0, os.n)
	for i := 0; i < os.n; i++ {
		numObj, err := parser.ParseObject()
		if err != nil {
			return fmt.Errorf("failed to parse header pair %d: %w", i, err)
		}
		num, ok := numObj.(Int)
		if !ok {
			return fmt.Errorf("header object number %d is not an integer: %T", i, numObj)
		}

		offObj, err := parser.ParseObject()
		if err != nil {
			return fmt.Errorf("failed to parse header offset %d: %w", i, err)
		}
		off, ok := offObj.(Int)
		if !ok {
			return fmt.Errorf("header offset %d is not an integer: %T", i, offObj)
		}

		os.offsets = append(os.offsets, objStmOffset{ObjNum: int(num), Offset: int(off)})
	}

	return nil
}

// GetObjectByIndex extracts an object by its index within the stream
// (0-based). Returns the object and its object number.
func (os *ObjectStream) GetObjectByIndex(index int) (Object, int, error) {
	if err := os.decode(); err != nil {
		return nil, 0, err
	}

	if index < 0 || index >= len(os.offsets) {
		return nil, 0, fmt.Errorf("index %d out of range [0, %d)", index, len(os.offsets))
	}

	if obj, ok := os.objects[index]; ok {
		return obj, os.offsets[index].ObjNum, nil
	}

	start := os.first + os.offsets[index].Offset
	end := len(os.decoded)
	if index+1 < len(os.offsets) {
		end = os.first + os.offsets[index+1].Offset
	}
	if start >= len(os.decoded) {
		return nil, 0, fmt.Errorf("object offset %d exceeds decoded length %d", start, len(os.decoded))
	}
	if end > len(os.decoded) {
		end = len(os.decoded)
	}

	parser := NewParser(bytes.NewReader(os.decoded[start:end]))
	obj, err := parser.ParseObject()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to parse object at index %d: %w", index, err)
	}

	os.objects[index] = obj
	return obj, os.offsets[index].ObjNum, nil
}

// GetObjectByNumber finds and extracts an object by its object number.
func (os *ObjectStream) GetObjectByNumber(objNum int) (Object, error) {
	if err := os.decode(); err != nil {
		return nil, err
	}

	for i, entry := range os.offsets {
		if entry.ObjNum == objNum {
			obj, _, err := os.GetObjectByIndex(i)
			return obj, err
		}
	}
	return nil, fmt.Errorf("object %d not found in object stream", objNum)
}
