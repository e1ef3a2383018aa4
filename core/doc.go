// Package core provides low-level PDF parsing primitives and object
// types.
//
// This package implements the fundamental building blocks for working
// with PDF files: the eight basic object types (null, boolean, integer,
// real, string, name, array, and dictionary), streams, indirect
// references, cross-reference tables and streams, and object streams.
//
// # Object Types
//
// All object types satisfy the [Object] interface:
//
//   - [Null] - the PDF null object
//   - [Bool] - PDF boolean values
//   - [Int] - PDF integers
//   - [Real] - PDF real numbers
//   - [String] - PDF strings (literal or hexadecimal)
//   - [Name] - PDF names (e.g. /Type, /Font)
//   - [Array] - PDF arrays
//   - [Dict] - PDF dictionaries
//
// [Stream] represents a stream (dictionary plus binary data) and
// [IndirectRef] a reference to an indirect object.
//
// # Parsing
//
// [Lexer] tokenises PDF syntax; [Parser] assembles tokens into objects
// and complete indirect object definitions. [XRefParser] reads both
// classic cross-reference tables and cross-reference streams, following
// incremental-update chains. [ObjectStream] gives access to objects
// packed into /ObjStm streams.
package core
