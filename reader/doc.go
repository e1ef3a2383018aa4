// Package reader provides document-level access to PDF files: header
// and cross-reference parsing, object loading with caching, decryption
// of protected documents, and page tree access.
//
// A Reader can be opened from a file path or an in-memory buffer:
//
//	r, err := reader.Open("document.pdf")
//	r, err := reader.NewReaderFromBytes(data, "password")
package reader
