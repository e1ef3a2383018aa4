// Package contentstream parses PDF content streams into operator
// sequences.
//
// A content stream is a postfix program: operands precede their
// operator. [Parser] tokenises the stream into [Operation] values in
// evaluation order, tolerating malformed operands by resynchronising at
// the next operator boundary.
package contentstream
