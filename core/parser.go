package core

import (
	"fmt"
	"io"
	"strconv"
)

// ReferenceResolver is an interface for resolving indirect references.
// The parser needs it to resolve indirect /Length values on streams.
type ReferenceResolver interface {
	ResolveReference(ref IndirectRef) (Object, error)
}

// Parser parses PDF objects from an io.Reader using a Lexer for
// tokenisation. It supports all PDF object types including indirect
// objects and streams.
//
// Tokens are fetched lazily so that the binary payload following a
// "stream" keyword is never tokenised.
type Parser struct {
	lexer    *Lexer
	queue    []*Token // Lazily filled lookahead queue
	resolver ReferenceResolver
}

// NewParser creates a new PDF parser for the given reader.
func NewParser(r io.Reader) *Parser {
	return &Parser{
		lexer: NewLexer(r),
	}
}

// SetReferenceResolver sets the reference resolver used for indirect
// stream lengths.
func (p *Parser) SetReferenceResolver(resolver ReferenceResolver) {
	p.resolver = resolver
}

// peekToken returns the n-th upcoming token (0-based) without consuming
// it, skipping comments.
func (p *Parser) peekToken(n int) (*Token, error) {
	for len(p.queue) <= n {
		tok, err := p.lexer.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenComment {
			continue
		}
		p.queue = append(p.queue, tok)
	}
	return p.queue[n], nil
}

// nextToken consumes and returns the next token, skipping comments.
func (p *Parser) nextToken() (*Token, error) {
	tok, err := p.peekToken(0)
	if err != nil {
		return nil, err
	}
	p.queue = p.queue[1:]
	return tok, nil
}

// ParseObject parses and returns the next PDF object from the input.
// It handles all basic object types plus indirect references of the
// form "n g R".
func (p *Parser) ParseObject() (Object, error) {
	tok, err := p.peekToken(0)
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case TokenEOF:
		return nil, io.EOF

	case TokenKeyword:
		keyword := string(tok.Value)
		switch keyword {
		case "null":
			p.nextToken()
			return Null{}, nil
		case "true":
			p.nextToken()
			return Bool(true), nil
		case "false":
			p.nextToken()
			return Bool(false), nil
		default:
			return nil, fmt.Errorf("unexpected keyword: %s", keyword)
		}

	case TokenInteger:
		return p.parseNumberOrRef()

	case TokenReal:
		p.nextToken()
		val, err := strconv.ParseFloat(string(tok.Value), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid real number: %w", err)
		}
		return Real(val), nil

	case TokenString:
		p.nextToken()
		return String(tok.Value), nil

	case TokenHexString:
		p.nextToken()
		return String(decodeHexDigits(tok.Value)), nil

	case TokenName:
		p.nextToken()
		return Name(tok.Value), nil

	case TokenArrayStart:
		return p.parseArray()

	case TokenDictStart:
		return p.parseDict()

	default:
		return nil, fmt.Errorf("unexpected token type %v at position %d", tok.Type, tok.Pos)
	}
}

// parseNumberOrRef disambiguates an integer from an indirect reference
// "n g R" using two tokens of lookahead.
func (p *Parser) parseNumberOrRef() (Object, error) {
	first, err := p.nextToken()
	if err != nil {
		return nil, err
	}

	// Lookahead: Integer Integer R is an indirect reference.
	second, err := p.peekToken(0)
	if err == nil && second.Type == TokenInteger {
		third, err := p.peekToken(1)
		if err == nil && third.Type == TokenIndirectRef {
			num, err := strconv.Atoi(string(first.Value))
			if err != nil {
				return nil, fmt.Errorf("invalid object number: %w", err)
			}
			gen, err := strconv.Atoi(string(second.Value))
			if err != nil {
				return nil, fmt.Errorf("invalid generation number: %w", err)
			}
			p.nextToken() // generation
			p.nextToken() // R
			return IndirectRef{Number: num, Generation: gen}, nil
		}
	}

	val, err := strconv.ParseInt(string(first.Value), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer: %w", err)
	}
	return Int(val), nil
}

// parseArray parses an array after the '[' token.
func (p *Parser) parseArray() (Object, error) {
	if _, err := p.nextToken(); err != nil { // consume '['
		return nil, err
	}

	var arr Array
	for {
		tok, err := p.peekToken(0)
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenArrayEnd {
			p.nextToken()
			return arr, nil
		}
		if tok.Type == TokenEOF {
			return nil, fmt.Errorf("unclosed array")
		}

		obj, err := p.ParseObject()
		if err != nil {
			return nil, err
		}
		arr = append(arr, obj)
	}
}

// parseDict parses a dictionary after the '<<' token.
func (p *Parser) parseDict() (Object, error) {
	if _, err := p.nextToken(); err != nil { // consume '<<'
		return nil, err
	}

	dict := make(Dict)
	for {
		tok, err := p.peekToken(0)
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenDictEnd {
			p.nextToken()
			return dict, nil
		}
		if tok.Type == TokenEOF {
			return nil, fmt.Errorf("unclosed dictionary")
		}
		if tok.Type != TokenName {
			return nil, fmt.Errorf("dictionary key must be a name, got %v at position %d", tok.Type, tok.Pos)
		}

		keyTok, _ := p.nextToken()
		value, err := p.ParseObject()
		if err != nil {
			return nil, err
		}
		dict[string(keyTok.Value)] = value
	}
}

// ParseIndirectObject parses a complete indirect object definition:
// "n g obj <object> endobj", including the stream payload for stream
// objects.
func (p *Parser) ParseIndirectObject() (*IndirectObject, error) {
	numTok, err := p.nextToken()
	if err != nil {
		return nil, err
	}
	if numTok.Type != TokenInteger {
		return nil, fmt.Errorf("expected object number, got %v", numTok.Type)
	}
	num, err := strconv.Atoi(string(numTok.Value))
	if err != nil {
		return nil, fmt.Errorf("invalid object number: %w", err)
	}

	genTok, err := p.nextToken()
	if err != nil {
		return nil, err
	}
	if genTok.Type != TokenInteger {
		return nil, fmt.Errorf("expected generation number, got %v", genTok.Type)
	}
	gen, err := strconv.Atoi(string(genTok.Value))
	if err != nil {
		return nil, fmt.Errorf("invalid generation number: %w", err)
	}

	objTok, err := p.nextToken()
	if err != nil {
		return nil, err
	}
	if objTok.Type != TokenKeyword || string(objTok.Value) != "obj" {
		return nil, fmt.Errorf("expected 'obj' keyword, got %q", objTok.Value)
	}

	obj, err := p.ParseObject()
	if err != nil {
		return nil, fmt.Errorf("failed to parse object %d: %w", num, err)
	}

	ref := IndirectRef{Number: num, Generation: gen}

	// A dictionary may be followed by a stream payload.
	if dict, ok := obj.(Dict); ok {
		tok, err := p.peekToken(0)
		if err == nil && tok.Type == TokenKeyword && string(tok.Value) == "stream" {
			p.nextToken()
			stream, err := p.parseStreamData(dict)
			if err != nil {
				return nil, fmt.Errorf("failed to read stream for object %d: %w", num, err)
			}
			obj = stream
		}
	}

	// Consume the trailing endobj if present. Damaged files sometimes
	// omit it; tolerate that.
	if tok, err := p.peekToken(0); err == nil &&
		tok.Type == TokenKeyword && string(tok.Value) == "endobj" {
		p.nextToken()
	}

	return &IndirectObject{Ref: ref, Object: obj}, nil
}

// parseStreamData reads the binary payload following a "stream"
// keyword. The caller must have consumed the keyword token already; no
// further tokens may have been prefetched.
func (p *Parser) parseStreamData(dict Dict) (*Stream, error) {
	if len(p.queue) != 0 {
		return nil, fmt.Errorf("internal error: lookahead past stream keyword")
	}

	// The keyword is followed by CRLF or LF.
	if b, err := p.lexer.Peek(); err == nil && b == '\r' {
		p.lexer.ReadByte()
	}
	if b, err := p.lexer.Peek(); err == nil && b == '\n' {
		p.lexer.ReadByte()
	}

	length, err := p.streamLength(dict)
	if err != nil {
		return nil, err
	}

	data, err := p.lexer.ReadBytes(length)
	if err != nil {
		return nil, err
	}

	// Consume the endstream keyword, tolerating surrounding whitespace.
	if tok, err := p.peekToken(0); err == nil &&
		tok.Type == TokenKeyword && string(tok.Value) == "endstream" {
		p.nextToken()
	}

	return &Stream{Dict: dict, Data: data}, nil
}

// streamLength resolves the /Length entry, following an indirect
// reference through the configured resolver when necessary.
func (p *Parser) streamLength(dict Dict) (int, error) {
	lengthObj := dict.Get("Length")
	if lengthObj == nil {
		return 0, fmt.Errorf("stream dictionary missing /Length")
	}

	if ref, ok := lengthObj.(IndirectRef); ok {
		if p.resolver == nil {
			return 0, fmt.Errorf("stream /Length is indirect (%s) and no resolver is set", ref)
		}
		resolved, err := p.resolver.ResolveReference(ref)
		if err != nil {
			return 0, fmt.Errorf("failed to resolve stream /Length: %w", err)
		}
		lengthObj = resolved
	}

	length, ok := lengthObj.(Int)
	if !ok {
		return 0, fmt.Errorf("invalid stream /Length type: %T", lengthObj)
	}
	if length < 0 {
		return 0, fmt.Errorf("negative stream /Length: %d", length)
	}
	return int(length), nil
}

// decodeHexDigits converts the hex digits of a hex string token to raw
// bytes. An odd final digit is padded with zero per the PDF spec.
func decodeHexDigits(digits []byte) []byte {
	out := make([]byte, 0, (len(digits)+1)/2)
	for i := 0; i < len(digits); i += 2 {
		hi := hexValue(digits[i])
		var lo byte
		if i+1 < len(digits) {
			lo = hexValue(digits[i+1])
		}
		out = append(out, hi<<4|lo)
	}
	return out
}
