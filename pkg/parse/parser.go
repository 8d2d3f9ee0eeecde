package parse

import "fmt"

// parser maintains the mutable state of parsing.
type parser struct {
	src string
	pos int
}

const eof = -1

func (ps *parser) peek() int {
	if ps.pos == len(ps.src) {
		return eof
	}
	return int(ps.src[ps.pos])
}

func (ps *parser) errorf(err error, format string, args ...any) *Error {
	return &Error{ps.pos, fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))}
}

func (ps *parser) skipSpace() {
	for ps.pos < len(ps.src) {
		switch c := ps.src[ps.pos]; {
		case c == '#':
			for ps.pos < len(ps.src) && ps.src[ps.pos] != '\n' {
				ps.pos++
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			ps.pos++
		default:
			return
		}
	}
}

// Parses a form; the current character must not be whitespace, ')' or EOF.
func (ps *parser) form() (*Node, error) {
	if ps.peek() == '(' {
		return ps.list()
	}
	if !isTokenChar(ps.peek()) {
		return nil, ps.errorf(ErrUnexpectedChar, "%q", ps.src[ps.pos])
	}
	begin := ps.pos
	kind := Number
	for ps.pos < len(ps.src) && isTokenChar(int(ps.src[ps.pos])) {
		if !isDigit(ps.src[ps.pos]) {
			kind = Token
		}
		ps.pos++
	}
	return &Node{Kind: kind, Text: ps.src[begin:ps.pos], From: begin, To: ps.pos}, nil
}

func (ps *parser) list() (*Node, error) {
	n := &Node{Kind: List, From: ps.pos}
	ps.pos++
	for {
		ps.skipSpace()
		switch ps.peek() {
		case eof:
			return nil, &Error{n.From, fmt.Errorf("%w: '(' without matching ')'", ErrUnbalanced)}
		case ')':
			ps.pos++
			n.To = ps.pos
			return n, nil
		}
		child, err := ps.form()
		if err != nil {
			return nil, err
		}
		n.List = append(n.List, child)
	}
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isTokenChar(c int) bool {
	switch {
	case 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '+', '-', '*', '/', '%', '<', '>', '=', '?', '!', '_', '.':
		return true
	}
	return false
}
