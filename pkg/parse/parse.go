// Package parse implements the reader of inductive's s-expression syntax.
//
// The syntax is:
//
//	form    = list | token
//	list    = '(' { form } ')'
//	token   = tokchar { tokchar }
//	tokchar = 'a'..'z' | '0'..'9' | one of "+-*/%<>=?!_."
//
// Tokens consisting only of decimal digits are numbers. Whitespace separates
// forms, and '#' starts a comment that runs to the end of the line.
package parse

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the kind of a Node.
type Kind int

// Possible values for Kind.
const (
	List Kind = iota
	Token
	Number
)

var kindNames = [...]string{List: "List", Token: "Token", Number: "Number"}

func (k Kind) String() string {
	if 0 <= k && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is a node in the syntax tree.
type Node struct {
	Kind Kind
	// Source text for Token and Number nodes.
	Text string
	// Children of List nodes.
	List []*Node
	// Byte offsets of the node in the source, [From, To).
	From, To int
}

// String returns the canonical source text of the node: comments are dropped
// and forms are separated by single spaces.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	if n.Kind != List {
		sb.WriteString(n.Text)
		return
	}
	sb.WriteByte('(')
	for i, child := range n.List {
		if i > 0 {
			sb.WriteByte(' ')
		}
		child.write(sb)
	}
	sb.WriteByte(')')
}

// Possible errors wrapped by *Error.
var (
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrUnbalanced     = errors.New("unbalanced parenthesis")
)

// Error is a parse error.
type Error struct {
	// Byte offset of the error in the source.
	Pos int
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at %d: %v", e.Pos, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Parse parses all the top-level forms in src.
func Parse(src string) ([]*Node, error) {
	ps := &parser{src: src}
	var forms []*Node
	for {
		ps.skipSpace()
		switch ps.peek() {
		case eof:
			return forms, nil
		case ')':
			return nil, ps.errorf(ErrUnbalanced, "')' without matching '('")
		}
		n, err := ps.form()
		if err != nil {
			return nil, err
		}
		forms = append(forms, n)
	}
}

// ParseOne parses src, which must contain exactly one form.
func ParseOne(src string) (*Node, error) {
	forms, err := Parse(src)
	if err != nil {
		return nil, err
	}
	if len(forms) != 1 {
		return nil, fmt.Errorf("want 1 form, got %d", len(forms))
	}
	return forms[0], nil
}
