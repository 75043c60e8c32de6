// Package tree builds parse trees with the parsing engine.
//
// Builder is the reference grammar: it looks descriptors up in a
// grammar.Table and reduces every operator to a Node. Trees print as
// s-expressions and serialize to canonical JSON for hashing and golden
// files.
package tree

import (
	"strings"

	"github.com/roach88/pratt/internal/canon"
	"github.com/roach88/pratt/internal/grammar"
	"github.com/roach88/pratt/internal/op"
)

// DomainTree is the hash domain of parse trees.
const DomainTree = "pratt/tree/v1"

// Node is an atom or an operator applied to its operands.
type Node struct {
	// Label is the atom text, or the operator label for interior nodes.
	Label string

	// Offset is the byte offset of the token that produced the node.
	Offset int

	// Operands are in source order. Empty for atoms and nilfix operators.
	Operands []*Node
}

// Leaf returns an atom node.
func Leaf(label string, offset int) *Node {
	return &Node{Label: label, Offset: offset}
}

// IsLeaf reports whether n has no operands.
func (n *Node) IsLeaf() bool { return len(n.Operands) == 0 }

// String renders n as an s-expression: `(+ a (* b c))`.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n.IsLeaf() {
		b.WriteString(n.Label)
		return
	}
	b.WriteByte('(')
	b.WriteString(n.Label)
	for _, o := range n.Operands {
		b.WriteByte(' ')
		o.write(b)
	}
	b.WriteByte(')')
}

// CanonicalValue returns the canonical JSON form of n: {"atom": label} for
// leaves and {"op": label, "args": [...]} otherwise. Offsets are not part
// of the form, so the same tree parsed from differently spaced sources
// hashes equally.
func (n *Node) CanonicalValue() any {
	if n.IsLeaf() {
		return map[string]any{"atom": n.Label}
	}
	args := make([]any, len(n.Operands))
	for i, o := range n.Operands {
		args[i] = o.CanonicalValue()
	}
	return map[string]any{"op": n.Label, "args": args}
}

// MarshalCanonical returns the canonical JSON encoding of n.
func (n *Node) MarshalCanonical() ([]byte, error) {
	return canon.MarshalCanonical(n)
}

// Hash returns the content hash of n under DomainTree.
func (n *Node) Hash() (string, error) {
	return canon.Hash(DomainTree, n)
}

// Label returns the node label of an operator: its name, followed by its
// separator names when the name is a symbol. `(` with follow `)` labels
// as `()`, `?` with `:` as `?:`. Word operators such as `if` keep their
// name.
func Label(o op.Op) string {
	if grammar.IsWord(o.Name) {
		return o.Name
	}
	var b strings.Builder
	b.WriteString(o.Name)
	for _, f := range o.FollowNames() {
		b.WriteString(f)
	}
	return b.String()
}
