// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffman

import (
	"fmt"
	"strings"
)

// A Label is either a [Leaf] holding a symbol or a [*Node] holding two
// subtrees. No other types implement Label.
type Label[S comparable] interface {
	fmt.Stringer
	isLabel()
}

// A Leaf is a single symbol.
type Leaf[S comparable] struct {
	Symbol S
}

func (Leaf[S]) isLabel() {}

func (l Leaf[S]) String() string { return fmt.Sprint(l.Symbol) }

// A Node is an internal tree node.
// A well-formed Node has exactly two children: Children[0] is reached
// with a 0 bit and Children[1] with a 1 bit.
type Node[S comparable] struct {
	Children []Label[S]
}

func (*Node[S]) isLabel() {}

// String formats the subtree as nested lists, like "[[a b] c]".
func (n *Node[S]) String() string {
	if n == nil {
		return "<nil>"
	}
	var sb strings.Builder
	n.format(&sb)
	return sb.String()
}

func (n *Node[S]) format(sb *strings.Builder) {
	sb.WriteByte('[')
	for i, c := range n.Children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch c := c.(type) {
		case *Node[S]:
			if c == nil {
				sb.WriteString("<nil>")
			} else {
				c.format(sb)
			}
		case nil:
			sb.WriteString("<nil>")
		default:
			sb.WriteString(c.String())
		}
	}
	sb.WriteByte(']')
}

// BuildTree builds a Huffman tree from frequency entries.
//
// The entries are sorted with [SortEntries]. Then, while more than one entry
// remains, the two least probable are replaced by a Node whose first child is
// the second-least probable and whose second child is the least probable, and
// the list is sorted again. A merged entry therefore sorts after existing
// entries of the same probability.
//
// If there is only one entry, its label is returned as is.
func BuildTree[S comparable](entries []Entry[S]) (Label[S], error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no frequency entries", ErrEmptyInput)
	}
	q := SortEntries(entries)
	for len(q) > 1 {
		n := len(q)
		lo2, lo1 := q[n-2], q[n-1]
		merged := Entry[S]{
			Label: &Node[S]{Children: []Label[S]{lo2.Label, lo1.Label}},
			Prob:  lo2.Prob + lo1.Prob,
		}
		q = SortEntries(append(q[:n-2], merged))
	}
	return q[0].Label, nil
}
