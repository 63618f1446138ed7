// Package tsnode adapts a [tree_sitter.Node] to the [tree.Node] interface,
// so trees produced by a live tree-sitter parser can feed the picmode
// engines directly. The adapter holds no state of its own; wrapped nodes
// are as short-lived as the tree-sitter tree they point into.
package tsnode

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/smoeding/pic-ts-mode/tree"
)

// Node wraps a tree-sitter node. The zero value is not usable; construct
// with Wrap.
type Node struct {
	inner tree_sitter.Node
}

// Wrap returns a [tree.Node] view of n.
func Wrap(n tree_sitter.Node) Node {
	return Node{inner: n}
}

func (n Node) Kind() string    { return n.inner.Kind() }
func (n Node) StartByte() uint { return n.inner.StartByte() }
func (n Node) EndByte() uint   { return n.inner.EndByte() }
func (n Node) IsError() bool   { return n.inner.IsError() }

func (n Node) Parent() tree.Node {
	return wrapOptional(n.inner.Parent())
}

func (n Node) ChildCount() int {
	return int(n.inner.ChildCount())
}

func (n Node) Child(i int) tree.Node {
	if i < 0 {
		return nil
	}
	return wrapOptional(n.inner.Child(uint(i)))
}

func (n Node) FieldNameForChild(i int) string {
	if i < 0 {
		return ""
	}
	return n.inner.FieldNameForChild(uint32(i))
}

func (n Node) ChildByField(name string) tree.Node {
	return wrapOptional(n.inner.ChildByFieldName(name))
}

func (n Node) PrevSibling() tree.Node {
	return wrapOptional(n.inner.PrevSibling())
}

func (n Node) NextSibling() tree.Node {
	return wrapOptional(n.inner.NextSibling())
}

func wrapOptional(n *tree_sitter.Node) tree.Node {
	if n == nil {
		return nil
	}
	return Node{inner: *n}
}
