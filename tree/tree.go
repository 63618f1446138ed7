// Package tree defines the read-only syntax tree view the picmode engines
// operate on. The tree itself is owned by an external parser; this package
// only fixes the relations the engines need to query (kind, range, parent,
// children, fields, siblings, error flag) and ships a plain in-memory
// implementation for embedders that bring their own parser and for tests.
package tree

// Node is a borrowed reference into an externally owned syntax tree.
// A Node is valid only until the tree it belongs to is replaced by a
// re-parse; callers must not retain nodes across that boundary.
type Node interface {
	// Kind returns the node's grammar type tag, or the literal token text
	// for anonymous tokens such as "{" and "]".
	Kind() string

	// StartByte returns the byte offset where this node begins.
	StartByte() uint

	// EndByte returns the byte offset where this node ends (exclusive).
	EndByte() uint

	// Parent returns the node's parent, or nil for the root.
	Parent() Node

	// ChildCount returns the number of children, in source order.
	ChildCount() int

	// Child returns the i-th child, or nil if i is out of range.
	Child(i int) Node

	// FieldNameForChild returns the field name of the i-th child, or ""
	// if the child is not bound to a field.
	FieldNameForChild(i int) string

	// ChildByField returns the first child bound to the given field name,
	// or nil if there is none.
	ChildByField(name string) Node

	// PrevSibling returns the preceding sibling, or nil.
	PrevSibling() Node

	// NextSibling returns the following sibling, or nil.
	NextSibling() Node

	// IsError reports whether the node was produced by the parser's error
	// recovery. Error nodes are ordinary nodes in every other respect.
	IsError() bool
}

// Text returns the source text covered by n. The source must be the exact
// byte buffer the tree was parsed from.
func Text(n Node, source []byte) string {
	start, end := n.StartByte(), n.EndByte()
	if start > end || end > uint(len(source)) {
		return ""
	}
	return string(source[start:end])
}

// MemNode is an in-memory Node implementation. Build trees with NewMemNode
// and attach children with AddChild; parent and sibling links are maintained
// by the builder.
type MemNode struct {
	kind       string
	startByte  uint
	endByte    uint
	parent     *MemNode
	children   []*MemNode
	fieldNames []string // parallel to children, "" = no field
	isError    bool
}

// NewMemNode creates a detached node covering [startByte, endByte).
func NewMemNode(kind string, startByte, endByte uint) *MemNode {
	return &MemNode{kind: kind, startByte: startByte, endByte: endByte}
}

// NewErrorNode creates a detached node flagged as a parse error.
func NewErrorNode(kind string, startByte, endByte uint) *MemNode {
	n := NewMemNode(kind, startByte, endByte)
	n.isError = true
	return n
}

// AddChild appends child to n, optionally bound to a field name, and
// returns n for chaining. Children must be added in source order.
func (n *MemNode) AddChild(field string, child *MemNode) *MemNode {
	child.parent = n
	n.children = append(n.children, child)
	n.fieldNames = append(n.fieldNames, field)
	return n
}

func (n *MemNode) Kind() string    { return n.kind }
func (n *MemNode) StartByte() uint { return n.startByte }
func (n *MemNode) EndByte() uint   { return n.endByte }
func (n *MemNode) IsError() bool   { return n.isError }

func (n *MemNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *MemNode) ChildCount() int { return len(n.children) }

func (n *MemNode) Child(i int) Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *MemNode) FieldNameForChild(i int) string {
	if i < 0 || i >= len(n.fieldNames) {
		return ""
	}
	return n.fieldNames[i]
}

func (n *MemNode) ChildByField(name string) Node {
	for i, fieldName := range n.fieldNames {
		if fieldName == name {
			return n.children[i]
		}
	}
	return nil
}

func (n *MemNode) PrevSibling() Node {
	i := n.childIndex()
	if i <= 0 {
		return nil
	}
	return n.parent.children[i-1]
}

func (n *MemNode) NextSibling() Node {
	i := n.childIndex()
	if i == -1 || i+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[i+1]
}

func (n *MemNode) childIndex() int {
	if n.parent == nil {
		return -1
	}
	for i, child := range n.parent.children {
		if child == n {
			return i
		}
	}
	return -1
}
