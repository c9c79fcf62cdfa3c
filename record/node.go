// Package record provides the generic tree form used to exchange XML documents
// between the Highrise transport and the entity mapper.
//
// A Node mirrors one XML element: its tag name, its attributes in document
// order, the trimmed text of a leaf and its child elements in document order.
// Decode and Encode convert between wire bytes and the tree.
package record

import "strings"

// Attr is a single element attribute.
type Attr struct {
	Key   string
	Value string
}

// Node is one element of a decoded document.
type Node struct {
	Name     string
	Value    string
	Attrs    []Attr
	Children []*Node
}

// New returns an empty node with the given tag name.
func New(name string) *Node {
	return &Node{Name: name}
}

// NewText returns a leaf node holding value.
func NewText(name, value string) *Node {
	return &Node{Name: name, Value: value}
}

// Child returns the first direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Find walks the path of child names and returns the node at its end, or nil
// when any step is missing.
func (n *Node) Find(path ...string) *Node {
	cur := n
	for _, name := range path {
		cur = cur.Child(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Has reports whether n has a direct child with the given name.
func (n *Node) Has(name string) bool {
	return n.Child(name) != nil
}

// Text returns the value of the named child leaf and whether the child exists.
// A child marked nil="true" exists but yields an empty value.
func (n *Node) Text(name string) (string, bool) {
	c := n.Child(name)
	if c == nil {
		return "", false
	}
	if c.IsNil() {
		return "", true
	}
	return c.Value, true
}

// Attr returns the value of the attribute key, or "" if it is not set.
func (n *Node) Attr(key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

// SetAttr sets or replaces the attribute key.
func (n *Node) SetAttr(key, value string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
	return n
}

// IsNil reports whether the element carries the Rails-style nil="true" marker.
func (n *Node) IsNil() bool {
	return strings.EqualFold(n.Attr("nil"), "true")
}

// Add appends child and returns it.
func (n *Node) Add(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// AddText appends a leaf child and returns it.
func (n *Node) AddText(name, value string) *Node {
	return n.Add(NewText(name, value))
}

// Ensure returns the direct child with the given name, creating it if needed.
func (n *Node) Ensure(name string) *Node {
	if c := n.Child(name); c != nil {
		return c
	}
	return n.Add(New(name))
}

// Len returns the number of direct children.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.Children)
}
