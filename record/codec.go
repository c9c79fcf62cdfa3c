package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// ErrNoRoot is returned when a document has no root element.
var ErrNoRoot = errors.New("record: document has no root element")

// Decode parses an XML document into its root Node.
func Decode(data []byte) (*Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, ErrNoRoot
	}

	return fromElement(root), nil
}

func fromElement(el *etree.Element) *Node {
	n := &Node{Name: el.Tag}

	for _, a := range el.Attr {
		n.Attrs = append(n.Attrs, Attr{Key: a.Key, Value: a.Value})
	}

	children := el.ChildElements()
	if len(children) == 0 {
		n.Value = strings.TrimSpace(el.Text())
		return n
	}

	n.Children = make([]*Node, 0, len(children))
	for _, c := range children {
		n.Children = append(n.Children, fromElement(c))
	}
	return n
}

// Encode serializes n as a UTF-8 XML document with a declaration header.
func Encode(n *Node) ([]byte, error) {
	if n == nil || n.Name == "" {
		return nil, ErrNoRoot
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	toElement(&doc.Element, n)
	doc.Indent(2)

	return doc.WriteToBytes()
}

func toElement(parent *etree.Element, n *Node) {
	el := parent.CreateElement(n.Name)
	for _, a := range n.Attrs {
		el.CreateAttr(a.Key, a.Value)
	}

	if len(n.Children) == 0 {
		if n.Value != "" {
			el.SetText(n.Value)
		}
		return
	}

	for _, c := range n.Children {
		toElement(el, c)
	}
}
