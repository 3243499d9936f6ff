// Package idt reads and writes the tree-shaped interchange format used to
// persist vocabularies and morphisms.
//
// Each declaration, formula and expression is one element. Leaf references
// carry a name attribute; combinators carry their operands as child elements
// in a fixed order.
package idt

import (
	"encoding/xml"
	"fmt"

	"github.com/leapstack-labs/leapfol/pkg/core"
)

// Root element names.
const (
	RootVocabulary = "vocabulary"
	RootMorphism   = "morphism"
)

// node is a generic element: a name, attributes, and child elements.
// Character data between elements is ignored.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []*node    `xml:",any"`
}

func elem(name string, children ...*node) *node {
	return &node{XMLName: xml.Name{Local: name}, Children: children}
}

func (n *node) with(attr, value string) *node {
	n.Attrs = append(n.Attrs, xml.Attr{Name: xml.Name{Local: attr}, Value: value})
	return n
}

func (n *node) name() string { return n.XMLName.Local }

func (n *node) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// required returns the named attribute or an error when it is absent.
func (n *node) required(name string) (string, error) {
	v, ok := n.attr(name)
	if !ok {
		return "", fmt.Errorf("idt: <%s> is missing attribute %q", n.name(), name)
	}
	return v, nil
}

// children returns exactly want child elements.
func (n *node) children(want int) ([]*node, error) {
	if len(n.Children) != want {
		return nil, fmt.Errorf("idt: <%s> expects %d child elements, got %d", n.name(), want, len(n.Children))
	}
	return n.Children, nil
}

func unknown(category string, n *node) error {
	return fmt.Errorf("idt: <%s> is not a %s: %w", n.name(), category,
		&core.UnsupportedError{Stage: core.StageDecode, Construct: "<" + n.name() + ">"})
}
