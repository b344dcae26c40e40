package msbuild

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
)

var ErrNoRoot = errors.New("document has no root element")

type element struct {
	e *etree.Element
}

func wrap(e *etree.Element) Node {
	if e == nil {
		return nullNode{}
	}
	return &element{e: e}
}

func (n *element) Name() string {
	return n.e.Tag
}

func (n *element) Child(name string) Node {
	return wrap(n.e.SelectElement(name))
}

func (n *element) Children() []Node {
	cc := n.e.ChildElements()
	ret := make([]Node, 0, len(cc))
	for _, c := range cc {
		ret = append(ret, wrap(c))
	}
	return ret
}

func (n *element) Attr(name, dflt string) string {
	return n.e.SelectAttrValue(name, dflt)
}

func (n *element) HasAttr(name string) bool {
	return n.e.SelectAttr(name) != nil
}

func (n *element) Text() string {
	return n.e.Text()
}

// Parse reads an XML document from r. The returned node is the document
// itself; its children are the top-level elements.
func Parse(r io.Reader) (Node, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("xml error: %w", err)
	}
	if doc.Root() == nil {
		return nil, ErrNoRoot
	}
	return wrap(&doc.Element), nil
}

func ParseString(s string) (Node, error) {
	return Parse(strings.NewReader(s))
}

// Load parses the XML file at fn.
func Load(fn string) (Node, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	n, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", fn, err)
	}
	return n, nil
}
