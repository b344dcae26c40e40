package msbuild

// Node is the view of an MSBuild XML element used by the extractor.
// Lookups never fail: a missing child is an empty node whose Text,
// Attr and Children all resolve to zero values.
type Node interface {
	Name() string
	Child(name string) Node
	Children() []Node
	Attr(name, dflt string) string
	HasAttr(name string) bool
	Text() string
}

type nullNode struct{}

func (nullNode) Name() string                      { return "" }
func (nullNode) Child(string) Node                 { return nullNode{} }
func (nullNode) Children() []Node                  { return nil }
func (nullNode) Attr(_ string, dflt string) string { return dflt }
func (nullNode) HasAttr(string) bool               { return false }
func (nullNode) Text() string                      { return "" }

// Missing reports whether n is the empty node returned for absent elements.
func Missing(n Node) bool {
	if n == nil {
		return true
	}
	_, ok := n.(nullNode)
	return ok
}
