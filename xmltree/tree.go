package xmltree

import "strings"

// NodeType classifies nodes in the element tree. Values follow the DOM constants.
type NodeType int

const (
	// ElementNode identifies an element.
	ElementNode NodeType = 1
	// TextNode identifies character data, including CDATA sections.
	TextNode NodeType = 3
	// CommentNode identifies a comment.
	CommentNode NodeType = 8
)

// Node is a child of an Element: *Element, Text or Comment.
type Node interface {
	NodeType() NodeType
}

// Text is a run of character data.
type Text string

// NodeType implements Node.
func (Text) NodeType() NodeType { return TextNode }

// Comment is the body of an XML comment.
type Comment string

// NodeType implements Node.
func (Comment) NodeType() NodeType { return CommentNode }

// Attr is an attribute of an element.
type Attr struct {
	// Space is the namespace URI of a prefixed attribute, or "xmlns" for a
	// prefixed namespace declaration. Empty for ordinary CSDL attributes and
	// for the default "xmlns" declaration.
	Space string
	// Local is the attribute name without prefix.
	Local string
	// Value is the attribute value with entities expanded.
	Value string
}

// A is shorthand for an unqualified attribute.
func A(name, value string) Attr {
	return Attr{Local: name, Value: value}
}

// Name returns the attribute name as a DOM would report it: the local name for
// unqualified attributes and "xmlns:prefix" for namespace declarations.
func (a Attr) Name() string {
	switch a.Space {
	case "":
		return a.Local
	case "xmlns":
		return "xmlns:" + a.Local
	default:
		return a.Space + ":" + a.Local
	}
}

// Element is an XML element with its attributes and child nodes in document order.
type Element struct {
	// Space is the namespace URI of the element.
	Space string
	// Local is the element name without prefix.
	Local string
	// Attrs holds the attributes in document order.
	Attrs []Attr
	// Nodes holds child elements, text and comments in document order.
	Nodes []Node
}

// NodeType implements Node.
func (*Element) NodeType() NodeType { return ElementNode }

// NewElement creates an element with the given local name and attributes.
func NewElement(local string, attrs ...Attr) *Element {
	return &Element{Local: local, Attrs: attrs}
}

// AppendChild appends nodes to the element and returns the element for chaining.
func (e *Element) AppendChild(nodes ...Node) *Element {
	e.Nodes = append(e.Nodes, nodes...)
	return e
}

// Attr returns the value of the unqualified attribute name and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Space == "" && a.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrValue returns the value of the unqualified attribute name, or "" when absent.
func (e *Element) AttrValue(name string) string {
	v, _ := e.Attr(name)
	return v
}

// ChildElements returns the element children in document order.
func (e *Element) ChildElements() []*Element {
	var children []*Element
	for _, n := range e.Nodes {
		if child, ok := n.(*Element); ok {
			children = append(children, child)
		}
	}
	return children
}

// TextContent returns the concatenated character data of the element's subtree,
// like the DOM property of the same name. Comments are excluded.
func (e *Element) TextContent() string {
	var sb strings.Builder
	e.collectText(&sb)
	return sb.String()
}

func (e *Element) collectText(sb *strings.Builder) {
	for _, n := range e.Nodes {
		switch v := n.(type) {
		case Text:
			sb.WriteString(string(v))
		case *Element:
			v.collectText(sb)
		}
	}
}
