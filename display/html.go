package display

import (
	"fmt"
	"io"

	"github.com/npillmayer/bstree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders tree as nested unordered lists. Every node is a list item
// holding its value in a span of class "value", followed by a list of its
// children. Children carry class "left" or "right"; a missing child of an
// inner node is rendered as an empty item of class "empty".
//
// Values are formatted with fmt.Sprint and escaped.
func HTML[T any](w io.Writer, tree *bstree.Tree[T]) error {
	root := element(atom.Ul, "bstree")
	if !tree.IsEmpty() {
		root.AppendChild(htmlNode(tree.Root(), "root"))
	}
	return html.Render(w, root)
}

func htmlNode[T any](v bstree.NodeView[T], class string) *html.Node {
	if !v.Valid() {
		return element(atom.Li, class+" empty")
	}
	li := element(atom.Li, class)
	span := element(atom.Span, "value")
	span.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprint(v.Value())})
	li.AppendChild(span)
	if v.IsLeaf() {
		return li
	}
	children := element(atom.Ul, "")
	children.AppendChild(htmlNode(v.Left(), "left"))
	children.AppendChild(htmlNode(v.Right(), "right"))
	li.AppendChild(children)
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}
