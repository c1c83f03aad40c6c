package ostree

import (
	"fmt"
	"io"

	"github.com/npillmayer/containers/stack"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML outputs a tree as an HTML document of nested lists (for
// debugging purposes). Every node is a list item of class "node", holding
// the value, its rank and its subtree counts. A missing child of a node with
// one child is rendered as an empty item of class "nil", to keep left and
// right apart.
func RenderHTML[T any](t *Tree[T], w io.Writer) error {
	doc := &html.Node{Type: html.DocumentNode}
	root := element(atom.Html, "")
	doc.AppendChild(root)
	head := element(atom.Head, "")
	title := element(atom.Title, "")
	title.AppendChild(text(fmt.Sprintf("tree of %d values", t.Len())))
	head.AppendChild(title)
	root.AppendChild(head)
	body := element(atom.Body, "")
	root.AppendChild(body)
	top := element(atom.Ul, "ostree")
	body.AppendChild(top)
	if t.root != nil {
		ranks := make(map[*node[T]]int, t.Len())
		rank := 0
		inorder(t.root, func(n *node[T]) bool {
			ranks[n] = rank
			rank++
			return true
		})
		pending := stack.New(placed[T]{n: t.root, parent: top})
		for !pending.Empty() {
			f, _ := pending.Pop()
			if f.n == nil {
				f.parent.AppendChild(element(atom.Li, "nil"))
				continue
			}
			li := element(atom.Li, "node")
			value := element(atom.Span, "value")
			value.AppendChild(text(fmt.Sprint(f.n.value)))
			li.AppendChild(value)
			counts := element(atom.Span, "counts")
			counts.AppendChild(text(fmt.Sprintf(" #%d %d|%d", ranks[f.n], f.n.leftCount, f.n.rightCount)))
			li.AppendChild(counts)
			f.parent.AppendChild(li)
			if f.n.left == nil && f.n.right == nil {
				continue
			}
			children := element(atom.Ul, "")
			li.AppendChild(children)
			pending.Push(placed[T]{n: f.n.right, parent: children})
			pending.Push(placed[T]{n: f.n.left, parent: children})
		}
	}
	return html.Render(w, doc)
}

// placed is a node waiting to be appended to its parent list.
// A nil node stands for a missing child.
type placed[T any] struct {
	n      *node[T]
	parent *html.Node
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
