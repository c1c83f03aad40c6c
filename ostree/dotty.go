package ostree

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/containers/stack"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Node labels show the value, the rank and the
// left and right subtree counts.
func ToDot[T any](t *Tree[T], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable[T]()
	nilid := 0
	emptyChild := func(parent int) {
		nilid--
		fmt.Fprintf(&nodelist, "\"n%d\" %s;\n", -nilid, emptyNode())
		fmt.Fprintf(&edgelist, "\"%d\" -> \"n%d\";\n", parent, -nilid)
	}
	rank := 0
	inorder(t.root, func(n *node[T]) bool {
		ID := ids.alloc(n)
		label := fmt.Sprintf("%v\\n#%d  %d|%d", dotEscaper.Replace(fmt.Sprint(n.value)),
			rank, n.leftCount, n.rightCount)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", ID, label, nodeDotStyles(n))
		rank++
		return true
	})
	if t.root != nil {
		pending := stack.New(t.root)
		for !pending.Empty() {
			n, _ := pending.Pop()
			if n.left == nil && n.right == nil {
				continue
			}
			ID := ids.find(n)
			if n.left == nil {
				emptyChild(ID)
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.find(n.left))
				pending.Push(n.left)
			}
			if n.right == nil {
				emptyChild(ID)
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.find(n.right))
				pending.Push(n.right)
			}
		}
	}
	if err := t.Check(); err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	_, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"+
		nodelist.String()+edgelist.String()+"}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[T any](n *node[T]) string {
	s := ",style=filled,shape=box"
	if n.left == nil && n.right == nil {
		return s + ",fillcolor=\"#e8f4f8\""
	}
	return s + ",color=black,fillcolor=\"#a3d7e4\""
}
