package bstree

import (
	"fmt"
	"io"
	"strings"
)

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

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

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Missing children of inner nodes are drawn as
// empty circles, so left and right are distinguishable.
//
func Tree2Dot[T any](tree *Tree[T], w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	name := DefaultName
	if tree != nil {
		name = tree.Name()
	}
	fmt.Fprintf(&b, "\tlabel=%q;\n", name)
	ids := newtable[T]()
	var nodelist, edgelist strings.Builder
	nilid := 0
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		ID := ids.alloc(n)
		label := dotEscaper.Replace(fmt.Sprint(n.value))
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n.isLeaf()))
		if n.isLeaf() {
			return
		}
		for _, child := range []*node[T]{n.left, n.right} {
			if child == nil {
				nilid--
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			walk(child)
		}
	}
	if !tree.IsEmpty() {
		walk(tree.root)
	}
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
		return err
	}
	return nil
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
