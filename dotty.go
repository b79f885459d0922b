package bsearch

import (
	"cmp"
	"fmt"
	"io"
	"math/bits"
	"strings"
)

// Eytzinger2Dot outputs the implicit tree of an Eytzinger layout in Graphviz
// DOT format (for debugging purposes). Nodes are labelled with their value
// and their rank in the ascending sequence. If probe is given, the nodes a
// search for probe[0] visits are highlighted.
func Eytzinger2Dot[E cmp.Ordered](e *Eytzinger[E], w io.Writer, probe ...E) {
	var path map[int]bool
	if len(probe) > 0 {
		path = e.walk(probe[0])
	}
	var nodelist, edgelist strings.Builder
	n := e.Len()
	for k := 1; k <= n; k++ {
		rank, err := e.Rank(k - 1)
		if err != nil {
			T().Errorf("eytzinger DOT: %s", err.Error())
			return
		}
		label := fmt.Sprintf("%v @%d", e.layout[k-1], rank)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", k, label, nodeDotStyles(k, path[k]))
		left, right := k<<1, k<<1|1
		if left > n {
			continue
		}
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", k, left)
		if right > n {
			fmt.Fprintf(&nodelist, "\"%d\" %s;\n", right, emptyNode())
		}
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", k, right)
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

// walk collects the 1-based nodes a search for value visits.
func (e *Eytzinger[E]) walk(value E) map[int]bool {
	visited := make(map[int]bool)
	for k := 1; k <= e.Len(); {
		visited[k] = true
		if e.layout[k-1] < value {
			k = k<<1 | 1
		} else {
			k <<= 1
		}
	}
	return visited
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(k int, highlight bool) string {
	depth := bits.Len(uint(k)) - 1
	s := ",style=filled,color=black,shape=circle"
	if highlight {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexhlcolors[min(depth, len(hexhlcolors)-1)])
	} else {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(depth, len(hexcolors)-1)])
	}
	return s
}

var hexhlcolors = [...]string{"#FFEEDD", "#FFDDCC", "#FFCCAA", "#FFBB88", "#FFAA66",
	"#FF9944", "#FF8822", "#FF7700", "#ff6600"}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
