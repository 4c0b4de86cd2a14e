package sodg

import (
	"fmt"
	"strings"
)

// ToDOT renders the graph as a self-contained Graphviz program. Every
// live vertex becomes a circle node; vertices carrying a payload are
// drawn in a distinct color with the payload in a trailing comment.
// Edges labeled ρ/σ are drawn grey, π dashed. Vertices and their edges
// are emitted in ascending id / label order so two graphs built from
// the same edges in different insertion orders render byte-identically.
func (g *Sodg) ToDOT() string {
	var b strings.Builder
	b.WriteString("/* Render it at https://dreampuf.github.io/GraphvizOnline/ */\n")
	b.WriteString("digraph {\n")
	b.WriteString("  node [fixedsize=true,width=1,fontname=\"Arial\"];\n")
	b.WriteString("  edge [fontname=\"Arial\"];\n")
	for _, v := range g.Keys() {
		vtx := g.slab.get(v)
		color := ""
		comment := ""
		if vtx.state != persistEmpty {
			color = ",color=\"#f96900\""
			comment = fmt.Sprintf(" /* %s */", vtx.data.Print())
		}
		fmt.Fprintf(&b, "  v%d[shape=circle,label=\"ν%d\"%s];%s\n", v, v, color, comment)
		for _, e := range vtx.edges.Sorted() {
			grey, dashed := "", ""
			if r, ok := e.Label.IsGreek(); ok {
				if r == 'ρ' || r == 'σ' {
					grey = ",color=gray,fontcolor=gray"
				}
				if r == 'π' {
					dashed = ",style=dashed"
				}
			}
			fmt.Fprintf(&b, "  v%d -> v%d [label=\"%s\"%s%s];\n", v, e.To, e.Label, grey, dashed)
		}
	}
	b.WriteString("}\n")
	return b.String()
}
