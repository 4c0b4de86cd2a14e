package sodg

import (
	"encoding/xml"
	"strings"
)

type xmlEdge struct {
	Label string `xml:"a,attr"`
	To    VId    `xml:"to,attr"`
}

type xmlVertex struct {
	ID    VId       `xml:"id,attr"`
	Edges []xmlEdge `xml:"e"`
	Data  string    `xml:"data,omitempty"`
}

type xmlGraph struct {
	XMLName  xml.Name    `xml:"sodg"`
	Vertices []xmlVertex `xml:"v"`
}

// ToXML renders the graph as an XML 1.1 document: one <v id="..."> per
// live vertex holding its sorted <e a="..." to="..."/> edges and, if a
// payload was ever written, a <data> child with space-separated hex.
func (g *Sodg) ToXML() (string, error) {
	doc := xmlGraph{}
	for _, v := range g.Keys() {
		vtx := g.slab.get(v)
		xv := xmlVertex{ID: v}
		for _, e := range vtx.edges.Sorted() {
			xv.Edges = append(xv.Edges, xmlEdge{Label: e.Label.String(), To: e.To})
		}
		if vtx.state != persistEmpty {
			xv.Data = strings.ReplaceAll(vtx.data.Print(), "-", " ")
		}
		doc.Vertices = append(doc.Vertices, xv)
	}
	out, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return "", err
	}
	return `<?xml version="1.1" encoding="UTF-8"?>` + "\n" + string(out) + "\n", nil
}
