/*
Package domdbg implements helpers to debug a DOM tree and a styled tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/styledtree"
	tp "github.com/xlab/treeprint"
)

// PrintDOM renders a DOM tree as an indented text tree.
func PrintDOM(n *dom.Node) string {
	p := tp.New()
	pdom(p, n)
	return p.String()
}

func pdom(p tp.Tree, n *dom.Node) {
	if n == nil {
		return
	}
	if n.ChildCount() == 0 {
		p.AddNode(n.String())
		return
	}
	branch := p.AddBranch(n.String())
	for _, ch := range n.Children() {
		pdom(branch, ch)
	}
}

// PrintStyled renders a styled tree as an indented text tree, each node
// followed by its computed properties.
func PrintStyled(sn *styledtree.StyNode) string {
	p := tp.New()
	pstyled(p, sn)
	return p.String()
}

func pstyled(p tp.Tree, sn *styledtree.StyNode) {
	if sn == nil {
		return
	}
	label := fmt.Sprintf("%s %s", sn.DOMNode().NodeName(), sn.Styles())
	children := sn.ChildNodes()
	if len(children) == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, ch := range children {
		pstyled(branch, ch)
	}
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname   string
	NodeTmpl   *template.Template
	EdgeTmpl   *template.Template
	StylesTmpl *template.Template
}

type node struct {
	N    *styledtree.StyNode
	Name string
}

type edge struct {
	N1, N2 node
}

// ToGraphViz outputs a diagram for a styled tree in GraphViz (DOT) format.
// Every node is drawn with a table of its computed styles attached.
// The diagram may be rendered with `dot -Tsvg`.
func ToGraphViz(root *styledtree.StyNode, w io.Writer) error {
	head, err := template.New("styled").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("stynode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(styNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("styedge").Parse(styEdgeTmpl))
	gparams.StylesTmpl = template.Must(template.New("styles").Parse(stylesTmpl))
	if err = head.Execute(w, gparams); err != nil {
		return err
	}
	if root != nil {
		dict := make(map[*styledtree.StyNode]string, 256)
		if err = nodes(root, w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func nodes(sn *styledtree.StyNode, w io.Writer, dict map[*styledtree.StyNode]string,
	gparams *graphParamsType) error {
	//
	n := node{sn, nodeName(sn, dict)}
	if err := gparams.NodeTmpl.Execute(w, n); err != nil {
		return err
	}
	if err := gparams.StylesTmpl.Execute(w, n); err != nil {
		return err
	}
	for _, ch := range sn.ChildNodes() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		e := edge{n, node{ch, nodeName(ch, dict)}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func nodeName(sn *styledtree.StyNode, dict map[*styledtree.StyNode]string) string {
	name := dict[sn]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[sn] = name
	}
	return name
}

func shortText(sn *styledtree.StyNode) string {
	s := sn.DOMNode().InnerText()
	if r := []rune(s); len(r) > 10 {
		s = string(r[:10]) + "..."
	}
	s = strings.Replace(s, "\n", `\n`, -1)
	s = strings.Replace(s, "\t", `\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return fmt.Sprintf("%q", `"`+s+`"`)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const styNodeTmpl = `{{ if eq .N.DOMNode.NodeName "#text" }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.DOMNode.NodeName }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const stylesTmpl = `{{ .Name }}_styles [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      {{ range .N.Styles.Properties }}
      <tr><td align="right">{{ html .Key }}:</td><td>{{ html .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
{{ .Name }} -> {{ .Name }}_styles [dir=none weight=1 style="dashed"] ;
`

const styEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
