/*
Package enginedbg implements helpers to debug a styled entity tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package enginedbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/restyle/engine"
	"github.com/npillmayer/restyle/style"
	"github.com/npillmayer/restyle/tree"
	tp "github.com/xlab/treeprint"
)

// Label returns a selector-like description of an entity, e.g.
// "label#name.big.red".
func Label(cx *engine.Context, e tree.Entity) string {
	st := cx.Store()
	var b strings.Builder
	kind := st.Kind(e)
	if kind == "" {
		kind = "*"
	}
	b.WriteString(kind)
	if id, ok := st.ID(e); ok {
		b.WriteString("#" + id)
	}
	for _, c := range st.Classes(e) {
		b.WriteString("." + c)
	}
	if cx.Tree().IsTransparent(e) {
		b.WriteString(" (transparent)")
	}
	return b.String()
}

// styledProps lists the properties of e which do not resolve to their
// default, restricted to ids if given.
func styledProps(cx *engine.Context, e tree.Entity, ids []style.PropertyID) []prop {
	if len(ids) == 0 {
		for _, d := range style.All() {
			ids = append(ids, d.ID)
		}
	}
	var props []prop
	for _, id := range ids {
		v, tier, err := cx.LookupTier(e, id)
		if err != nil || tier == style.TierDefault {
			continue
		}
		props = append(props, prop{Key: id.Key(), Value: v.String(), Tier: tier.String()})
	}
	return props
}

type prop struct {
	Key, Value, Tier string
}

// Dump returns a text rendition of the entity tree of a context. Every
// entity lists its non-default properties; ids restricts the list to the
// given properties.
func Dump(cx *engine.Context, ids ...style.PropertyID) string {
	p := tp.New()
	root := p.AddBranch(fmt.Sprintf("%s [%s]", Label(cx, tree.Root), tree.Root))
	for _, pr := range styledProps(cx, tree.Root, ids) {
		root.AddNode(fmt.Sprintf("%s: %s (%s)", pr.Key, pr.Value, pr.Tier))
	}
	dumpChildren(cx, root, tree.Root, ids)
	return p.String()
}

func dumpChildren(cx *engine.Context, p tp.Tree, e tree.Entity, ids []style.PropertyID) {
	for _, ch := range cx.Tree().Children(e) {
		name := fmt.Sprintf("%s [%s]", Label(cx, ch), ch)
		props := styledProps(cx, ch, ids)
		if len(props) == 0 && !cx.Tree().HasChildren(ch) {
			p.AddNode(name)
			continue
		}
		branch := p.AddBranch(name)
		for _, pr := range props {
			branch.AddNode(fmt.Sprintf("%s: %s (%s)", pr.Key, pr.Value, pr.Tier))
		}
		dumpChildren(cx, branch, ch, ids)
	}
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	PropsTmpl *template.Template
	PEdgeTmpl *template.Template
}

type node struct {
	Name   string
	Label  string
	Props  []prop
	Hidden bool
}

type edge struct {
	N1, N2 string
}

// ToGraphViz outputs a diagram for the entity tree of a context. The
// diagram is in GraphViz (DOT) format. Every entity with non-default
// properties is connected to a table of those properties; ids restricts
// the table to the given properties.
func ToGraphViz(cx *engine.Context, w io.Writer, ids ...style.PropertyID) error {
	tmpl, err := template.New("tree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("entity").Parse(entityTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	gparams.PropsTmpl = template.Must(template.New("props").Parse(propsTmpl))
	gparams.PEdgeTmpl = template.Must(template.New("pedge").Parse(propsEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	for e := range cx.Tree().PreOrder() {
		n := node{
			Name:   nodeName(e),
			Label:  Label(cx, e),
			Props:  styledProps(cx, e, ids),
			Hidden: cx.Tree().IsTransparent(e),
		}
		if err = gparams.NodeTmpl.Execute(w, n); err != nil {
			return err
		}
		if len(n.Props) > 0 {
			if err = gparams.PropsTmpl.Execute(w, n); err != nil {
				return err
			}
			if err = gparams.PEdgeTmpl.Execute(w, n); err != nil {
				return err
			}
		}
		if p, ok := cx.Tree().Parent(e); ok {
			if err = gparams.EdgeTmpl.Execute(w, edge{nodeName(p), n.Name}); err != nil {
				return err
			}
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func nodeName(e tree.Entity) string {
	return fmt.Sprintf("node%05d_%d", e.Index(), e.Generation())
}

// Dotty is a helper for testing. Given a context and a testing.T, it will
// create a GraphViz image of the entity tree and write it to a file in the
// current folder, choosing a unique file name. The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(cx *engine.Context, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "entities.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
	}()
	t.Logf("writing entity digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(cx, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

// --- Templates -------------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const entityTmpl = `{{ if .Hidden }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=box style=dashed ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}`

const propsTmpl = `{{ .Name }}_props [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      {{ range .Props }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td><td><font color="azure4">{{ .Tier }}</font></td></tr>
      {{ end }}
    </table>> ] ;
`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`

const propsEdgeTmpl = `{{ .Name }} -> {{ .Name }}_props [dir=none weight=1 style="dashed"] ;
`
