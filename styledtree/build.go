package styledtree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/restyle/engine"
	"github.com/npillmayer/restyle/style/cssom/douceuradapter"
	"github.com/npillmayer/restyle/style/selector"
	"github.com/npillmayer/restyle/tree"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document relates the nodes of an HTML parse tree to the entities built
// from them.
type Document struct {
	cx       *engine.Context
	entities map[*html.Node]tree.Entity
	nodes    map[tree.Entity]*html.Node
	ids      map[string]tree.Entity
}

// Context returns the engine context the document has been built into.
func (doc *Document) Context() *engine.Context {
	return doc.cx
}

// Entity returns the entity built for an HTML node.
func (doc *Document) Entity(h *html.Node) (tree.Entity, bool) {
	e, ok := doc.entities[h]
	return e, ok
}

// HTMLNode returns the HTML node an entity has been built from.
func (doc *Document) HTMLNode(e tree.Entity) *html.Node {
	return doc.nodes[e]
}

// Find returns the entity of an element with a given id attribute.
func (doc *Document) Find(id string) (tree.Entity, bool) {
	e, ok := doc.ids[id]
	return e, ok
}

// Parse parses an HTML document and builds it into a context.
func Parse(cx *engine.Context, text string) (*Document, error) {
	h, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("cannot parse HTML: %w", err)
	}
	return Build(cx, h)
}

// Build converts an HTML parse tree into entities of cx. The top-level
// element (usually <html>) is mapped onto the root entity, every visual
// element below it becomes a new entity.
//
// Problems with individual attributes, e.g. unknown properties in style
// attributes, do not stop the build; they are reported in an aggregated
// error, together with the document built.
func Build(cx *engine.Context, h *html.Node) (*Document, error) {
	top := h
	if h.Type == html.DocumentNode {
		top = firstElement(h)
	}
	if top == nil {
		return nil, fmt.Errorf("HTML document has no elements")
	}
	doc := &Document{
		cx:       cx,
		entities: make(map[*html.Node]tree.Entity),
		nodes:    make(map[tree.Entity]*html.Node),
		ids:      make(map[string]tree.Entity),
	}
	var errs error
	errs = multierr.Append(errs, doc.element(top, tree.Root))
	errs = multierr.Append(errs, doc.children(top, tree.Root))
	tracer().Debugf("built %d entities from HTML", len(doc.nodes))
	return doc, errs
}

func (doc *Document) children(h *html.Node, parent tree.Entity) error {
	var errs error
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || !isVisual(c) {
			continue
		}
		e, err := doc.cx.Add(parent, c.Data)
		if err != nil {
			return multierr.Append(errs, err)
		}
		errs = multierr.Append(errs, doc.element(c, e))
		errs = multierr.Append(errs, doc.children(c, e))
	}
	return errs
}

// element applies the tag and the attributes of h to e.
func (doc *Document) element(h *html.Node, e tree.Entity) error {
	cx := doc.cx
	doc.entities[h] = e
	doc.nodes[e] = h
	if err := cx.SetElementKind(e, h.Data); err != nil {
		return err
	}
	var errs error
	var states selector.PseudoClassFlags
	for _, a := range h.Attr {
		var err error
		switch strings.ToLower(a.Key) {
		case "id":
			err = cx.SetID(e, a.Val)
			doc.ids[a.Val] = e
		case "class":
			for _, c := range strings.Fields(a.Val) {
				errs = multierr.Append(errs, cx.AddClass(e, c))
			}
		case "disabled":
			err = cx.SetDisabled(e, true)
		case "checked":
			states |= selector.Checked
		case "required":
			states |= selector.Required
		case "readonly":
			states |= selector.ReadOnly
		case "style":
			err = doc.inlineStyles(e, a.Val)
		case "data-layout":
			if a.Val == "transparent" {
				err = cx.SetTransparent(e, true)
			}
		}
		errs = multierr.Append(errs, err)
	}
	if states != 0 {
		errs = multierr.Append(errs, cx.SetPseudoClass(e, states, true))
	}
	return errs
}

func (doc *Document) inlineStyles(e tree.Entity, text string) error {
	decls, err := douceuradapter.ParseDeclarations(text)
	if err != nil {
		return fmt.Errorf("style attribute of %s: %w", e, err)
	}
	var errs error
	for _, kv := range decls {
		if err := doc.cx.SetInlineByKey(e, kv.Key, kv.Value); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("style attribute of %s: %w", e, err))
		}
	}
	return errs
}

func firstElement(h *html.Node) *html.Node {
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

func isVisual(h *html.Node) bool {
	switch h.DataAtom {
	case atom.Head, atom.Script, atom.Style, atom.Template, atom.Title, atom.Meta, atom.Link:
		return false
	}
	return true
}
