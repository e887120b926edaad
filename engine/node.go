package engine

import (
	"github.com/npillmayer/restyle/style/selector"
	"github.com/npillmayer/restyle/tree"
)

// node adapts an entity to selector.Element. Nodes are created per call and
// give read-only access to the context.
type node struct {
	cx *Context
	e  tree.Entity
}

var _ selector.Element = node{}

func (n node) ElementKind() string {
	return n.cx.store.Kind(n.e)
}

func (n node) ID() string {
	id, _ := n.cx.store.ID(n.e)
	return id
}

func (n node) HasClass(class string) bool {
	return n.cx.store.HasClass(n.e, class)
}

func (n node) PseudoClasses() selector.PseudoClassFlags {
	return n.cx.store.PseudoClasses(n.e)
}

func (n node) IsDisabled() bool {
	return n.cx.store.IsDisabled(n.e)
}

func (n node) Parent() (selector.Element, bool) {
	return n.wrap(n.cx.tree.LayoutParent(n.e))
}

func (n node) PrevSibling() (selector.Element, bool) {
	return n.wrap(n.cx.tree.PrevLayoutSibling(n.e))
}

func (n node) NextSibling() (selector.Element, bool) {
	return n.wrap(n.cx.tree.NextLayoutSibling(n.e))
}

func (n node) IsRoot() bool {
	return n.e == tree.Root
}

func (n node) IsEmpty() bool {
	return !n.cx.tree.HasChildren(n.e)
}

func (n node) wrap(e tree.Entity, ok bool) (selector.Element, bool) {
	if !ok {
		return nil, false
	}
	return node{cx: n.cx, e: e}, true
}
