package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

// ErrInvalidEntity is returned if an operation is called with an entity which
// is not (or no longer) part of the tree.
var ErrInvalidEntity = errors.New("entity is not alive")

// ErrCycle is returned if a re-parenting operation would create a cycle.
var ErrCycle = errors.New("operation would create a cycle")

// ErrRootRemoval is returned on an attempt to destroy or move the root entity.
var ErrRootRemoval = errors.New("root entity cannot be removed or moved")

// ErrHasChildren is returned if an entity with children is destroyed. Callers
// have to destroy a branch bottom-up.
var ErrHasChildren = errors.New("entity still has children")

// links holds the adjacency of a single node.
type links struct {
	parent      Entity
	firstChild  Entity
	lastChild   Entity
	next        Entity
	prev        Entity
	transparent bool
	alive       bool
}

var noLinks = links{parent: Null, firstChild: Null, lastChild: Null, next: Null, prev: Null}

// Tree is an arena of entities. It owns the parent/child/sibling adjacency
// of every live entity.
//
// Invariants: there is exactly one root; every non-root entity has exactly
// one parent; there are no cycles; child order is significant.
type Tree struct {
	ids   idManager
	nodes []links // indexed by entity index
	count int
}

// New creates a tree consisting of the root entity only.
func New() *Tree {
	t := &Tree{}
	root := t.ids.create()
	t.ensure(root)
	t.nodes[root.Index()].alive = true
	t.count = 1
	return t
}

func (t *Tree) ensure(e Entity) {
	for int(e.Index()) >= len(t.nodes) {
		t.nodes = append(t.nodes, noLinks)
	}
}

func (t *Tree) node(e Entity) *links {
	return &t.nodes[e.Index()]
}

// IsAlive is true if e denotes an entity currently part of the tree.
func (t *Tree) IsAlive(e Entity) bool {
	return t.ids.isCurrent(e) && int(e.Index()) < len(t.nodes) && t.nodes[e.Index()].alive
}

// Len returns the number of live entities, including the root.
func (t *Tree) Len() int {
	return t.count
}

// Create allocates a new entity and appends it as the last child of parent.
func (t *Tree) Create(parent Entity) (Entity, error) {
	if !t.IsAlive(parent) {
		return Null, fmt.Errorf("create child of %s: %w", parent, ErrInvalidEntity)
	}
	e := t.ids.create()
	t.ensure(e)
	*t.node(e) = noLinks
	t.node(e).alive = true
	t.appendChild(parent, e)
	t.count++
	tracer().Debugf("tree: created %s as child of %s", e, parent)
	return e, nil
}

// Destroy removes a single childless entity from the tree and retires its
// handle. Destroying a whole branch is done bottom-up by the caller, which
// usually has side tables to prune along the way.
func (t *Tree) Destroy(e Entity) error {
	if e == Root {
		return ErrRootRemoval
	}
	if !t.IsAlive(e) {
		return fmt.Errorf("destroy %s: %w", e, ErrInvalidEntity)
	}
	if t.node(e).firstChild != Null {
		return fmt.Errorf("destroy %s: %w", e, ErrHasChildren)
	}
	t.unlink(e)
	*t.node(e) = noLinks
	t.ids.destroy(e)
	t.count--
	return nil
}

// Reparent moves e (together with its subtree) to become the last child of
// parent.
func (t *Tree) Reparent(e, parent Entity) error {
	if e == Root {
		return ErrRootRemoval
	}
	if !t.IsAlive(e) || !t.IsAlive(parent) {
		return fmt.Errorf("reparent %s to %s: %w", e, parent, ErrInvalidEntity)
	}
	if e == parent || t.IsAncestorOf(e, parent) {
		return fmt.Errorf("reparent %s to %s: %w", e, parent, ErrCycle)
	}
	t.unlink(e)
	t.appendChild(parent, e)
	return nil
}

func (t *Tree) appendChild(parent, e Entity) {
	p, n := t.node(parent), t.node(e)
	n.parent = parent
	n.prev = p.lastChild
	n.next = Null
	if p.lastChild != Null {
		t.node(p.lastChild).next = e
	} else {
		p.firstChild = e
	}
	p.lastChild = e
}

func (t *Tree) unlink(e Entity) {
	n := t.node(e)
	if n.parent == Null {
		return
	}
	p := t.node(n.parent)
	if n.prev != Null {
		t.node(n.prev).next = n.next
	} else {
		p.firstChild = n.next
	}
	if n.next != Null {
		t.node(n.next).prev = n.prev
	} else {
		p.lastChild = n.prev
	}
	n.parent, n.prev, n.next = Null, Null, Null
}

// --- Structural relations --------------------------------------------------

// Parent returns the structural parent of e. The root has no parent.
func (t *Tree) Parent(e Entity) (Entity, bool) {
	if !t.IsAlive(e) {
		return Null, false
	}
	p := t.node(e).parent
	return p, p != Null
}

// FirstChild returns the first structural child of e.
func (t *Tree) FirstChild(e Entity) (Entity, bool) {
	if !t.IsAlive(e) {
		return Null, false
	}
	ch := t.node(e).firstChild
	return ch, ch != Null
}

// LastChild returns the last structural child of e.
func (t *Tree) LastChild(e Entity) (Entity, bool) {
	if !t.IsAlive(e) {
		return Null, false
	}
	ch := t.node(e).lastChild
	return ch, ch != Null
}

// NextSibling returns the next structural sibling of e.
func (t *Tree) NextSibling(e Entity) (Entity, bool) {
	if !t.IsAlive(e) {
		return Null, false
	}
	s := t.node(e).next
	return s, s != Null
}

// PrevSibling returns the previous structural sibling of e.
func (t *Tree) PrevSibling(e Entity) (Entity, bool) {
	if !t.IsAlive(e) {
		return Null, false
	}
	s := t.node(e).prev
	return s, s != Null
}

// HasChildren is true if e has at least one structural child.
func (t *Tree) HasChildren(e Entity) bool {
	return t.IsAlive(e) && t.node(e).firstChild != Null
}

// ChildCount returns the number of structural children of e.
func (t *Tree) ChildCount(e Entity) int {
	n := 0
	for ch, ok := t.FirstChild(e); ok; ch, ok = t.NextSibling(ch) {
		n++
	}
	return n
}

// Children returns a slice with all structural children of e, in order.
func (t *Tree) Children(e Entity) []Entity {
	var children []Entity
	for ch, ok := t.FirstChild(e); ok; ch, ok = t.NextSibling(ch) {
		children = append(children, ch)
	}
	return children
}

// IndexOfChild returns the position of e within the children of its parent,
// or -1 for the root and for dead entities.
func (t *Tree) IndexOfChild(e Entity) int {
	if !t.IsAlive(e) || t.node(e).parent == Null {
		return -1
	}
	i := 0
	for s := t.node(e).prev; s != Null; s = t.node(s).prev {
		i++
	}
	return i
}

// IsAncestorOf is true if a is a proper structural ancestor of e.
func (t *Tree) IsAncestorOf(a, e Entity) bool {
	if !t.IsAlive(e) {
		return false
	}
	for p := t.node(e).parent; p != Null; p = t.node(p).parent {
		if p == a {
			return true
		}
	}
	return false
}

// --- Layout relations ------------------------------------------------------

// SetTransparent flags e as a transparent wrapper node. Transparent nodes are
// skipped by the layout relations. The root cannot be transparent.
func (t *Tree) SetTransparent(e Entity, transparent bool) error {
	if e == Root {
		return ErrRootRemoval
	}
	if !t.IsAlive(e) {
		return fmt.Errorf("set transparent %s: %w", e, ErrInvalidEntity)
	}
	t.node(e).transparent = transparent
	return nil
}

// IsTransparent is true for transparent wrapper nodes.
func (t *Tree) IsTransparent(e Entity) bool {
	return t.IsAlive(e) && t.node(e).transparent
}

// LayoutParent returns the nearest non-transparent ancestor of e. Without
// transparent wrappers this is the structural parent.
func (t *Tree) LayoutParent(e Entity) (Entity, bool) {
	if !t.IsAlive(e) {
		return Null, false
	}
	p := t.node(e).parent
	for p != Null && t.node(p).transparent {
		p = t.node(p).parent
	}
	return p, p != Null
}

// NextLayoutSibling returns the next sibling of e in layout order, descending
// into transparent siblings and climbing out of transparent parents.
func (t *Tree) NextLayoutSibling(e Entity) (Entity, bool) {
	if !t.IsAlive(e) {
		return Null, false
	}
	for cur := e; ; {
		for s := t.node(cur).next; s != Null; s = t.node(s).next {
			if found := t.firstLayoutNode(s); found != Null {
				return found, true
			}
		}
		p := t.node(cur).parent
		if p == Null || !t.node(p).transparent {
			return Null, false
		}
		cur = p
	}
}

// PrevLayoutSibling is the mirror image of NextLayoutSibling.
func (t *Tree) PrevLayoutSibling(e Entity) (Entity, bool) {
	if !t.IsAlive(e) {
		return Null, false
	}
	for cur := e; ; {
		for s := t.node(cur).prev; s != Null; s = t.node(s).prev {
			if found := t.lastLayoutNode(s); found != Null {
				return found, true
			}
		}
		p := t.node(cur).parent
		if p == Null || !t.node(p).transparent {
			return Null, false
		}
		cur = p
	}
}

// firstLayoutNode returns n itself if it is not transparent, otherwise the
// first layout node among its descendants.
func (t *Tree) firstLayoutNode(n Entity) Entity {
	if !t.node(n).transparent {
		return n
	}
	for ch := t.node(n).firstChild; ch != Null; ch = t.node(ch).next {
		if found := t.firstLayoutNode(ch); found != Null {
			return found
		}
	}
	return Null
}

func (t *Tree) lastLayoutNode(n Entity) Entity {
	if !t.node(n).transparent {
		return n
	}
	for ch := t.node(n).lastChild; ch != Null; ch = t.node(ch).prev {
		if found := t.lastLayoutNode(ch); found != Null {
			return found
		}
	}
	return Null
}

// IsFirstLayoutChild is true if e has no previous layout sibling.
func (t *Tree) IsFirstLayoutChild(e Entity) bool {
	_, ok := t.PrevLayoutSibling(e)
	return !ok
}

// IsLastLayoutChild is true if e has no next layout sibling.
func (t *Tree) IsLastLayoutChild(e Entity) bool {
	_, ok := t.NextLayoutSibling(e)
	return !ok
}

// LayoutSiblings returns all layout children of the layout parent of e,
// including e itself, in layout order. The root has no siblings.
func (t *Tree) LayoutSiblings(e Entity) []Entity {
	if _, ok := t.LayoutParent(e); !ok {
		return nil
	}
	first := e
	for s, ok := t.PrevLayoutSibling(first); ok; s, ok = t.PrevLayoutSibling(first) {
		first = s
	}
	siblings := []Entity{first}
	for s, ok := t.NextLayoutSibling(first); ok; s, ok = t.NextLayoutSibling(s) {
		siblings = append(siblings, s)
	}
	return siblings
}
