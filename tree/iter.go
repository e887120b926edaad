package tree

import "iter"

// BreadthFirst iterates over all entities of the tree in breadth-first
// structural order, starting at the root. Children are visited in child order.
//
// The tree must not be modified while the iteration is running.
func (t *Tree) BreadthFirst() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		queue := []Entity{Root}
		for len(queue) > 0 {
			e := queue[0]
			queue = queue[1:]
			if !yield(e) {
				return
			}
			for ch := t.node(e).firstChild; ch != Null; ch = t.node(ch).next {
				queue = append(queue, ch)
			}
		}
	}
}

// PreOrder iterates over all entities in depth-first pre-order, i.e. every
// parent is visited before its children.
func (t *Tree) PreOrder() iter.Seq[Entity] {
	return t.Branch(Root)
}

// Branch iterates over e and all of its descendants in pre-order.
func (t *Tree) Branch(e Entity) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		if !t.IsAlive(e) {
			return
		}
		stack := []Entity{e}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			for ch := t.node(n).lastChild; ch != Null; ch = t.node(ch).prev {
				stack = append(stack, ch)
			}
		}
	}
}

// LayoutAncestors iterates over the chain of layout parents of e, starting
// with the layout parent of e and ending at the root.
func (t *Tree) LayoutAncestors(e Entity) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for p, ok := t.LayoutParent(e); ok; p, ok = t.LayoutParent(p) {
			if !yield(p) {
				return
			}
		}
	}
}

// Collect returns the entities of a sequence as a slice.
func Collect(seq iter.Seq[Entity]) []Entity {
	var entities []Entity
	for e := range seq {
		entities = append(entities, e)
	}
	return entities
}
