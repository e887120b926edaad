package engine

import (
	"errors"
	"fmt"
	"slices"

	"github.com/npillmayer/restyle/style"
	"github.com/npillmayer/restyle/style/cssom"
	"github.com/npillmayer/restyle/style/selector"
	"github.com/npillmayer/restyle/tree"
)

// --- Tree structure --------------------------------------------------------

// Add creates a new entity of a given element kind as the last child of
// parent.
func (cx *Context) Add(parent tree.Entity, kind string) (tree.Entity, error) {
	e, err := cx.tree.Create(parent)
	if err != nil {
		return tree.Null, fmt.Errorf("%w: %v", ErrMissingEntity, err)
	}
	cx.store.SetKind(e, kind)
	cx.dirty.markRestyle(e)
	cx.markSiblings(e)
	cx.markEmptiness(e)
	cx.dirty.markRelayout()
	return e, nil
}

// Remove removes e together with its subtree. Every trace of the removed
// entities is pruned: style values, identity tables, dirty sets, model data
// and subscriptions.
func (cx *Context) Remove(e tree.Entity) error {
	if e == tree.Root {
		return tree.ErrRootRemoval
	}
	if err := cx.check(e); err != nil {
		return err
	}
	siblings := cx.tree.LayoutSiblings(e)
	parent, _ := cx.tree.LayoutParent(e)
	cx.markEmptiness(e)
	branch := tree.Collect(cx.tree.Branch(e))
	for _, x := range slices.Backward(branch) { // children before parents
		cx.store.Remove(x)
		cx.dirty.remove(x)
		delete(cx.data, x)
		cx.dropSubscriptions(x)
		if err := cx.tree.Destroy(x); err != nil {
			panic(fmt.Sprintf("inconsistent tree while removing %s: %v", x, err))
		}
	}
	tracer().Debugf("removed %d entities with branch %s", len(branch), e)
	if cx.rules.HasSiblingSelectors() {
		for _, s := range siblings {
			if cx.tree.IsAlive(s) { // siblings may include children of a transparent e
				cx.dirty.markRestyle(s)
			}
		}
	}
	cx.dirty.markRelayout()
	cx.dirty.markRedraw(parent)
	return nil
}

// Reparent moves e and its subtree to become the last child of parent.
func (cx *Context) Reparent(e, parent tree.Entity) error {
	if err := cx.check(e); err != nil {
		return err
	}
	cx.markSiblings(e)
	cx.markEmptiness(e)
	if err := cx.tree.Reparent(e, parent); err != nil {
		if errors.Is(err, tree.ErrInvalidEntity) {
			return fmt.Errorf("%w: %v", ErrMissingEntity, err)
		}
		return err
	}
	cx.markBranch(e)
	cx.markSiblings(e)
	cx.markEmptiness(e)
	cx.dirty.markRelayout()
	return nil
}

// SetTransparent makes e a wrapper node which is invisible to layout
// relations, or reverts this.
func (cx *Context) SetTransparent(e tree.Entity, transparent bool) error {
	if err := cx.check(e); err != nil {
		return err
	}
	if cx.tree.IsTransparent(e) == transparent {
		return nil
	}
	if err := cx.tree.SetTransparent(e, transparent); err != nil {
		return err
	}
	cx.markBranch(e)
	for _, s := range cx.tree.LayoutSiblings(e) {
		cx.markBranch(s)
	}
	cx.dirty.markRelayout()
	return nil
}

// --- Identity --------------------------------------------------------------

// SetElementKind changes the element kind of e.
func (cx *Context) SetElementKind(e tree.Entity, kind string) error {
	if err := cx.check(e); err != nil {
		return err
	}
	if cx.store.Kind(e) != kind {
		cx.store.SetKind(e, kind)
		cx.markChanged(e)
	}
	return nil
}

// AddClass adds a class to e.
func (cx *Context) AddClass(e tree.Entity, class string) error {
	if err := cx.check(e); err != nil {
		return err
	}
	if cx.store.AddClass(e, class) {
		cx.markChanged(e)
	}
	return nil
}

// RemoveClass removes a class from e.
func (cx *Context) RemoveClass(e tree.Entity, class string) error {
	if err := cx.check(e); err != nil {
		return err
	}
	if cx.store.RemoveClass(e, class) {
		cx.markChanged(e)
	}
	return nil
}

// ToggleClass adds a class to e or removes it, depending on on.
func (cx *Context) ToggleClass(e tree.Entity, class string, on bool) error {
	if on {
		return cx.AddClass(e, class)
	}
	return cx.RemoveClass(e, class)
}

// SetID sets the id of e.
func (cx *Context) SetID(e tree.Entity, id string) error {
	if err := cx.check(e); err != nil {
		return err
	}
	if cx.store.SetID(e, id) {
		cx.markChanged(e)
	}
	return nil
}

// ClearID removes the id of e.
func (cx *Context) ClearID(e tree.Entity) error {
	if err := cx.check(e); err != nil {
		return err
	}
	if cx.store.ClearID(e) {
		cx.markChanged(e)
	}
	return nil
}

// SetPseudoClass switches state pseudo-classes of e on or off, e.g.
//
//	cx.SetPseudoClass(button, selector.Hover|selector.Active, true)
func (cx *Context) SetPseudoClass(e tree.Entity, flags selector.PseudoClassFlags, on bool) error {
	if err := cx.check(e); err != nil {
		return err
	}
	if cx.store.SetPseudoClass(e, flags, on) {
		cx.markChanged(e)
	}
	return nil
}

// SetDisabled disables e and, by inheritance, its subtree. Enabling removes
// the flag from e; e stays disabled if an ancestor is disabled.
func (cx *Context) SetDisabled(e tree.Entity, disabled bool) error {
	if disabled {
		return cx.SetInline(e, style.PDisabled, "true")
	}
	return cx.ClearInline(e, style.PDisabled)
}

// --- Inline properties -----------------------------------------------------

// SetInline sets an inline value for a property of e. Inline values take
// precedence over values from rules.
func (cx *Context) SetInline(e tree.Entity, id style.PropertyID, value style.Property) error {
	if err := cx.check(e); err != nil {
		return err
	}
	if cx.store.Set(id).SetInline(e, value) {
		cx.applyEffect(e, id.Effect())
	}
	cx.dirty.markRestyle(e)
	return nil
}

// ClearInline removes the inline value for a property of e.
func (cx *Context) ClearInline(e tree.Entity, id style.PropertyID) error {
	if err := cx.check(e); err != nil {
		return err
	}
	if cx.store.Set(id).ClearInline(e) {
		cx.applyEffect(e, id.Effect())
	}
	cx.dirty.markRestyle(e)
	return nil
}

// SetInlineByKey sets an inline value for a property given by its key, e.g.
// "font-size". Shorthand properties are expanded.
func (cx *Context) SetInlineByKey(e tree.Entity, key string, value style.Property) error {
	kvs := []style.KeyValue{{Key: key, Value: value}}
	if style.IsCompound(key) {
		var err error
		if kvs, err = style.SplitCompoundProperty(key, value); err != nil {
			return err
		}
	}
	for _, kv := range kvs {
		id, ok := style.Lookup(kv.Key)
		if !ok {
			return fmt.Errorf("%w: %s", cssom.ErrUnknownProperty, kv.Key)
		}
		if err := cx.SetInline(e, id, kv.Value); err != nil {
			return err
		}
	}
	return nil
}

// --- Rules -----------------------------------------------------------------

// SetRuleSet replaces the rule set. A rule set which does not validate is
// rejected and the previous rule set stays in effect. Otherwise all shared
// values are unlinked and the whole tree is marked for restyle.
func (cx *Context) SetRuleSet(rs *cssom.RuleSet) error {
	if rs == nil {
		rs = cssom.NewRuleSet()
	}
	if err := rs.Validate(); err != nil {
		tracer().Errorf("rule set rejected: %v", err)
		return fmt.Errorf("cannot apply rule set: %w", err)
	}
	cx.rules = rs
	cx.store.ClearAllShared()
	for e := range cx.tree.PreOrder() {
		cx.dirty.markRestyle(e)
	}
	tracer().Debugf("rule set with %d rules applied", rs.Len())
	return nil
}

// --- Marking ---------------------------------------------------------------

// markChanged marks e after a change of its identity. Depending on the
// rule set, descendants and siblings may be affected as well.
func (cx *Context) markChanged(e tree.Entity) {
	cx.dirty.markRestyle(e)
	if cx.rules.HasHierarchy() {
		cx.markBranch(e)
	}
	cx.markSiblings(e)
}

func (cx *Context) markBranch(e tree.Entity) {
	for x := range cx.tree.Branch(e) {
		cx.dirty.markRestyle(x)
	}
}

// markSiblings marks the layout siblings of e if the rule set has selectors
// depending on siblings.
func (cx *Context) markSiblings(e tree.Entity) {
	if !cx.rules.HasSiblingSelectors() {
		return
	}
	for _, s := range cx.tree.LayoutSiblings(e) {
		cx.dirty.markRestyle(s)
		if cx.rules.HasHierarchy() {
			cx.markBranch(s)
		}
	}
}

// markEmptiness marks the parent of e if structural rules exist, as its
// children are about to change (:empty).
func (cx *Context) markEmptiness(e tree.Entity) {
	if len(cx.rules.Structural()) == 0 {
		return
	}
	if p, ok := cx.tree.Parent(e); ok {
		cx.dirty.markRestyle(p)
	}
	if p, ok := cx.tree.LayoutParent(e); ok {
		cx.dirty.markRestyle(p)
	}
}
