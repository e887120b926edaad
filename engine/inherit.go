package engine

import (
	"slices"

	"github.com/npillmayer/restyle/style"
)

var (
	// text family: changes require text reflow
	textInherited = style.Inherited(style.InheritsText)
	// caret and selection colors plus the disabled state
	stateInherited = style.Inherited(style.InheritsState)
	// shared inheritance leaves out the disabled state, no rule may set it
	sharedStateInherited = slices.DeleteFunc(slices.Clone(stateInherited), func(id style.PropertyID) bool {
		return !id.Describe().Linkable
	})
)

// inheritInline propagates inline-sourced values of inherited properties
// down the tree, along layout parents.
func (cx *Context) inheritInline() {
	for e := range cx.tree.PreOrder() {
		parent, ok := cx.tree.LayoutParent(e)
		if !ok {
			continue
		}
		for _, id := range stateInherited {
			if cx.store.Set(id).InheritInline(e, parent) {
				cx.dirty.markRedraw(e)
				if id == style.PDisabled {
					cx.dirty.markRestyle(e) // :disabled may match differently
				}
			}
		}
		for _, id := range textInherited {
			if cx.store.Set(id).InheritInline(e, parent) {
				cx.dirty.markRedraw(e)
				cx.dirty.markText(e)
			}
		}
	}
}

// inheritShared propagates resolved values of inherited properties to
// entities which have neither an inline nor a shared value.
func (cx *Context) inheritShared() {
	for e := range cx.tree.PreOrder() {
		parent, ok := cx.tree.LayoutParent(e)
		if !ok {
			continue
		}
		for _, id := range sharedStateInherited {
			if cx.store.Set(id).InheritShared(e, parent) {
				cx.dirty.markRedraw(e)
			}
		}
		for _, id := range textInherited {
			if cx.store.Set(id).InheritShared(e, parent) {
				cx.dirty.markRedraw(e)
				cx.dirty.markText(e)
			}
		}
	}
}
