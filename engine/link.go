package engine

import (
	"github.com/npillmayer/restyle/style"
	"github.com/npillmayer/restyle/style/css"
	"github.com/npillmayer/restyle/style/cssom"
	"github.com/npillmayer/restyle/tree"
)

var linkable = style.Linkable()

// link sets the shared tier of every linkable property of e from a matched
// rule list, sorted by priority. For each property the first rule declaring
// it wins; properties no rule declares are unlinked. Returns the effects of
// changed shared values.
func (cx *Context) link(e tree.Entity, matched []matchedRule) (relayout, redraw, reflow bool) {
	rules := make([]*cssom.StyleRule, 0, len(matched))
	for _, m := range matched {
		if r, ok := cx.rules.Rule(m.id); ok {
			rules = append(rules, r)
		}
	}
	var effect style.Effect
	for _, id := range linkable {
		set := cx.store.Set(id)
		changed, found := false, false
		for _, r := range rules {
			if v, ok := r.Value(id); ok {
				changed = set.SetShared(e, v, uint32(r.ID))
				found = true
				break
			}
		}
		if !found {
			changed = set.ClearShared(e)
		}
		if changed {
			effect |= id.Effect()
		}
	}
	cx.applyEffect(e, effect)
	return effect&style.Relayout != 0, effect&style.Redraw != 0, effect&style.Reflow != 0
}

// applyEffect raises the dirty flags for a change of properties of e.
func (cx *Context) applyEffect(e tree.Entity, effect style.Effect) {
	if effect&style.Relayout != 0 {
		cx.dirty.markRelayout()
	}
	if effect&style.Redraw != 0 {
		cx.dirty.markRedraw(e)
	}
	if effect&style.Reflow != 0 {
		cx.markReflow(e)
	}
}

// markReflow marks the text of e for reflow. Text is laid out by the nearest
// displayed layout ancestor, so the mark goes to it. The root marks itself.
func (cx *Context) markReflow(e tree.Entity) {
	if e == tree.Root {
		cx.dirty.markText(e)
		return
	}
	for a := range cx.tree.LayoutAncestors(e) {
		if !cx.isDisplayNone(a) {
			cx.dirty.markText(a)
			return
		}
	}
}

func (cx *Context) isDisplayNone(e tree.Entity) bool {
	v, _ := cx.store.Resolve(e, style.PDisplay)
	d, err := css.ParseDisplay(v)
	return err == nil && d.IsNone()
}
