package engine

import (
	"fmt"

	"github.com/npillmayer/restyle/style/cssom"
	"github.com/npillmayer/restyle/tree"
)

// Restyle runs a restyle pass, bringing the resolved properties of all
// entities marked for restyle up to date. See package documentation.
//
// If matching fails, the pass is aborted and the entities not yet visited
// stay marked. Matching can only fail for selectors the matcher does not
// support, which SetRuleSet rejects beforehand.
func (cx *Context) Restyle() (Report, error) {
	var rep Report
	cx.dirty.raised = raisedEffects{}
	defer func() { cx.phase = Idle }()
	//
	cx.phase = InlineInheriting
	cx.inheritInline()
	if len(cx.dirty.restyle) == 0 {
		tracer().Debugf("restyle: nothing to match")
		return cx.finishReport(rep), nil
	}
	//
	cx.phase = Matching
	snapshot := cx.dirty.snapshot()
	tracer().Debugf("restyle: matching %d entities", len(snapshot))
	if err := cx.matchAndLink(snapshot, &rep); err != nil {
		for e := range snapshot {
			cx.dirty.markRestyle(e)
		}
		tracer().Errorf("restyle aborted: %v", err)
		return cx.finishReport(rep), err
	}
	//
	cx.phase = SharedInheriting
	cx.inheritShared()
	rep = cx.finishReport(rep)
	tracer().Debugf("restyle: %s", rep)
	return rep, nil
}

// matchAndLink visits the entities of the snapshot in breadth-first order.
// Entities are removed from the snapshot once they are done.
func (cx *Context) matchAndLink(snapshot map[tree.Entity]struct{}, rep *Report) error {
	var (
		allRules        = cx.rules.Rules()
		structuralRules = cx.rules.Structural()
		prevParent      = tree.Null
		first           = true
	)
	cx.cache.reset(tree.Null)
	for e := range cx.tree.BreadthFirst() {
		if _, ok := snapshot[e]; !ok {
			continue
		}
		delete(snapshot, e)
		rep.Visited++
		parent, _ := cx.tree.LayoutParent(e)
		// first and last children open a new group
		eligible := !first && parent == prevParent &&
			!cx.tree.IsFirstLayoutChild(e) && !cx.tree.IsLastLayoutChild(e)
		if !eligible {
			cx.cache.reset(parent)
		}
		first, prevParent = false, parent
		//
		sh := cx.shapeOf(e)
		var matched, shareable []matchedRule
		var err error
		cached, hit := []matchedRule(nil), false
		if eligible {
			cached, hit = cx.cache.lookup(cx, sh)
		}
		if hit {
			rep.CacheHits++
			shareable = cached
			var positional []matchedRule
			if positional, err = cx.matchRules(e, structuralRules); err != nil {
				snapshot[e] = struct{}{}
				return err
			}
			matched = append(append(make([]matchedRule, 0, len(cached)+len(positional)), cached...), positional...)
			sortMatched(matched)
		} else {
			rep.FullMatches++
			if matched, err = cx.matchRules(e, allRules); err != nil {
				snapshot[e] = struct{}{}
				return err
			}
			shareable = cx.withoutStructural(matched)
		}
		cx.cache.push(sh, shareable)
		//
		if len(matched) == 0 && !cx.store.HasLinkedShared(e) {
			continue
		}
		cx.link(e, matched)
	}
	return nil
}

// matchRules computes the matched-rule list of e for a set of rules, sorted
// by priority.
func (cx *Context) matchRules(e tree.Entity, rules []*cssom.StyleRule) ([]matchedRule, error) {
	n := node{cx: cx, e: e}
	var matched []matchedRule
	for _, r := range rules {
		ok, spec, err := r.Selectors.MatchWithSpecificity(n)
		if err != nil {
			return nil, fmt.Errorf("matching rule #%d against %s: %w", r.ID, e, err)
		}
		if ok {
			matched = append(matched, matchedRule{id: r.ID, spec: specKey(spec)})
		}
	}
	sortMatched(matched)
	return matched, nil
}

func (cx *Context) withoutStructural(matched []matchedRule) []matchedRule {
	if len(cx.rules.Structural()) == 0 {
		return matched
	}
	shareable := make([]matchedRule, 0, len(matched))
	for _, m := range matched {
		if !cx.rules.IsStructural(m.id) {
			shareable = append(shareable, m)
		}
	}
	return shareable
}

func (cx *Context) finishReport(rep Report) Report {
	rep.Relayout = cx.dirty.raised.relayout
	rep.Redraws = cx.dirty.raised.redraws
	rep.Reflows = cx.dirty.raised.reflows
	return rep
}
