package engine

import (
	"slices"

	"github.com/npillmayer/restyle/style/cssom"
	"github.com/npillmayer/restyle/style/selector"
	"github.com/npillmayer/restyle/tree"
)

// matchedRule is an entry of a matched-rule list.
type matchedRule struct {
	id   cssom.RuleID
	spec uint32 // packed specificity of the most specific matching selector
}

// sortMatched orders a matched-rule list by descending specificity. Ties go
// to the rule declared later.
func sortMatched(list []matchedRule) {
	slices.SortFunc(list, func(a, b matchedRule) int {
		switch {
		case a.spec != b.spec:
			if a.spec > b.spec {
				return -1
			}
			return 1
		case a.id > b.id:
			return -1
		case a.id < b.id:
			return 1
		}
		return 0
	})
}

// shape is what two siblings need to have in common to match the same
// non-structural rules.
type shape struct {
	e        tree.Entity // for comparing class sets
	kind     string
	id       string
	hasID    bool
	pseudo   selector.PseudoClassFlags
	disabled bool
}

func (cx *Context) shapeOf(e tree.Entity) shape {
	id, hasID := cx.store.ID(e)
	return shape{
		e:        e,
		kind:     cx.store.Kind(e),
		id:       id,
		hasID:    hasID,
		pseudo:   cx.store.PseudoClasses(e),
		disabled: cx.store.IsDisabled(e),
	}
}

func (cx *Context) sameShape(a, b shape) bool {
	return a.kind == b.kind && a.hasID == b.hasID && a.id == b.id &&
		a.pseudo == b.pseudo && a.disabled == b.disabled &&
		cx.store.SameClasses(a.e, b.e)
}

type cacheEntry struct {
	shape   shape
	matched []matchedRule // without structural rules
}

// matchCache remembers matched-rule lists of the siblings visited last. It
// is scoped to a single restyle pass and to a single group of siblings; it
// holds a bounded number of entries and evicts the oldest first.
type matchCache struct {
	parent   tree.Entity
	entries  []cacheEntry
	capacity int
}

func newMatchCache(capacity int) *matchCache {
	return &matchCache{parent: tree.Null, capacity: capacity}
}

// reset clears the cache and scopes it to a new sibling group.
func (c *matchCache) reset(parent tree.Entity) {
	c.parent = parent
	c.entries = c.entries[:0]
}

func (c *matchCache) lookup(cx *Context, s shape) ([]matchedRule, bool) {
	for i := len(c.entries) - 1; i >= 0; i-- {
		if cx.sameShape(c.entries[i].shape, s) {
			return c.entries[i].matched, true
		}
	}
	return nil, false
}

func (c *matchCache) push(s shape, matched []matchedRule) {
	if len(c.entries) >= c.capacity {
		c.entries = slices.Delete(c.entries, 0, 1)
	}
	c.entries = append(c.entries, cacheEntry{shape: s, matched: matched})
}

func (c *matchCache) len() int {
	return len(c.entries)
}
