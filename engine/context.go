package engine

import (
	"fmt"

	"github.com/npillmayer/restyle/style"
	"github.com/npillmayer/restyle/style/cssom"
	"github.com/npillmayer/restyle/tree"
)

// Phase is the state of the restyle driver.
type Phase uint8

const (
	Idle Phase = iota
	InlineInheriting
	Matching
	SharedInheriting
)

func (p Phase) String() string {
	switch p {
	case InlineInheriting:
		return "inline-inheriting"
	case Matching:
		return "matching"
	case SharedInheriting:
		return "shared-inheriting"
	}
	return "idle"
}

// Context owns all state of the styling engine: the entity tree, the
// property store, the rule set, model data and subscriptions, and the dirty
// sets which connect mutations to restyle passes.
type Context struct {
	config    Config
	tree      *tree.Tree
	store     *style.Store
	rules     *cssom.RuleSet
	cache     *matchCache
	dirty     dirtySets
	data      map[tree.Entity]map[any]any
	observers map[tree.Entity]map[tree.Entity]struct{} // observed → observers
	phase     Phase
}

// New creates a context with a tree consisting of the root entity only, and
// an empty rule set.
func New(cfg Config) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	defaults, err := cfg.defaults()
	if err != nil {
		return nil, err
	}
	cx := &Context{
		config:    cfg,
		tree:      tree.New(),
		store:     style.NewStore(defaults),
		rules:     cssom.NewRuleSet(),
		cache:     newMatchCache(cfg.MatchCacheCapacity),
		dirty:     newDirtySets(),
		data:      make(map[tree.Entity]map[any]any),
		observers: make(map[tree.Entity]map[tree.Entity]struct{}),
	}
	cx.dirty.markRestyle(tree.Root)
	return cx, nil
}

// Tree gives read access to the entity tree. Clients must not modify the
// tree directly, but use the mutation methods of the context.
func (cx *Context) Tree() *tree.Tree {
	return cx.tree
}

// Store gives read access to the property store.
func (cx *Context) Store() *style.Store {
	return cx.store
}

// RuleSet returns the current rule set.
func (cx *Context) RuleSet() *cssom.RuleSet {
	return cx.rules
}

// Phase returns the current state of the restyle driver.
func (cx *Context) Phase() Phase {
	return cx.phase
}

// Config returns the configuration of the context.
func (cx *Context) Config() Config {
	return cx.config
}

func (cx *Context) check(e tree.Entity) error {
	if !cx.tree.IsAlive(e) {
		return fmt.Errorf("%w: %s", ErrMissingEntity, e)
	}
	return nil
}

// --- Outputs ---------------------------------------------------------------

// NeedsRelayout is true if a property change since the last call to
// ClearRelayout requires a new layout.
func (cx *Context) NeedsRelayout() bool {
	return cx.dirty.relayout
}

// ClearRelayout resets the relayout flag.
func (cx *Context) ClearRelayout() {
	cx.dirty.relayout = false
}

// TakeRedraw returns the entities which need to be redrawn, in the order
// they were marked, and empties the redraw list.
func (cx *Context) TakeRedraw() []tree.Entity {
	return cx.dirty.redraw.take()
}

// TakeTextUpdates returns the entities whose text has to be reflowed, and
// empties the set.
func (cx *Context) TakeTextUpdates() []tree.Entity {
	return cx.dirty.text.take()
}

// NeedsRestyle is true if e is marked for the next restyle pass.
func (cx *Context) NeedsRestyle(e tree.Entity) bool {
	_, ok := cx.dirty.restyle[e]
	return ok
}

// PendingRestyles returns the number of entities marked for restyle.
func (cx *Context) PendingRestyles() int {
	return len(cx.dirty.restyle)
}

// --- Dirty sets ------------------------------------------------------------

// entityList is an ordered set of entities.
type entityList struct {
	order []tree.Entity
	seen  map[tree.Entity]struct{}
}

func (l *entityList) add(e tree.Entity) bool {
	if _, ok := l.seen[e]; ok {
		return false
	}
	l.seen[e] = struct{}{}
	l.order = append(l.order, e)
	return true
}

func (l *entityList) remove(e tree.Entity) {
	if _, ok := l.seen[e]; !ok {
		return
	}
	delete(l.seen, e)
	for i, x := range l.order {
		if x == e {
			l.order = append(l.order[:i], l.order[i+1:]...)
			return
		}
	}
}

func (l *entityList) take() []tree.Entity {
	r := l.order
	l.order = nil
	clear(l.seen)
	return r
}

func (l *entityList) contains(e tree.Entity) bool {
	_, ok := l.seen[e]
	return ok
}

type dirtySets struct {
	restyle  map[tree.Entity]struct{}
	relayout bool
	redraw   entityList
	text     entityList
	raised   raisedEffects
}

// raisedEffects counts the effects raised during the current pass.
type raisedEffects struct {
	relayout bool
	redraws  int
	reflows  int
}

func newDirtySets() dirtySets {
	return dirtySets{
		restyle: make(map[tree.Entity]struct{}),
		redraw:  entityList{seen: make(map[tree.Entity]struct{})},
		text:    entityList{seen: make(map[tree.Entity]struct{})},
	}
}

func (d *dirtySets) markRestyle(e tree.Entity) {
	d.restyle[e] = struct{}{}
}

func (d *dirtySets) markRelayout() {
	d.relayout = true
	d.raised.relayout = true
}

func (d *dirtySets) markRedraw(e tree.Entity) {
	if d.redraw.add(e) {
		d.raised.redraws++
	}
}

func (d *dirtySets) markText(e tree.Entity) {
	if d.text.add(e) {
		d.raised.reflows++
	}
}

// snapshot freezes the restyle set for a pass and starts a fresh one.
func (d *dirtySets) snapshot() map[tree.Entity]struct{} {
	s := d.restyle
	d.restyle = make(map[tree.Entity]struct{})
	return s
}

func (d *dirtySets) remove(e tree.Entity) {
	delete(d.restyle, e)
	d.redraw.remove(e)
	d.text.remove(e)
}

func (d *dirtySets) holds(e tree.Entity) bool {
	_, r := d.restyle[e]
	return r || d.redraw.contains(e) || d.text.contains(e)
}
