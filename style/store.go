package style

import (
	"slices"

	"github.com/npillmayer/restyle/style/selector"
	"github.com/npillmayer/restyle/tree"
)

// Store holds style state for all entities of a tree: one StyleSet per
// catalog property, plus the identity tables which selector matching
// consults (element kind, id, classes, pseudo-class flags).
//
// A Store is not safe for concurrent use.
type Store struct {
	sets     [NumProperties]*StyleSet
	defaults *Defaults
	kinds    map[tree.Entity]string
	ids      map[tree.Entity]string
	classes  map[tree.Entity]map[string]struct{}
	pseudo   map[tree.Entity]selector.PseudoClassFlags
}

// NewStore creates an empty store. If defaults is nil, the catalog defaults
// are used.
func NewStore(defaults *Defaults) *Store {
	if defaults == nil {
		defaults = NewDefaults()
	}
	st := &Store{
		defaults: defaults,
		kinds:    make(map[tree.Entity]string),
		ids:      make(map[tree.Entity]string),
		classes:  make(map[tree.Entity]map[string]struct{}),
		pseudo:   make(map[tree.Entity]selector.PseudoClassFlags),
	}
	for i := range st.sets {
		st.sets[i] = NewStyleSet(PropertyID(i))
	}
	return st
}

// Defaults returns the user-agent defaults of this store.
func (st *Store) Defaults() *Defaults {
	return st.defaults
}

// Set returns the style set of a property.
func (st *Store) Set(id PropertyID) *StyleSet {
	return st.sets[id]
}

// Resolve returns the resolved value of a property for e: inline, shared,
// inherited or, absent all of them, the default for the element kind of e.
func (st *Store) Resolve(e tree.Entity, id PropertyID) (Property, Tier) {
	if v, tier, ok := st.sets[id].Get(e); ok {
		return v, tier
	}
	return st.defaults.Get(id, st.kinds[e]), TierDefault
}

// IsDisabled returns the resolved disabled state of e.
func (st *Store) IsDisabled(e tree.Entity) bool {
	v, _ := st.Resolve(e, PDisabled)
	return v.IsTrue()
}

// HasLinkedShared is true if any property of e currently holds a shared
// value.
func (st *Store) HasLinkedShared(e tree.Entity) bool {
	for _, s := range st.sets {
		if s.HasShared(e) {
			return true
		}
	}
	return false
}

// ClearAllShared unlinks all shared values of all entities.
func (st *Store) ClearAllShared() {
	for _, s := range st.sets {
		s.ClearAllShared()
	}
}

// --- Identity tables -------------------------------------------------------

// SetKind sets the element kind of e, e.g. "button".
func (st *Store) SetKind(e tree.Entity, kind string) {
	if kind == "" {
		delete(st.kinds, e)
		return
	}
	st.kinds[e] = kind
}

// Kind returns the element kind of e, or "" if none is set.
func (st *Store) Kind(e tree.Entity) string {
	return st.kinds[e]
}

// SetID sets the id of e. Returns false if e already had this id.
func (st *Store) SetID(e tree.Entity, id string) bool {
	if old, ok := st.ids[e]; ok && old == id {
		return false
	}
	st.ids[e] = id
	return true
}

// ClearID removes the id of e. Returns false if e had no id.
func (st *Store) ClearID(e tree.Entity) bool {
	if _, ok := st.ids[e]; !ok {
		return false
	}
	delete(st.ids, e)
	return true
}

// ID returns the id of e.
func (st *Store) ID(e tree.Entity) (string, bool) {
	id, ok := st.ids[e]
	return id, ok
}

// AddClass adds a class to e. Returns false if e already had the class.
func (st *Store) AddClass(e tree.Entity, class string) bool {
	cs, ok := st.classes[e]
	if !ok {
		cs = make(map[string]struct{})
		st.classes[e] = cs
	}
	if _, has := cs[class]; has {
		return false
	}
	cs[class] = struct{}{}
	return true
}

// RemoveClass removes a class from e. Returns false if e did not have the
// class.
func (st *Store) RemoveClass(e tree.Entity, class string) bool {
	cs, ok := st.classes[e]
	if !ok {
		return false
	}
	if _, has := cs[class]; !has {
		return false
	}
	delete(cs, class)
	if len(cs) == 0 {
		delete(st.classes, e)
	}
	return true
}

// HasClass checks class membership of e.
func (st *Store) HasClass(e tree.Entity, class string) bool {
	_, ok := st.classes[e][class]
	return ok
}

// Classes returns the classes of e, sorted.
func (st *Store) Classes(e tree.Entity) []string {
	cs := st.classes[e]
	if len(cs) == 0 {
		return nil
	}
	r := make([]string, 0, len(cs))
	for c := range cs {
		r = append(r, c)
	}
	slices.Sort(r)
	return r
}

// SameClasses is true if a and b have equal class sets.
func (st *Store) SameClasses(a, b tree.Entity) bool {
	ca, cb := st.classes[a], st.classes[b]
	if len(ca) != len(cb) {
		return false
	}
	for c := range ca {
		if _, ok := cb[c]; !ok {
			return false
		}
	}
	return true
}

// PseudoClasses returns the pseudo-class flags of e.
func (st *Store) PseudoClasses(e tree.Entity) selector.PseudoClassFlags {
	return st.pseudo[e]
}

// SetPseudoClass switches pseudo-class flags of e on or off. Returns true if
// the flags of e changed.
func (st *Store) SetPseudoClass(e tree.Entity, flags selector.PseudoClassFlags, on bool) bool {
	old := st.pseudo[e]
	f := old &^ flags
	if on {
		f = old | flags
	}
	if f == 0 {
		delete(st.pseudo, e)
	} else {
		st.pseudo[e] = f
	}
	return f != old
}

// Remove deletes every trace of e from the store.
func (st *Store) Remove(e tree.Entity) {
	for _, s := range st.sets {
		s.Remove(e)
	}
	delete(st.kinds, e)
	delete(st.ids, e)
	delete(st.classes, e)
	delete(st.pseudo, e)
}

// Holds is true if any table of the store still references e.
func (st *Store) Holds(e tree.Entity) bool {
	for _, s := range st.sets {
		if _, _, ok := s.Get(e); ok {
			return true
		}
	}
	_, k := st.kinds[e]
	_, i := st.ids[e]
	_, c := st.classes[e]
	_, p := st.pseudo[e]
	return k || i || c || p
}
