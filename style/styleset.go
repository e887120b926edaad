package style

import (
	"github.com/npillmayer/restyle/tree"
)

// Tier tells where the resolved value of a property originates.
type Tier uint8

const (
	TierDefault         Tier = iota // no value present, catalog default applies
	TierInheritedShared             // copied from the layout parent, originating in a rule
	TierInheritedInline             // copied from the layout parent, originating in an inline value
	TierShared                      // set by the most specific matching rule
	TierInline                      // set directly on the entity
)

func (t Tier) String() string {
	switch t {
	case TierInheritedShared:
		return "inherited(shared)"
	case TierInheritedInline:
		return "inherited(inline)"
	case TierShared:
		return "shared"
	case TierInline:
		return "inline"
	}
	return "default"
}

// IsInlineSourced is true for values which ultimately stem from an inline
// value, either on the entity itself or on one of its ancestors.
func (t Tier) IsInlineSourced() bool {
	return t == TierInline || t == TierInheritedInline
}

type sharedValue struct {
	value Property
	rule  uint32
}

type inheritedValue struct {
	value Property
	tier  Tier
}

// StyleSet holds the values of a single property for all entities, in three
// sparse tiers. Resolution order is inline, shared, inherited.
type StyleSet struct {
	id        PropertyID
	inline    map[tree.Entity]Property
	shared    map[tree.Entity]sharedValue
	inherited map[tree.Entity]inheritedValue
}

// NewStyleSet creates an empty style set for a property.
func NewStyleSet(id PropertyID) *StyleSet {
	return &StyleSet{
		id:        id,
		inline:    make(map[tree.Entity]Property),
		shared:    make(map[tree.Entity]sharedValue),
		inherited: make(map[tree.Entity]inheritedValue),
	}
}

// Property returns the property this set is holding values for.
func (s *StyleSet) Property() PropertyID {
	return s.id
}

// Get returns the resolved value of an entity together with its tier. If no
// tier holds a value, Get returns false and the caller has to fall back to
// the default.
func (s *StyleSet) Get(e tree.Entity) (Property, Tier, bool) {
	if v, ok := s.inline[e]; ok {
		return v, TierInline, true
	}
	if v, ok := s.shared[e]; ok {
		return v.value, TierShared, true
	}
	if v, ok := s.inherited[e]; ok {
		return v.value, v.tier, true
	}
	return NullStyle, TierDefault, false
}

// Inline returns the inline value of an entity.
func (s *StyleSet) Inline(e tree.Entity) (Property, bool) {
	v, ok := s.inline[e]
	return v, ok
}

// Shared returns the shared value of an entity together with the rule which
// supplied it.
func (s *StyleSet) Shared(e tree.Entity) (Property, uint32, bool) {
	v, ok := s.shared[e]
	return v.value, v.rule, ok
}

// HasShared is true if a rule currently supplies a value for e.
func (s *StyleSet) HasShared(e tree.Entity) bool {
	_, ok := s.shared[e]
	return ok
}

// SetInline sets the inline value of e and returns true if the resolved
// value of e changed.
func (s *StyleSet) SetInline(e tree.Entity, v Property) bool {
	return s.tracking(e, func() { s.inline[e] = v })
}

// ClearInline removes the inline value of e and returns true if the resolved
// value of e changed.
func (s *StyleSet) ClearInline(e tree.Entity) bool {
	return s.tracking(e, func() { delete(s.inline, e) })
}

// SetShared links e to a value supplied by a rule. It returns true if the
// shared value changed. A change of the supplying rule alone does not count
// as a change.
func (s *StyleSet) SetShared(e tree.Entity, v Property, rule uint32) bool {
	old, had := s.shared[e]
	s.shared[e] = sharedValue{value: v, rule: rule}
	return !had || old.value != v
}

// ClearShared unlinks e from its shared value and returns true if there was
// one.
func (s *StyleSet) ClearShared(e tree.Entity) bool {
	_, had := s.shared[e]
	delete(s.shared, e)
	return had
}

// ClearAllShared unlinks every entity.
func (s *StyleSet) ClearAllShared() {
	clear(s.shared)
}

// InheritInline copies the resolved value of parent to e if that value is
// inline-sourced and e has no inline value of its own. An inline-sourced
// copy which is no longer backed by the parent is removed. Returns true if
// the resolved value of e changed.
func (s *StyleSet) InheritInline(e, parent tree.Entity) bool {
	if _, ok := s.inline[e]; ok {
		return false
	}
	return s.tracking(e, func() {
		pv, tier, ok := s.Get(parent)
		if ok && tier.IsInlineSourced() {
			s.inherited[e] = inheritedValue{value: pv, tier: TierInheritedInline}
		} else if old, had := s.inherited[e]; had && old.tier == TierInheritedInline {
			delete(s.inherited, e)
		}
	})
}

// InheritShared copies the resolved value of parent to e if e has neither
// an inline nor a shared value. The copy keeps track of whether it
// originates in an inline value. Returns true if the resolved value of e
// changed.
func (s *StyleSet) InheritShared(e, parent tree.Entity) bool {
	if _, ok := s.inline[e]; ok {
		return false
	}
	if _, ok := s.shared[e]; ok {
		return false
	}
	return s.tracking(e, func() {
		pv, tier, ok := s.Get(parent)
		if !ok {
			delete(s.inherited, e)
			return
		}
		t := TierInheritedShared
		if tier.IsInlineSourced() {
			t = TierInheritedInline
		}
		s.inherited[e] = inheritedValue{value: pv, tier: t}
	})
}

// Remove deletes every value of e.
func (s *StyleSet) Remove(e tree.Entity) {
	delete(s.inline, e)
	delete(s.shared, e)
	delete(s.inherited, e)
}

// Len returns the number of entities holding a value in any tier.
func (s *StyleSet) Len() int {
	n := len(s.inline)
	for e := range s.shared {
		if _, ok := s.inline[e]; !ok {
			n++
		}
	}
	for e := range s.inherited {
		_, i := s.inline[e]
		_, sh := s.shared[e]
		if !i && !sh {
			n++
		}
	}
	return n
}

// tracking runs an update of e and reports whether the resolved value of e
// differs afterwards.
func (s *StyleSet) tracking(e tree.Entity, update func()) bool {
	before, _, hadBefore := s.Get(e)
	update()
	after, _, hasAfter := s.Get(e)
	return hadBefore != hasAfter || before != after
}
