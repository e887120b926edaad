package engine

import (
	"slices"

	"github.com/npillmayer/restyle/maybe"
	"github.com/npillmayer/restyle/tree"
)

// Key is a typed key for model data attached to entities. Keys with equal
// names but different types do not collide.
//
//	var ThemeKey = engine.NewKey[Theme]("theme")
type Key[T any] struct {
	name string
}

// NewKey creates a key for model data of type T.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

func (k Key[T]) String() string {
	return k.name
}

// SetData attaches a value to e and notifies the observers of e.
func SetData[T any](cx *Context, e tree.Entity, key Key[T], value T) error {
	if err := cx.check(e); err != nil {
		return err
	}
	m, ok := cx.data[e]
	if !ok {
		m = make(map[any]any)
		cx.data[e] = m
	}
	m[key] = value
	cx.Notify(e)
	return nil
}

// ClearData removes a value from e and notifies the observers of e.
func ClearData[T any](cx *Context, e tree.Entity, key Key[T]) {
	m, ok := cx.data[e]
	if !ok {
		return
	}
	if _, has := m[key]; !has {
		return
	}
	delete(m, key)
	if len(m) == 0 {
		delete(cx.data, e)
	}
	cx.Notify(e)
}

// Data looks up model data for e. If e has no value for key, the lookup
// walks up the ancestor chain.
func Data[T any](cx *Context, e tree.Entity, key Key[T]) maybe.Maybe[T] {
	if !cx.tree.IsAlive(e) {
		return maybe.Nothing[T]()
	}
	for a, ok := e, true; ok; a, ok = cx.tree.Parent(a) {
		if v, has := cx.data[a][key]; has {
			return maybe.Just(v.(T))
		}
	}
	return maybe.Nothing[T]()
}

// --- Subscriptions ---------------------------------------------------------

// Observe subscribes observer to changes of observed. Observers are marked
// for restyle whenever observed is notified.
func (cx *Context) Observe(observer, observed tree.Entity) error {
	if err := cx.check(observer); err != nil {
		return err
	}
	if err := cx.check(observed); err != nil {
		return err
	}
	obs, ok := cx.observers[observed]
	if !ok {
		obs = make(map[tree.Entity]struct{})
		cx.observers[observed] = obs
	}
	obs[observer] = struct{}{}
	return nil
}

// Unobserve cancels a subscription.
func (cx *Context) Unobserve(observer, observed tree.Entity) {
	if obs, ok := cx.observers[observed]; ok {
		delete(obs, observer)
		if len(obs) == 0 {
			delete(cx.observers, observed)
		}
	}
}

// Notify marks all observers of observed for restyle and returns their
// number.
func (cx *Context) Notify(observed tree.Entity) int {
	obs := cx.observers[observed]
	for o := range obs {
		cx.dirty.markRestyle(o)
	}
	return len(obs)
}

// Observers returns the observers of an entity, in no particular order.
func (cx *Context) Observers(observed tree.Entity) []tree.Entity {
	obs := cx.observers[observed]
	r := make([]tree.Entity, 0, len(obs))
	for o := range obs {
		r = append(r, o)
	}
	slices.Sort(r)
	return r
}

// dropSubscriptions removes e both as observed and as observer.
func (cx *Context) dropSubscriptions(e tree.Entity) {
	delete(cx.observers, e)
	for observed, obs := range cx.observers {
		delete(obs, e)
		if len(obs) == 0 {
			delete(cx.observers, observed)
		}
	}
}

// holds is true if any side table of the context references e.
func (cx *Context) holds(e tree.Entity) bool {
	if cx.store.Holds(e) || cx.dirty.holds(e) {
		return true
	}
	if _, ok := cx.data[e]; ok {
		return true
	}
	for observed, obs := range cx.observers {
		if observed == e {
			return true
		}
		if _, ok := obs[e]; ok {
			return true
		}
	}
	return false
}
