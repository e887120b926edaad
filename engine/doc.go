/*
Package engine implements incremental style resolution for a retained-mode
UI tree.

Overview

A Context owns an entity tree, a property store, a rule set, a model data
store and a table of subscriptions. Clients mutate the tree and the
identity of entities (element kind, id, classes, pseudo-classes, disabled
state, inline properties); every mutation marks the affected entities for
restyle. A call to Restyle then brings the resolved properties up to date,
visiting only the marked entities:

	Idle ──▶ InlineInheriting ──▶ Matching ──▶ SharedInheriting ──▶ Idle

Inline inheritance always runs. Matching (with linking) and shared
inheritance run only if any entity is marked. The set of marked entities is
frozen when matching starts; entities marked during a pass wait for the
next one.

Matching visits the marked entities in breadth-first order. Siblings which
look alike (same element kind, id, classes, pseudo-classes and disabled
state) usually match the same rules, so the matched rules of an entity are
remembered per layout parent and re-used for following siblings. Rules
depending on the position of an entity among its siblings are never taken
from this cache.

Linking copies the value of the most specific matching rule into the shared
tier of every property, and collects the effects of changed values:
relayout (a process-wide flag), redraw (a list of entities) and text reflow
(a set of entities). Clients drain these after a pass with NeedsRelayout,
TakeRedraw and TakeTextUpdates.

A Context is not safe for concurrent use. It is meant to be owned by the
goroutine running the UI event loop.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package engine

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.engine'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.engine")
}

// ErrMissingEntity is returned for operations on entities which are not (or
// no longer) part of the tree.
var ErrMissingEntity = errors.New("no such entity")
