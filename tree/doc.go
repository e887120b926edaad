/*
Package tree implements the entity tree of a retained-mode UI: an arena of
nodes with parent/child/sibling links, addressed by opaque entity handles.

Overview

Entities carry no data of their own. Everything styling (and every other
subsystem) knows about an entity lives in side tables keyed by the entity
handle. A handle consists of an index into the arena and a generation
counter; indices of destroyed entities are recycled with the next generation,
so a stale handle will never alias a live entity.

Besides the structural parent relation the tree knows a "layout parent"
relation. Entities may be flagged as transparent: they are structurally
present but invisible to layout, inheritance and selector matching. The layout
parent of an entity is its nearest non-transparent ancestor, and layout
siblings are found by flattening transparent siblings into their children.

The tree is not safe for concurrent use. It is owned by exactly one writer,
usually the engine context.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.tree'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.tree")
}
