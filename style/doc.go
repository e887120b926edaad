/*
Package style implements the property store of the styling engine.

Overview

Every styleable property is described by an entry in a fixed catalog: its
CSS key, whether it is inherited, the effect a change has on downstream
subsystems (relayout, redraw, text reflow) and its default value. The order
of the catalog is significant: the cascade iterates properties in catalog
order, so identical input will always raise identical flags.

Values are held per property in a StyleSet, a set of sparse maps from entity
to value, separated into tiers:

	inline     set directly on an entity, always wins
	shared     set by the most specific matching rule
	inherited  copied down from the layout parent
	default    the catalog default (possibly depending on the element kind)

Property values are kept in their raw textual form (type Property). Package
style/css offers conversions to typed values.

Besides property values, a Store keeps the identity tables which selector
matching reads: element kinds, ids, class sets and pseudo-class flags.

Status

The property catalog covers the properties a UI toolkit needs; it does not
try to cover CSS at large.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.style'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.style")
}
