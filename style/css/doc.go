/*
Package css provides typed views onto style property values.

Style properties are kept as raw strings by package style. This package
shields clients from the cumbersome handling of the textual nature of
property values by converting them into option types: dimensions, display
modes, positions and line heights. Option types are matched by pattern, e.g.

	switch m := d.Match(); m {
	case m.Just(&du):
	    ...
	case m.IsKind(css.Auto()):
	    ...
	}

Status

Covers the value syntax of the properties of the style catalog, not CSS at
large.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.css'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.css")
}
