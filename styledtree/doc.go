/*
Package styledtree builds styled entity trees from HTML parse trees.

Overview

User interfaces usually construct their views in code. For tests, tools and
experiments it is convenient to describe a view as an HTML fragment instead.
Build converts an HTML parse tree into entities of an engine context:

▪︎ the element tag becomes the element kind
▪︎ attributes id and class set the identity of an entity
▪︎ attributes disabled, checked, required and readonly set state
▪︎ attribute style sets inline properties
▪︎ data-layout="transparent" turns an element into a transparent wrapper

Text, comments and non-visual elements (head, script, style, template) do
not produce entities.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.styledtree'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.styledtree")
}
