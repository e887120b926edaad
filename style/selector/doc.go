/*
Package selector implements parsing and matching of style selectors.

Supported are type, universal, id and class selectors, the combinators
descendant (whitespace), child (>), next-sibling (+) and subsequent-sibling
(~), and a fixed set of pseudo-classes:

	structural   :root :empty :first-child :last-child :only-child
	             :nth-child(An+B) :nth-last-child(An+B)
	state        :hover :active :over :focus :focus-visible :focus-within
	             :disabled :enabled :checked :indeterminate :default :blank
	             :read-only :read-write :placeholder-shown :required :optional
	             :valid :invalid :user-valid :user-invalid :in-range
	             :out-of-range

Selectors are matched against the lightweight interface Element. Tree
relations (parent, siblings) are layout relations, i.e. transparent wrapper
nodes are invisible to selectors.

Selectors using :lang(), :dir() or any other pseudo-class not listed above
parse fine, but matching them fails with ErrUnsupportedSelector.

The specificity of a selector is represented as a cascadia.Specificity
triple [A,B,C].

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.selector'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.selector")
}

// ErrUnsupportedSelector is returned when matching a selector which uses a
// feature the matcher does not implement.
var ErrUnsupportedSelector = errors.New("unsupported selector")

// ErrSyntax is returned for selectors which cannot be parsed.
var ErrSyntax = errors.New("selector syntax error")
