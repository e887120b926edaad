/*
Package cssom provides the rule set of the styling engine.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. For our
purposes it boils down to an ordered set of rules, each made of a selector
list and a set of declarations. Rules are identified by a RuleID which
increases in declaration order; when two rules match an entity with equal
specificity, the rule declared later wins.

CSS handling is de-coupled by introducing interfaces StyleSheet and Rule.
Concrete implementations may be found in sub-packages (see package
douceuradapter). Stylesheets are compiled into a RuleSet, which parses
selectors, expands shorthand properties and maps property keys onto the
style catalog.

Compiling reports every problem it finds, aggregated into a single error:
selector syntax errors, unknown properties and selectors which use features
the matcher does not support. Rules with syntax errors and declarations of
unknown properties are dropped from the rule set, rules with unsupported
selectors are kept, so that RuleSet.Validate will reject the rule set as a
whole.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.cssom")
}

// ErrUnknownProperty is reported for declarations of properties which are
// not part of the style catalog.
var ErrUnknownProperty = errors.New("unknown style property")
