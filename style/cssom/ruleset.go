package cssom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/restyle/style"
	"github.com/npillmayer/restyle/style/selector"
	"go.uber.org/multierr"
)

// RuleID identifies a rule of a rule set. IDs increase in declaration order.
type RuleID uint32

// Declaration is a single property assignment of a rule.
type Declaration struct {
	Property style.PropertyID
	Value    style.Property
}

func (d Declaration) String() string {
	return d.Property.Key() + ": " + d.Value.String()
}

// StyleRule is a compiled rule: a selector list plus declarations.
type StyleRule struct {
	ID        RuleID
	Selectors selector.List
	decls     []Declaration
	values    map[style.PropertyID]style.Property
}

// Value returns the value a rule declares for a property.
func (r *StyleRule) Value(id style.PropertyID) (style.Property, bool) {
	v, ok := r.values[id]
	return v, ok
}

// Declarations returns the declarations of a rule in source order. A
// property declared more than once appears once, with its last value.
func (r *StyleRule) Declarations() []Declaration {
	return r.decls
}

// IsStructural is true if any selector of the rule may match one of two
// siblings which look alike, but not the other.
func (r *StyleRule) IsStructural() bool {
	for _, sel := range r.Selectors {
		if sel.IsStructural() {
			return true
		}
	}
	return false
}

func (r *StyleRule) String() string {
	ds := make([]string, len(r.decls))
	for i, d := range r.decls {
		ds[i] = d.String()
	}
	return fmt.Sprintf("#%d %s { %s }", r.ID, r.Selectors, strings.Join(ds, "; "))
}

// RuleSet is an ordered set of compiled rules. Once handed to the engine, a
// rule set must not be modified.
type RuleSet struct {
	rules        []*StyleRule
	structural   []*StyleRule
	hasHierarchy bool
	hasSiblings  bool
}

// NewRuleSet creates an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{}
}

// Add appends a rule and returns its ID. Later declarations of the same
// property overwrite earlier ones.
func (rs *RuleSet) Add(selectors selector.List, decls []Declaration) RuleID {
	r := &StyleRule{
		ID:        RuleID(len(rs.rules)),
		Selectors: selectors,
		values:    make(map[style.PropertyID]style.Property, len(decls)),
	}
	for _, d := range decls {
		if _, dup := r.values[d.Property]; dup {
			for i := range r.decls {
				if r.decls[i].Property == d.Property {
					r.decls[i].Value = d.Value
				}
			}
		} else {
			r.decls = append(r.decls, d)
		}
		r.values[d.Property] = d.Value
	}
	rs.rules = append(rs.rules, r)
	if r.IsStructural() {
		rs.structural = append(rs.structural, r)
	}
	for _, sel := range selectors {
		rs.hasHierarchy = rs.hasHierarchy || sel.HasHierarchy()
		rs.hasSiblings = rs.hasSiblings || sel.IsPositional() || sel.HasSiblingCombinator()
	}
	return r.ID
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// Rules returns all rules in declaration order.
func (rs *RuleSet) Rules() []*StyleRule {
	if rs == nil {
		return nil
	}
	return rs.rules
}

// Rule returns the rule with a given ID.
func (rs *RuleSet) Rule(id RuleID) (*StyleRule, bool) {
	if rs == nil || int(id) >= len(rs.rules) {
		return nil, false
	}
	return rs.rules[id], true
}

// Structural returns the rules which cannot be shared between look-alike
// siblings, in declaration order.
func (rs *RuleSet) Structural() []*StyleRule {
	if rs == nil {
		return nil
	}
	return rs.structural
}

// IsStructural is true if the rule with the given ID is structural.
func (rs *RuleSet) IsStructural(id RuleID) bool {
	r, ok := rs.Rule(id)
	return ok && r.IsStructural()
}

// HasHierarchy is true if any selector depends on the ancestors of an
// element. Changes to an entity then affect its whole subtree.
func (rs *RuleSet) HasHierarchy() bool {
	return rs != nil && rs.hasHierarchy
}

// HasSiblingSelectors is true if any selector depends on the siblings of an
// element, by position or by sibling combinators.
func (rs *RuleSet) HasSiblingSelectors() bool {
	return rs != nil && rs.hasSiblings
}

// Validate checks that every selector of the rule set can be matched. All
// offending selectors are reported, wrapping selector.ErrUnsupportedSelector.
func (rs *RuleSet) Validate() error {
	var errs error
	for _, r := range rs.Rules() {
		for _, sel := range r.Selectors {
			if err := sel.Unsupported(); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("rule #%d: %w", r.ID, err))
			}
		}
	}
	return errs
}

// Compile turns stylesheets into a rule set. Rules are numbered in the order
// of the stylesheets and of the rules within each stylesheet.
//
// Compile always returns a usable rule set. Problems are reported in an
// aggregated error, see package documentation.
func Compile(sheets ...StyleSheet) (*RuleSet, error) {
	rs := NewRuleSet()
	var errs error
	for _, sheet := range sheets {
		if sheet == nil || sheet.Empty() {
			continue
		}
		for _, rule := range sheet.Rules() {
			selectors, err := selector.Parse(rule.Selector())
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			decls, err := CompileDeclarations(rule)
			errs = multierr.Append(errs, err)
			id := rs.Add(selectors, decls)
			tracer().Debugf("compiled rule %s", rs.rules[id])
		}
	}
	errs = multierr.Append(errs, rs.Validate())
	if errs != nil {
		tracer().Infof("compiling stylesheets: %d problem(s)", len(multierr.Errors(errs)))
	}
	return rs, errs
}

// CompileDeclarations maps the properties of a rule onto the style catalog,
// expanding shorthand properties.
func CompileDeclarations(rule Rule) ([]Declaration, error) {
	var decls []Declaration
	var errs error
	for _, key := range rule.Properties() {
		key = strings.ToLower(strings.TrimSpace(key))
		value := style.Normalize(rule.Value(key).String())
		if rule.IsImportant(key) {
			tracer().Debugf("'!important' is ignored for %s", key)
		}
		kvs := []style.KeyValue{{Key: key, Value: value}}
		if style.IsCompound(key) {
			split, err := style.SplitCompoundProperty(key, value)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			kvs = split
		}
		for _, kv := range kvs {
			id, ok := style.Lookup(kv.Key)
			if !ok || !id.Describe().Linkable {
				errs = multierr.Append(errs, fmt.Errorf("%w: %s", ErrUnknownProperty, kv.Key))
				continue
			}
			decls = append(decls, Declaration{Property: id, Value: kv.Value})
		}
	}
	return decls, errs
}
