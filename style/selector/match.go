package selector

import (
	"strings"

	"github.com/andybalholm/cascadia"
)

// Element is the view of an entity which selector matching needs. Relations
// are layout relations.
type Element interface {
	ElementKind() string
	ID() string
	HasClass(class string) bool
	PseudoClasses() PseudoClassFlags
	IsDisabled() bool
	Parent() (Element, bool)
	PrevSibling() (Element, bool)
	NextSibling() (Element, bool)
	IsRoot() bool
	IsEmpty() bool
}

// Match returns true if el matches sel. Selectors using unsupported features
// return an error wrapping ErrUnsupportedSelector.
func Match(sel *Selector, el Element) (bool, error) {
	if err := sel.Unsupported(); err != nil {
		return false, err
	}
	if len(sel.Parts) == 0 {
		return false, nil
	}
	return matchPart(sel, len(sel.Parts)-1, el), nil
}

// MatchWithSpecificity returns true if el matches any selector of the list.
// In this case, the greatest specificity among the matching selectors is
// returned.
func (l List) MatchWithSpecificity(el Element) (bool, cascadia.Specificity, error) {
	var (
		maxSpec cascadia.Specificity
		found   bool
	)
	for _, sel := range l {
		ok, err := Match(sel, el)
		if err != nil {
			return false, maxSpec, err
		}
		if ok {
			if !found || SpecificityKey(maxSpec) < SpecificityKey(sel.Specificity) {
				maxSpec = sel.Specificity
			}
			found = true
		}
	}
	return found, maxSpec, nil
}

// matchPart checks if el matches the part at index i and all parts left of
// it, following the combinators from right to left.
func matchPart(sel *Selector, i int, el Element) bool {
	if !matchCompound(sel.Parts[i], el) {
		return false
	}
	if i == 0 {
		return true
	}
	switch sel.Combinators[i-1] {
	case Descendant:
		for a, ok := el.Parent(); ok; a, ok = a.Parent() {
			if matchPart(sel, i-1, a) {
				return true
			}
		}
	case Child:
		if p, ok := el.Parent(); ok {
			return matchPart(sel, i-1, p)
		}
	case NextSibling:
		if s, ok := el.PrevSibling(); ok {
			return matchPart(sel, i-1, s)
		}
	case SubsequentSibling:
		for s, ok := el.PrevSibling(); ok; s, ok = s.PrevSibling() {
			if matchPart(sel, i-1, s) {
				return true
			}
		}
	}
	return false
}

func matchCompound(c Compound, el Element) bool {
	if c.Element != "" && c.Element != "*" && !strings.EqualFold(c.Element, el.ElementKind()) {
		return false
	}
	if c.ID != "" && c.ID != el.ID() {
		return false
	}
	for _, cl := range c.Classes {
		if !el.HasClass(cl) {
			return false
		}
	}
	for _, p := range c.Pseudo {
		if !matchPseudo(p, el) {
			return false
		}
	}
	return true
}

func matchPseudo(p Pseudo, el Element) bool {
	switch p.kind {
	case pseudoState:
		return el.PseudoClasses().Has(p.flag)
	case pseudoDisabled:
		return el.IsDisabled()
	case pseudoEnabled:
		return !el.IsDisabled()
	case pseudoRoot:
		return el.IsRoot()
	case pseudoEmpty:
		return el.IsEmpty()
	case pseudoFirstChild:
		_, has := el.PrevSibling()
		return !has
	case pseudoLastChild:
		_, has := el.NextSibling()
		return !has
	case pseudoOnlyChild:
		_, prev := el.PrevSibling()
		_, next := el.NextSibling()
		return !prev && !next
	case pseudoNthChild:
		return p.nth.Matches(position(el, Element.PrevSibling))
	case pseudoNthLastChild:
		return p.nth.Matches(position(el, Element.NextSibling))
	}
	return false
}

// position returns the 1-based position of el, counting siblings in the
// direction of step.
func position(el Element, step func(Element) (Element, bool)) int {
	i := 1
	for s, ok := step(el); ok; s, ok = step(s) {
		i++
	}
	return i
}
