package selector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
)

// Combinator connects two compound selectors.
type Combinator uint8

const (
	Descendant        Combinator = iota // whitespace
	Child                               // >
	NextSibling                         // +
	SubsequentSibling                   // ~
)

func (c Combinator) String() string {
	switch c {
	case Child:
		return " > "
	case NextSibling:
		return " + "
	case SubsequentSibling:
		return " ~ "
	}
	return " "
}

// Nth is an An+B expression, as used by :nth-child().
type Nth struct {
	A, B int
}

// Matches is true if there is an n ≥ 0 with A·n + B = i, where i is a
// 1-based position.
func (nth Nth) Matches(i int) bool {
	if nth.A == 0 {
		return i == nth.B
	}
	d := i - nth.B
	return d%nth.A == 0 && d/nth.A >= 0
}

func (nth Nth) String() string {
	return fmt.Sprintf("%dn%+d", nth.A, nth.B)
}

// ParseNth parses an An+B expression, including the keywords "odd" and
// "even".
func ParseNth(s string) (Nth, error) {
	s = strings.ToLower(strings.Join(strings.Fields(s), ""))
	switch s {
	case "odd":
		return Nth{2, 1}, nil
	case "even":
		return Nth{2, 0}, nil
	case "":
		return Nth{}, fmt.Errorf("%w: empty An+B expression", ErrSyntax)
	}
	n := strings.IndexByte(s, 'n')
	if n < 0 {
		b, err := strconv.Atoi(s)
		if err != nil {
			return Nth{}, fmt.Errorf("%w: invalid An+B expression '%s'", ErrSyntax, s)
		}
		return Nth{0, b}, nil
	}
	var nth Nth
	switch a := s[:n]; a {
	case "", "+":
		nth.A = 1
	case "-":
		nth.A = -1
	default:
		x, err := strconv.Atoi(a)
		if err != nil {
			return Nth{}, fmt.Errorf("%w: invalid An+B expression '%s'", ErrSyntax, s)
		}
		nth.A = x
	}
	if rest := s[n+1:]; rest != "" {
		if rest[0] != '+' && rest[0] != '-' {
			return Nth{}, fmt.Errorf("%w: invalid An+B expression '%s'", ErrSyntax, s)
		}
		b, err := strconv.Atoi(rest)
		if err != nil {
			return Nth{}, fmt.Errorf("%w: invalid An+B expression '%s'", ErrSyntax, s)
		}
		nth.B = b
	}
	return nth, nil
}

// Compound is a sequence of simple selectors without combinators, e.g.
// `button#ok.primary:hover`.
type Compound struct {
	Element string // element kind; empty or "*" matches any
	ID      string
	Classes []string
	Pseudo  []Pseudo
}

func (c Compound) String() string {
	var b strings.Builder
	b.WriteString(c.Element)
	if c.ID != "" {
		b.WriteString("#" + c.ID)
	}
	for _, cl := range c.Classes {
		b.WriteString("." + cl)
	}
	for _, p := range c.Pseudo {
		b.WriteString(p.String())
	}
	if b.Len() == 0 {
		return "*"
	}
	return b.String()
}

func (c Compound) isEmpty() bool {
	return c.Element == "" && c.ID == "" && len(c.Classes) == 0 && len(c.Pseudo) == 0
}

func (c Compound) specificity() cascadia.Specificity {
	var spec cascadia.Specificity
	if c.ID != "" {
		spec[0]++
	}
	spec[1] += len(c.Classes) + len(c.Pseudo)
	if c.Element != "" && c.Element != "*" {
		spec[2]++
	}
	return spec
}

// Selector is a complex selector: compound selectors joined by combinators,
// in source order. Combinators[i] joins Parts[i] and Parts[i+1].
type Selector struct {
	Parts       []Compound
	Combinators []Combinator
	Specificity cascadia.Specificity
}

func (sel *Selector) String() string {
	var b strings.Builder
	for i, part := range sel.Parts {
		if i > 0 {
			b.WriteString(sel.Combinators[i-1].String())
		}
		b.WriteString(part.String())
	}
	return b.String()
}

// Subject returns the rightmost compound selector, which has to match the
// element itself.
func (sel *Selector) Subject() Compound {
	return sel.Parts[len(sel.Parts)-1]
}

// IsPositional is true if any part of sel depends on the position of an
// element among its siblings.
func (sel *Selector) IsPositional() bool {
	for _, part := range sel.Parts {
		for _, p := range part.Pseudo {
			if p.IsPositional() {
				return true
			}
		}
	}
	return false
}

// HasSiblingCombinator is true if sel uses + or ~.
func (sel *Selector) HasSiblingCombinator() bool {
	for _, c := range sel.Combinators {
		if c == NextSibling || c == SubsequentSibling {
			return true
		}
	}
	return false
}

// HasHierarchy is true if sel uses a descendant or child combinator, i.e.
// depends on the ancestors of an element.
func (sel *Selector) HasHierarchy() bool {
	for _, c := range sel.Combinators {
		if c == Descendant || c == Child {
			return true
		}
	}
	return false
}

// DependsOnChildren is true if sel uses :empty, which depends on the
// children of an element.
func (sel *Selector) DependsOnChildren() bool {
	for _, part := range sel.Parts {
		for _, p := range part.Pseudo {
			if p.kind == pseudoEmpty {
				return true
			}
		}
	}
	return false
}

// IsStructural is true if the outcome of matching sel may differ between
// siblings which look alike: positional pseudo-classes, sibling combinators
// and :empty.
func (sel *Selector) IsStructural() bool {
	return sel.IsPositional() || sel.HasSiblingCombinator() || sel.DependsOnChildren()
}

// Unsupported returns an error wrapping ErrUnsupportedSelector if sel uses a
// pseudo-class the matcher cannot evaluate, nil otherwise.
func (sel *Selector) Unsupported() error {
	for _, part := range sel.Parts {
		for _, p := range part.Pseudo {
			if !p.IsSupported() {
				return fmt.Errorf("%w: %s in '%s'", ErrUnsupportedSelector, p, sel)
			}
		}
	}
	return nil
}

func (sel *Selector) computeSpecificity() {
	var spec cascadia.Specificity
	for _, part := range sel.Parts {
		s := part.specificity()
		for i := range spec {
			spec[i] += s[i]
		}
	}
	sel.Specificity = spec
}

// SpecificityKey packs a specificity triple into an integer which orders
// like the triple. Components saturate at 255.
func SpecificityKey(s cascadia.Specificity) uint32 {
	lane := func(n int) uint32 {
		return uint32(min(max(n, 0), 255))
	}
	return lane(s[0])<<16 | lane(s[1])<<8 | lane(s[2])
}

// List is a comma separated list of selectors.
type List []*Selector

func (l List) String() string {
	s := make([]string, len(l))
	for i, sel := range l {
		s[i] = sel.String()
	}
	return strings.Join(s, ", ")
}
