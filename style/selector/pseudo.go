package selector

import "strings"

// PseudoClassFlags is a bit set of the state pseudo-classes an element is in.
type PseudoClassFlags uint32

// State pseudo-classes. :disabled and :enabled are not flags, they are
// derived from the disabled property of an element.
const (
	Hover PseudoClassFlags = 1 << iota
	Active
	Over
	Focus
	FocusVisible
	FocusWithin
	ReadOnly
	ReadWrite
	PlaceholderShown
	Default
	Checked
	Indeterminate
	Blank
	Valid
	Invalid
	InRange
	OutOfRange
	Required
	Optional
	UserValid
	UserInvalid
)

var stateNames = []struct {
	flag PseudoClassFlags
	name string
}{
	{Hover, "hover"},
	{Active, "active"},
	{Over, "over"},
	{Focus, "focus"},
	{FocusVisible, "focus-visible"},
	{FocusWithin, "focus-within"},
	{ReadOnly, "read-only"},
	{ReadWrite, "read-write"},
	{PlaceholderShown, "placeholder-shown"},
	{Default, "default"},
	{Checked, "checked"},
	{Indeterminate, "indeterminate"},
	{Blank, "blank"},
	{Valid, "valid"},
	{Invalid, "invalid"},
	{InRange, "in-range"},
	{OutOfRange, "out-of-range"},
	{Required, "required"},
	{Optional, "optional"},
	{UserValid, "user-valid"},
	{UserInvalid, "user-invalid"},
}

// PseudoClassByName returns the flag for a state pseudo-class name, e.g.
// "focus-visible".
func PseudoClassByName(name string) (PseudoClassFlags, bool) {
	name = strings.ToLower(name)
	for _, s := range stateNames {
		if s.name == name {
			return s.flag, true
		}
	}
	return 0, false
}

// Has is true if all flags of f are set.
func (pc PseudoClassFlags) Has(f PseudoClassFlags) bool {
	return pc&f == f
}

func (pc PseudoClassFlags) String() string {
	var names []string
	for _, s := range stateNames {
		if pc&s.flag != 0 {
			names = append(names, ":"+s.name)
		}
	}
	return strings.Join(names, "")
}

// pseudoKind categorizes pseudo-classes within a selector.
type pseudoKind uint8

const (
	pseudoState pseudoKind = iota
	pseudoDisabled
	pseudoEnabled
	pseudoRoot
	pseudoEmpty
	pseudoFirstChild
	pseudoLastChild
	pseudoOnlyChild
	pseudoNthChild
	pseudoNthLastChild
	pseudoUnsupported
)

// Pseudo is a pseudo-class component of a compound selector.
type Pseudo struct {
	Name string
	Arg  string // argument of functional pseudo-classes, verbatim
	kind pseudoKind
	flag PseudoClassFlags
	nth  Nth
}

// IsPositional is true for pseudo-classes depending on the position of an
// element among its siblings.
func (p Pseudo) IsPositional() bool {
	switch p.kind {
	case pseudoFirstChild, pseudoLastChild, pseudoOnlyChild, pseudoNthChild, pseudoNthLastChild:
		return true
	}
	return false
}

// IsSupported is false for pseudo-classes the matcher cannot evaluate.
func (p Pseudo) IsSupported() bool {
	return p.kind != pseudoUnsupported
}

func (p Pseudo) String() string {
	if p.Arg != "" || p.kind == pseudoNthChild || p.kind == pseudoNthLastChild {
		return ":" + p.Name + "(" + p.Arg + ")"
	}
	return ":" + p.Name
}

func newPseudo(name string) Pseudo {
	p := Pseudo{Name: strings.ToLower(name)}
	switch p.Name {
	case "disabled":
		p.kind = pseudoDisabled
	case "enabled":
		p.kind = pseudoEnabled
	case "root":
		p.kind = pseudoRoot
	case "empty":
		p.kind = pseudoEmpty
	case "first-child":
		p.kind = pseudoFirstChild
	case "last-child":
		p.kind = pseudoLastChild
	case "only-child":
		p.kind = pseudoOnlyChild
	default:
		if f, ok := PseudoClassByName(p.Name); ok {
			p.kind, p.flag = pseudoState, f
		} else {
			p.kind = pseudoUnsupported
		}
	}
	return p
}

func newFunctionalPseudo(name, arg string) (Pseudo, error) {
	p := Pseudo{Name: strings.ToLower(name), Arg: arg}
	switch p.Name {
	case "nth-child", "nth-last-child":
		nth, err := ParseNth(arg)
		if err != nil {
			return p, err
		}
		p.nth = nth
		p.kind = pseudoNthChild
		if p.Name == "nth-last-child" {
			p.kind = pseudoNthLastChild
		}
	default: // :lang(), :dir() and friends
		p.kind = pseudoUnsupported
	}
	return p, nil
}
