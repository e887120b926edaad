package css

import (
	"fmt"
	"strings"

	"github.com/npillmayer/restyle/style"
	"go.uber.org/multierr"
)

// position is an enum type for the CSS position property.
type position uint16

// Enum values for type Position
const (
	positionUnset    position = iota
	positionStatic            // CSS static (default)
	positionRelative          // CSS relative
	positionAbsolute          // CSS absolute
	positionFixed             // CSS fixed
)

// PositionT is an option type for CSS positions.
type PositionT struct {
	offsets []PositionOffset
	kind    position
}

// PositionOffset is one of the four offsets of a positioned entity.
type PositionOffset struct {
	Dim DimenT
	Dir PosDir
}

// PosDir is either Top, Right, Bottom or Left.
type PosDir uint8

const (
	Top PosDir = iota
	Right
	Bottom
	Left
)

// OffsetProperties lists the style properties holding the offsets, indexed
// by PosDir.
var OffsetProperties = [4]style.PropertyID{style.PTop, style.PRight, style.PBottom, style.PLeft}

// NormalizeOffsets normalizes offset properties (Top, Right, Bottom, Left) into
// a 4-way slice, ordered by PosDir. Invalid directions are silently dropped.
// Missing offsets are auto.
func NormalizeOffsets(offsets []PositionOffset) []PositionOffset {
	norm := make([]PositionOffset, 4)
	for i := Top; i <= Left; i++ {
		norm[i] = PositionOffset{Dim: Auto(), Dir: i}
	}
	for _, o := range offsets {
		if o.Dir <= Left {
			norm[int(o.Dir)] = o
		}
	}
	return norm
}

/*
type PositionT
	= Undefined
	| Static
	| Relative top right bottom left
	| Absolute top right bottom left
	| Fixed top right bottom left
*/

// Static creates a CSS position of value `static`.
func Static() PositionT {
	return PositionT{kind: positionStatic}
}

// Relative creates a CSS position of value `relative`, given optional offsets.
func Relative(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionRelative, offsets: NormalizeOffsets(offsets)}
}

// Absolute creates a CSS position of value `absolute`, given optional offsets.
func Absolute(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionAbsolute, offsets: NormalizeOffsets(offsets)}
}

// Fixed creates a CSS position of value `fixed`, given optional offsets.
func Fixed(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionFixed, offsets: NormalizeOffsets(offsets)}
}

// ParsePosition creates a position from the value of the position property
// and the values of the four offset properties, in PosDir order. Offsets are
// ignored for static positions. Offsets which fail to parse are reported
// together.
func ParsePosition(p style.Property, offsets [4]style.Property) (PositionT, error) {
	var kind position
	switch strings.ToLower(strings.TrimSpace(p.String())) {
	case "":
		return PositionT{}, nil
	case "static":
		return Static(), nil
	case "relative":
		kind = positionRelative
	case "absolute":
		kind = positionAbsolute
	case "fixed":
		kind = positionFixed
	default:
		return PositionT{}, fmt.Errorf("unknown position '%s'", p)
	}
	var errs error
	var os []PositionOffset
	for dir, v := range offsets {
		d, err := ParseDimen(v)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		os = append(os, PositionOffset{Dim: d, Dir: PosDir(dir)})
	}
	return PositionT{kind: kind, offsets: NormalizeOffsets(os)}, errs
}

// Offsets returns the four offsets of a non-static position.
func (p PositionT) Offsets() []PositionOffset {
	return p.offsets
}

func (p PositionT) String() string {
	switch p.kind {
	case positionStatic:
		return "static"
	case positionRelative:
		return "relative"
	case positionAbsolute:
		return "absolute"
	case positionFixed:
		return "fixed"
	}
	return "<unset>"
}

// ---------------------------------------------------------------------------

func (p PositionT) Match() *PMatcher {
	return &PMatcher{pos: p}
}

type PMatcher struct {
	pos PositionT
}

func (m *PMatcher) IsKind(p PositionT) *PMatcher {
	if p.kind == m.pos.kind {
		return m
	}
	return nil
}

func (m *PMatcher) Absolute(o *[]PositionOffset) *PMatcher {
	return m.offsetsOf(positionAbsolute, o)
}

func (m *PMatcher) Relative(o *[]PositionOffset) *PMatcher {
	return m.offsetsOf(positionRelative, o)
}

func (m *PMatcher) Fixed(o *[]PositionOffset) *PMatcher {
	return m.offsetsOf(positionFixed, o)
}

func (m *PMatcher) offsetsOf(kind position, o *[]PositionOffset) *PMatcher {
	if m.pos.kind != kind {
		return nil
	}
	if o != nil {
		*o = m.pos.offsets
	}
	return m
}

// IsUnset returns true if p is unset.
func (p PositionT) IsUnset() bool {
	return p.kind == positionUnset
}

// IsRelative returns true if p represents a valid relative position.
func (p PositionT) IsRelative() bool {
	return p.kind == positionRelative
}

// IsAbsolute returns true if d represents a valid absolute position.
func (p PositionT) IsAbsolute() bool {
	return p.kind == positionAbsolute
}

// IsFixed returns true if d represents a fixed position.
func (p PositionT) IsFixed() bool {
	return p.kind == positionFixed
}
