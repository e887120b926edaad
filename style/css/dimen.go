package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/restyle/style"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	dimenNone     uint32 = 0x0005
	kindMask      uint32 = 0x000f

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// Absolute units in terms of scaled points. A unitless number is taken as
// pixels, and a pixel is 3/4 of a point.
var absoluteUnits = map[string]float64{
	"":   0.75,
	"px": 0.75,
	"pt": 1,
	"pc": 12,
	"in": 72,
	"cm": 72 / 2.54,
	"mm": 72 / 25.4,
}

var relativeUnits = map[string]uint32{
	"em":   dimenEM,
	"ex":   dimenEX,
	"ch":   dimenCH,
	"rem":  dimenREM,
	"vw":   dimenVW,
	"vh":   dimenVH,
	"vmin": dimenVMIN,
	"vmax": dimenVMAX,
}

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	factor  float64 // for font- and viewport-relative units
	flags   uint32
}

/*
type DimenT
	= Auto
	| None
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
	| ViewRel unit
	| FontRel unit
	| ContentRel Min N
	| ContentRel Max N
*/

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func None() DimenT {
	return DimenT{flags: dimenNone}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// FontRelative creates a dimension relative to the font size, e.g. 1.5em.
func FontRelative(x float64, unit string) DimenT {
	return DimenT{factor: x, flags: relativeUnits[unit]}
}

// IsAbsolute is true for fixed dimensions.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsRelative is true for dimensions relative to a font size, the viewport or
// the containing box.
func (d DimenT) IsRelative() bool {
	return d.flags&relativeMask > 0
}

// Factor returns the multiplier of a font- or viewport-relative dimension.
func (d DimenT) Factor() float64 {
	return d.factor
}

func (d DimenT) String() string {
	switch {
	case d.flags&kindMask == dimenAbsolute:
		return fmt.Sprintf("%dsp", int64(d.d))
	case d.flags&kindMask == dimenAuto:
		return "auto"
	case d.flags&kindMask == dimenNone:
		return "none"
	case d.flags&kindMask == dimenInherit:
		return "inherit"
	case d.flags&kindMask == dimenInitial:
		return "initial"
	case d.flags&relativeMask == dimenPercent:
		return fmt.Sprintf("%v", d.percent)
	case d.flags&relativeMask > 0:
		for unit, f := range relativeUnits {
			if f == d.flags&relativeMask {
				return strconv.FormatFloat(d.factor, 'f', -1, 64) + unit
			}
		}
	case d.flags&contentMask == DimenContentMax:
		return "max-content"
	case d.flags&contentMask == DimenContentMin:
		return "min-content"
	case d.flags&contentMask == DimenContentFit:
		return "fit-content"
	}
	return "<unset>"
}

// ParseDimen converts a property value into a dimension.
func ParseDimen(p style.Property) (DimenT, error) {
	s := strings.ToLower(strings.TrimSpace(p.String()))
	switch s {
	case "":
		return DimenT{}, fmt.Errorf("cannot parse empty dimension")
	case "auto":
		return Auto(), nil
	case "none":
		return None(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "max-content":
		return DimenT{flags: DimenContentMax}, nil
	case "min-content":
		return DimenT{flags: DimenContentMin}, nil
	case "fit-content":
		return DimenT{flags: DimenContentFit}, nil
	}
	num, unit := splitNumber(s)
	x, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return DimenT{}, fmt.Errorf("cannot parse dimension '%s': %w", p, err)
	}
	if unit == "%" {
		return Percentage(percent.FromInt(int(math.Round(x)))), nil
	}
	if f, ok := absoluteUnits[unit]; ok {
		return JustDimen(dimen.DU(math.Round(x * f * float64(dimen.PT)))), nil
	}
	if _, ok := relativeUnits[unit]; ok {
		return FontRelative(x, unit), nil
	}
	tracer().Debugf("unknown unit '%s' in dimension '%s'", unit, p)
	return DimenT{}, fmt.Errorf("unknown unit '%s' in dimension '%s'", unit, p)
}

// splitNumber splits a numeric prefix from a unit suffix.
func splitNumber(s string) (string, string) {
	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.' || s[i] == '-' || s[i] == '+') {
		i++
	}
	return s[:i], strings.TrimSpace(s[i:])
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case m.dimen.flags&kindMask != 0 && (m.dimen.flags&kindMask) == (d.flags&kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags&relativeMask == dimenPercent) != (d.flags&relativeMask == dimenPercent) {
			return nil
		}
		return m
	case (m.dimen.flags&contentMask > 0) && (d.flags&contentMask > 0):
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.flags&relativeMask == dimenPercent {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type DimenPatterns[T any] struct {
	Auto     T
	None     T
	Inherit  T
	Initial  T
	Just     T
	Relative T
	Default  T
}

func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.flags&kindMask == dimenAuto:
		return patterns.Auto
	case m.dimen.flags&kindMask == dimenNone:
		return patterns.None
	case m.dimen.flags&kindMask == dimenAbsolute:
		return patterns.Just
	case m.dimen.flags&kindMask == dimenInitial:
		return patterns.Initial
	case m.dimen.flags&kindMask == dimenInherit:
		return patterns.Inherit
	case m.dimen.flags&relativeMask > 0:
		return patterns.Relative
	}
	return patterns.Default
}

func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

func (m *MatchExpr[T]) Const(x T) T {
	return x
}
