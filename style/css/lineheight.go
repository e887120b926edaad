package css

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/restyle/style"
)

// LineHeightT is an option type for the line-height property:
//
//	type LineHeightT
//	    = Normal
//	    | Multiple float          // multiple of the font size
//	    | Length DimenT           // absolute, relative or percentage
type LineHeightT struct {
	multiple float64
	length   DimenT
	kind     uint8
}

const (
	lineHeightUnset uint8 = iota
	lineHeightNormal
	lineHeightMultiple
	lineHeightLength
)

// NormalLineHeight is the line-height "normal", left to the font.
func NormalLineHeight() LineHeightT {
	return LineHeightT{kind: lineHeightNormal}
}

// LineHeightMultiple is a line-height as a multiple of the font size.
func LineHeightMultiple(x float64) LineHeightT {
	return LineHeightT{multiple: x, kind: lineHeightMultiple}
}

// LineHeightLength is a line-height given as a length or percentage.
func LineHeightLength(d DimenT) LineHeightT {
	return LineHeightT{length: d, kind: lineHeightLength}
}

// IsNormal is true for "line-height: normal".
func (lh LineHeightT) IsNormal() bool {
	return lh.kind == lineHeightNormal
}

// Multiple returns the font size multiplier and true, if lh is given as a
// plain number.
func (lh LineHeightT) Multiple() (float64, bool) {
	return lh.multiple, lh.kind == lineHeightMultiple
}

// Length returns the dimension and true, if lh is given as a length.
func (lh LineHeightT) Length() (DimenT, bool) {
	return lh.length, lh.kind == lineHeightLength
}

func (lh LineHeightT) String() string {
	switch lh.kind {
	case lineHeightNormal:
		return "normal"
	case lineHeightMultiple:
		return strconv.FormatFloat(lh.multiple, 'f', -1, 64)
	case lineHeightLength:
		return lh.length.String()
	}
	return "<unset>"
}

// ParseLineHeight converts a property value into a line height. Unitless
// numbers are multiples of the font size, in contrast to other length
// properties where they denote pixels.
func ParseLineHeight(p style.Property) (LineHeightT, error) {
	s := strings.ToLower(strings.TrimSpace(p.String()))
	if s == "normal" {
		return NormalLineHeight(), nil
	}
	if x, err := strconv.ParseFloat(s, 64); err == nil {
		if x < 0 {
			return LineHeightT{}, fmt.Errorf("negative line-height '%s'", p)
		}
		return LineHeightMultiple(x), nil
	}
	d, err := ParseDimen(p)
	if err != nil {
		return LineHeightT{}, fmt.Errorf("cannot parse line-height: %w", err)
	}
	return LineHeightLength(d), nil
}
