package style

import "strings"

// PropertyID identifies a property of the catalog. The numeric order of IDs
// is the fixed order in which the cascade visits properties.
type PropertyID uint16

// Effect is a bit set of downstream consequences of a property change.
type Effect uint8

const (
	Relayout Effect = 1 << iota // geometry of the entity may change
	Redraw                      // appearance of the entity changes
	Reflow                      // text shaping of the entity has to be redone
)

func (e Effect) String() string {
	if e == 0 {
		return "none"
	}
	var b strings.Builder
	for _, f := range []struct {
		flag Effect
		name string
	}{{Relayout, "relayout"}, {Redraw, "redraw"}, {Reflow, "reflow"}} {
		if e&f.flag != 0 {
			if b.Len() > 0 {
				b.WriteByte('|')
			}
			b.WriteString(f.name)
		}
	}
	return b.String()
}

// Inheritance tells if and how a property is inherited from the layout parent.
type Inheritance uint8

const (
	NotInherited Inheritance = iota
	InheritsState            // caret/selection colors and the disabled state
	InheritsText             // font and text decoration properties
)

// Descriptor describes a catalog entry.
type Descriptor struct {
	ID       PropertyID
	Key      string
	Inherits Inheritance
	Effect   Effect
	Default  Property
	Linkable bool // may be set by rules; false for engine-owned state
}

// Properties of the catalog, in cascade order.
const (
	PDisplay PropertyID = iota
	PVisibility
	PZIndex
	POverflowX
	POverflowY
	PClipPath
	PBackdropFilter
	PMixBlendMode
	POpacity
	PLeft
	PRight
	PTop
	PBottom
	PMinLeft
	PMaxLeft
	PMinRight
	PMaxRight
	PMinTop
	PMaxTop
	PMinBottom
	PMaxBottom
	PWidth
	PHeight
	PMinWidth
	PMaxWidth
	PMinHeight
	PMaxHeight
	PLayoutType
	PPosition
	PChildLeft
	PChildRight
	PChildTop
	PChildBottom
	PRowBetween
	PColBetween
	PBorderWidth
	PBorderColor
	PBorderStyle
	PBorderTopLeftRadius
	PBorderTopRightRadius
	PBorderBottomRightRadius
	PBorderBottomLeftRadius
	POutlineWidth
	POutlineColor
	POutlineOffset
	PBackgroundColor
	PBackgroundImage
	PBackgroundSize
	PBoxShadow
	PColor
	PFontSize
	PFontFamily
	PFontWeight
	PFontStyle
	PFontStretch
	PFontVariationSettings
	PTextWrap
	PTextAlign
	PTextOverflow
	PLineClamp
	PLineHeight
	PLetterSpacing
	PWordSpacing
	PTextDecorationLine
	PTextStrokeWidth
	PTextStrokeStyle
	PUnderlineStyle
	PUnderlineColor
	PSelectionColor
	PCaretColor
	PCursor
	PPointerEvents
	PTransform
	PTransformOrigin
	PTranslate
	PRotate
	PScale
	PFill
	PDisabled
	NumProperties int = iota
)

const (
	rl  = Relayout | Redraw
	rd  = Redraw
	txt = Redraw | Reflow
)

var catalog = [NumProperties]Descriptor{
	{PDisplay, "display", NotInherited, rl, "block", true},
	{PVisibility, "visibility", NotInherited, rl, "visible", true},
	{PZIndex, "z-index", NotInherited, rd, "0", true},
	{POverflowX, "overflow-x", NotInherited, rd, "visible", true},
	{POverflowY, "overflow-y", NotInherited, rd, "visible", true},
	{PClipPath, "clip-path", NotInherited, rd, "auto", true},
	{PBackdropFilter, "backdrop-filter", NotInherited, rd, "none", true},
	{PMixBlendMode, "mix-blend-mode", NotInherited, rd, "normal", true},
	{POpacity, "opacity", NotInherited, rd, "1", true},
	{PLeft, "left", NotInherited, rl, "auto", true},
	{PRight, "right", NotInherited, rl, "auto", true},
	{PTop, "top", NotInherited, rl, "auto", true},
	{PBottom, "bottom", NotInherited, rl, "auto", true},
	{PMinLeft, "min-left", NotInherited, rl, "auto", true},
	{PMaxLeft, "max-left", NotInherited, rl, "auto", true},
	{PMinRight, "min-right", NotInherited, rl, "auto", true},
	{PMaxRight, "max-right", NotInherited, rl, "auto", true},
	{PMinTop, "min-top", NotInherited, rl, "auto", true},
	{PMaxTop, "max-top", NotInherited, rl, "auto", true},
	{PMinBottom, "min-bottom", NotInherited, rl, "auto", true},
	{PMaxBottom, "max-bottom", NotInherited, rl, "auto", true},
	{PWidth, "width", NotInherited, rl, "auto", true},
	{PHeight, "height", NotInherited, rl, "auto", true},
	{PMinWidth, "min-width", NotInherited, rl, "auto", true},
	{PMaxWidth, "max-width", NotInherited, rl, "none", true},
	{PMinHeight, "min-height", NotInherited, rl, "auto", true},
	{PMaxHeight, "max-height", NotInherited, rl, "none", true},
	{PLayoutType, "layout-type", NotInherited, rl, "column", true},
	{PPosition, "position", NotInherited, rl, "static", true},
	{PChildLeft, "child-left", NotInherited, rl, "auto", true},
	{PChildRight, "child-right", NotInherited, rl, "auto", true},
	{PChildTop, "child-top", NotInherited, rl, "auto", true},
	{PChildBottom, "child-bottom", NotInherited, rl, "auto", true},
	{PRowBetween, "row-between", NotInherited, rl, "auto", true},
	{PColBetween, "col-between", NotInherited, rl, "auto", true},
	{PBorderWidth, "border-width", NotInherited, rl, "0", true},
	{PBorderColor, "border-color", NotInherited, rd, "transparent", true},
	{PBorderStyle, "border-style", NotInherited, rd, "none", true},
	{PBorderTopLeftRadius, "border-top-left-radius", NotInherited, rd, "0", true},
	{PBorderTopRightRadius, "border-top-right-radius", NotInherited, rd, "0", true},
	{PBorderBottomRightRadius, "border-bottom-right-radius", NotInherited, rd, "0", true},
	{PBorderBottomLeftRadius, "border-bottom-left-radius", NotInherited, rd, "0", true},
	{POutlineWidth, "outline-width", NotInherited, rd, "0", true},
	{POutlineColor, "outline-color", NotInherited, rd, "transparent", true},
	{POutlineOffset, "outline-offset", NotInherited, rd, "0", true},
	{PBackgroundColor, "background-color", NotInherited, rd, "transparent", true},
	{PBackgroundImage, "background-image", NotInherited, rd, "none", true},
	{PBackgroundSize, "background-size", NotInherited, rd, "auto", true},
	{PBoxShadow, "box-shadow", NotInherited, rd, "none", true},
	{PColor, "color", InheritsText, txt, "black", true},
	{PFontSize, "font-size", InheritsText, rl | Reflow, "16px", true},
	{PFontFamily, "font-family", InheritsText, rl | Reflow, "sans-serif", true},
	{PFontWeight, "font-weight", InheritsText, rl | Reflow, "normal", true},
	{PFontStyle, "font-style", InheritsText, rl | Reflow, "normal", true},
	{PFontStretch, "font-stretch", InheritsText, rl | Reflow, "normal", true},
	{PFontVariationSettings, "font-variation-settings", InheritsText, rl | Reflow, "normal", true},
	{PTextWrap, "text-wrap", NotInherited, rl | Reflow, "wrap", true},
	{PTextAlign, "text-align", NotInherited, txt, "start", true},
	{PTextOverflow, "text-overflow", NotInherited, txt, "clip", true},
	{PLineClamp, "line-clamp", NotInherited, txt, "none", true},
	{PLineHeight, "line-height", NotInherited, rl | Reflow, "normal", true},
	{PLetterSpacing, "letter-spacing", NotInherited, rl | Reflow, "normal", true},
	{PWordSpacing, "word-spacing", NotInherited, rl | Reflow, "normal", true},
	{PTextDecorationLine, "text-decoration-line", InheritsText, txt, "none", true},
	{PTextStrokeWidth, "text-stroke-width", InheritsText, txt, "0", true},
	{PTextStrokeStyle, "text-stroke-style", InheritsText, txt, "outside", true},
	{PUnderlineStyle, "underline-style", NotInherited, txt, "solid", true},
	{PUnderlineColor, "underline-color", NotInherited, txt, "currentcolor", true},
	{PSelectionColor, "selection-color", InheritsState, rd, "transparent", true},
	{PCaretColor, "caret-color", InheritsState, rd, "auto", true},
	{PCursor, "cursor", NotInherited, 0, "default", true},
	{PPointerEvents, "pointer-events", NotInherited, 0, "auto", true},
	{PTransform, "transform", NotInherited, rd, "none", true},
	{PTransformOrigin, "transform-origin", NotInherited, rd, "50% 50%", true},
	{PTranslate, "translate", NotInherited, rd, "none", true},
	{PRotate, "rotate", NotInherited, rd, "none", true},
	{PScale, "scale", NotInherited, rd, "none", true},
	{PFill, "fill", NotInherited, rd, "none", true},
	{PDisabled, "disabled", InheritsState, rd, "false", false},
}

var byKey = func() map[string]PropertyID {
	m := make(map[string]PropertyID, NumProperties)
	for _, d := range catalog {
		m[d.Key] = d.ID
	}
	return m
}()

// Describe returns the catalog entry of a property.
func (id PropertyID) Describe() Descriptor {
	return catalog[id]
}

// Key returns the CSS key of a property, e.g. "font-size".
func (id PropertyID) Key() string {
	return catalog[id].Key
}

func (id PropertyID) String() string {
	if int(id) >= NumProperties {
		return "<unknown property>"
	}
	return catalog[id].Key
}

// Effect returns the effect category of a property.
func (id PropertyID) Effect() Effect {
	return catalog[id].Effect
}

// IsInherited is true for properties which inherit from the layout parent.
func (id PropertyID) IsInherited() bool {
	return catalog[id].Inherits != NotInherited
}

// Lookup finds a property by its CSS key.
func Lookup(key string) (PropertyID, bool) {
	id, ok := byKey[strings.ToLower(strings.TrimSpace(key))]
	return id, ok
}

// All returns the descriptors of every property in cascade order.
func All() []Descriptor {
	return catalog[:]
}

// Linkable returns the IDs of all properties rules may set, in cascade order.
func Linkable() []PropertyID {
	ids := make([]PropertyID, 0, NumProperties)
	for _, d := range catalog {
		if d.Linkable {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

// Inherited returns the IDs of all properties with a given kind of
// inheritance, in cascade order.
func Inherited(kind Inheritance) []PropertyID {
	var ids []PropertyID
	for _, d := range catalog {
		if d.Inherits == kind {
			ids = append(ids, d.ID)
		}
	}
	return ids
}
