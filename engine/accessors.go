package engine

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/restyle/maybe"
	"github.com/npillmayer/restyle/style"
	"github.com/npillmayer/restyle/style/css"
	"github.com/npillmayer/restyle/tree"
)

// Property returns the resolved value of a property of e. It panics if e is
// not part of the tree; use Lookup for an error return instead.
func (cx *Context) Property(e tree.Entity, id style.PropertyID) style.Property {
	v, err := cx.Lookup(e, id)
	if err != nil {
		panic(err)
	}
	return v
}

// Lookup returns the resolved value of a property of e.
func (cx *Context) Lookup(e tree.Entity, id style.PropertyID) (style.Property, error) {
	v, _, err := cx.LookupTier(e, id)
	return v, err
}

// LookupTier returns the resolved value of a property of e together with the
// tier it stems from.
func (cx *Context) LookupTier(e tree.Entity, id style.PropertyID) (style.Property, style.Tier, error) {
	if err := cx.check(e); err != nil {
		return style.NullStyle, style.TierDefault, err
	}
	if int(id) >= style.NumProperties {
		return style.NullStyle, style.TierDefault, fmt.Errorf("invalid property id %d", id)
	}
	v, tier := cx.store.Resolve(e, id)
	return v, tier, nil
}

// IsDisabled returns the resolved disabled state of e.
func (cx *Context) IsDisabled(e tree.Entity) bool {
	return cx.store.IsDisabled(e)
}

// Length returns a length-valued property of e as a dimension. Values which
// are not lengths yield Nothing.
func (cx *Context) Length(e tree.Entity, id style.PropertyID) maybe.Maybe[css.DimenT] {
	v, err := cx.Lookup(e, id)
	if err != nil {
		return maybe.Nothing[css.DimenT]()
	}
	d, err := css.ParseDimen(v)
	return maybe.FromOk(d, err == nil)
}

// Color returns a color-valued property of e. Values which are not colors
// yield Nothing.
func (cx *Context) Color(e tree.Entity, id style.PropertyID) maybe.Maybe[color.Color] {
	v, err := cx.Lookup(e, id)
	if err != nil {
		return maybe.Nothing[color.Color]()
	}
	c, err := v.Color()
	return maybe.FromOk(c, err == nil)
}

// Display returns the display mode of e.
func (cx *Context) Display(e tree.Entity) maybe.Maybe[css.DisplayMode] {
	v, err := cx.Lookup(e, style.PDisplay)
	if err != nil {
		return maybe.Nothing[css.DisplayMode]()
	}
	d, err := css.ParseDisplay(v)
	return maybe.FromOk(d, err == nil)
}

// LineHeight returns the line height of e.
func (cx *Context) LineHeight(e tree.Entity) maybe.Maybe[css.LineHeightT] {
	v, err := cx.Lookup(e, style.PLineHeight)
	if err != nil {
		return maybe.Nothing[css.LineHeightT]()
	}
	lh, err := css.ParseLineHeight(v)
	return maybe.FromOk(lh, err == nil)
}

// Position returns the position of e, together with its offsets.
func (cx *Context) Position(e tree.Entity) maybe.Maybe[css.PositionT] {
	v, err := cx.Lookup(e, style.PPosition)
	if err != nil {
		return maybe.Nothing[css.PositionT]()
	}
	var offsets [4]style.Property
	for dir, id := range css.OffsetProperties {
		offsets[dir], _ = cx.store.Resolve(e, id)
	}
	p, err := css.ParsePosition(v, offsets)
	return maybe.FromOk(p, err == nil)
}
