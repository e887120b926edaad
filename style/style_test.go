package style

import (
	"image/color"
	"testing"

	"github.com/npillmayer/restyle/style/selector"
	"github.com/npillmayer/restyle/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogOrderAndLookup(t *testing.T) {
	for i, d := range All() {
		if int(d.ID) != i {
			t.Fatalf("catalog entry %d (%s) has ID %d", i, d.Key, d.ID)
		}
	}
	id, ok := Lookup("Font-Size")
	require.True(t, ok)
	assert.Equal(t, PFontSize, id)
	assert.True(t, PFontSize.IsInherited())
	assert.False(t, PBackgroundColor.IsInherited())
	assert.Equal(t, Redraw|Reflow, PColor.Effect())
	assert.Equal(t, "relayout|redraw", PWidth.Effect().String())
	_, ok = Lookup("speak-as")
	assert.False(t, ok)
	for _, id := range Linkable() {
		if id == PDisabled {
			t.Error("disabled must not be linkable")
		}
	}
}

func TestSplitCompoundProperty(t *testing.T) {
	kv, err := SplitCompoundProperty("border-radius", "1px 2px")
	require.NoError(t, err)
	assert.Equal(t, []KeyValue{
		{"border-top-left-radius", "1px"},
		{"border-top-right-radius", "2px"},
		{"border-bottom-right-radius", "1px"},
		{"border-bottom-left-radius", "2px"},
	}, kv)
	kv, err = SplitCompoundProperty("child-space", "1px 2px 3px")
	require.NoError(t, err)
	assert.Equal(t, KeyValue{"child-left", "2px"}, kv[3])
	kv, err = SplitCompoundProperty("overflow", "hidden")
	require.NoError(t, err)
	assert.Equal(t, Property("hidden"), kv[1].Value)
	_, err = SplitCompoundProperty("margin", "1px")
	assert.Error(t, err)
	_, err = SplitCompoundProperty("inset", "1 2 3 4 5")
	assert.Error(t, err)
}

func TestColorConversion(t *testing.T) {
	c, err := Property("red").Color()
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", ColorString(c))
	c, err = Property("#0f08").Color()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0xff, 0, 0x88}, c)
	c, err = Property("rgb(1, 2, 3)").Color()
	require.NoError(t, err)
	assert.Equal(t, "#010203", ColorString(c))
	_, err = Property("currentcolor").Color()
	assert.ErrorIs(t, err, ErrNotAColor)
	_, err = Property("#12").Color()
	assert.ErrorIs(t, err, ErrNotAColor)
}

func TestStyleSetTiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.style")
	defer teardown()
	//
	parent, child := tree.Entity(1), tree.Entity(2)
	s := NewStyleSet(PColor)
	_, _, ok := s.Get(child)
	assert.False(t, ok)
	//
	assert.True(t, s.SetShared(parent, "blue", 1))
	assert.False(t, s.SetShared(parent, "blue", 2), "same value from another rule is no change")
	assert.False(t, s.InheritInline(child, parent), "shared-sourced value must not inherit inline")
	assert.True(t, s.InheritShared(child, parent))
	v, tier, _ := s.Get(child)
	assert.Equal(t, Property("blue"), v)
	assert.Equal(t, TierInheritedShared, tier)
	//
	assert.True(t, s.SetInline(parent, "red"))
	assert.True(t, s.InheritInline(child, parent))
	v, tier, _ = s.Get(child)
	assert.Equal(t, Property("red"), v)
	assert.Equal(t, TierInheritedInline, tier)
	//
	assert.True(t, s.ClearInline(parent))
	assert.True(t, s.InheritInline(child, parent), "stale inline copy has to go")
	_, _, ok = s.Get(child)
	assert.False(t, ok)
	//
	s.SetInline(child, "green")
	assert.False(t, s.InheritShared(child, parent), "own inline value wins")
	v, tier, _ = s.Get(child)
	assert.Equal(t, Property("green"), v)
	assert.Equal(t, TierInline, tier)
	s.Remove(child)
	assert.Equal(t, 1, s.Len())
}

func TestStoreResolveAndIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.style")
	defer teardown()
	//
	d := NewDefaults()
	require.NoError(t, d.Override("color", "navy"))
	assert.Error(t, d.Override("no-such-thing", "x"))
	st := NewStore(d)
	e := tree.Entity(5)
	st.SetKind(e, "label")
	v, tier := st.Resolve(e, PDisplay)
	assert.Equal(t, Property("inline"), v)
	assert.Equal(t, TierDefault, tier)
	v, _ = st.Resolve(e, PColor)
	assert.Equal(t, Property("navy"), v)
	//
	assert.True(t, st.AddClass(e, "b"))
	assert.True(t, st.AddClass(e, "a"))
	assert.False(t, st.AddClass(e, "a"))
	assert.Equal(t, []string{"a", "b"}, st.Classes(e))
	assert.True(t, st.SetPseudoClass(e, selector.Hover|selector.Focus, true))
	assert.False(t, st.SetPseudoClass(e, selector.Hover, true))
	assert.True(t, st.SetPseudoClass(e, selector.Hover, false))
	assert.Equal(t, selector.Focus, st.PseudoClasses(e))
	st.Set(PDisabled).SetInline(e, "true")
	assert.True(t, st.IsDisabled(e))
	st.SetID(e, "x")
	//
	st.Remove(e)
	assert.False(t, st.Holds(e))
}
