package css_test

import (
	"testing"

	"github.com/npillmayer/restyle/style"
	"github.com/npillmayer/restyle/style/css"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDisplay(t *testing.T) {
	d, err := css.ParseDisplay("inline-flex")
	require.NoError(t, err)
	assert.True(t, d.Contains(css.FlexMode))
	assert.Equal(t, css.InlineMode, d.Outer())
	d, err = css.ParseDisplay(" none ")
	require.NoError(t, err)
	assert.True(t, d.IsNone())
	assert.Equal(t, "DisplayNone", d.String())
	_, err = css.ParseDisplay("ruby")
	assert.Error(t, err)
	d, _ = css.ParseDisplay(style.DisplayForElementKind("label"))
	assert.Equal(t, "InlineMode InnerInlineMode", d.FullString())
}

func TestParseLineHeight(t *testing.T) {
	lh, err := css.ParseLineHeight("normal")
	require.NoError(t, err)
	assert.True(t, lh.IsNormal())
	lh, err = css.ParseLineHeight("1.2")
	require.NoError(t, err)
	x, ok := lh.Multiple()
	assert.True(t, ok)
	assert.Equal(t, 1.2, x)
	lh, err = css.ParseLineHeight("20pt")
	require.NoError(t, err)
	d, ok := lh.Length()
	assert.True(t, ok)
	assert.Equal(t, css.JustDimen(20*dimen.PT), d)
	_, err = css.ParseLineHeight("-1")
	assert.Error(t, err)
}

func TestPositionMatch(t *testing.T) {
	p, err := css.ParsePosition("absolute", [4]style.Property{"10pt", "auto", "auto", "5pt"})
	require.NoError(t, err)
	var o []css.PositionOffset
	switch m := p.Match(); m {
	case m.Absolute(&o):
		assert.Equal(t, css.JustDimen(10*dimen.PT), o[css.Top].Dim)
		assert.Equal(t, css.Auto(), o[css.Right].Dim)
		assert.Equal(t, css.JustDimen(5*dimen.PT), o[css.Left].Dim)
	default:
		t.Errorf("expected an absolute position, have %v", p)
	}
	static, err := css.ParsePosition("static", [4]style.Property{})
	require.NoError(t, err)
	switch m := static.Match(); m {
	case m.IsKind(css.Static()):
	default:
		t.Errorf("expected position to match kind(static), isn't: %v", static)
	}
	_, err = css.ParsePosition("relative", [4]style.Property{"x", "auto", "auto", "auto"})
	assert.Error(t, err)
}
