package css_test

import (
	"testing"

	"github.com/npillmayer/restyle/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimenMatch(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %v", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	auto := css.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(css.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	pcnt := css.Percentage(percent.FromInt(80))
	var p percent.Percent
	switch m := pcnt.Match(); m {
	case m.Percentage(&p):
		t.Logf("percent = %v", p)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
}

func TestDimenPattern(t *testing.T) {
	d, err := css.ParseDimen("10pt")
	require.NoError(t, err)
	var du dimen.DU
	e := css.DimenPattern[dimen.DU](d)
	distance := e.OneOf(css.DimenPatterns[dimen.DU]{
		Just:    e.With(&du).Const(2 * du),
		Auto:    0,
		Default: -1,
	})
	if distance != 2*10*dimen.PT {
		t.Errorf("expected distance to be %v, isn't: %#v", 20*dimen.PT, distance)
	}
}

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.css")
	defer teardown()
	//
	d, err := css.ParseDimen("16px")
	require.NoError(t, err)
	assert.Equal(t, css.JustDimen(12*dimen.PT), d)
	d, err = css.ParseDimen("16")
	require.NoError(t, err)
	assert.Equal(t, css.JustDimen(12*dimen.PT), d, "unitless numbers are pixels")
	d, err = css.ParseDimen("1in")
	require.NoError(t, err)
	assert.Equal(t, css.JustDimen(72*dimen.PT), d)
	d, err = css.ParseDimen("50%")
	require.NoError(t, err)
	assert.Equal(t, css.Percentage(percent.FromInt(50)), d)
	d, err = css.ParseDimen("1.5em")
	require.NoError(t, err)
	assert.True(t, d.IsRelative())
	assert.Equal(t, 1.5, d.Factor())
	assert.Equal(t, "1.5em", d.String())
	d, err = css.ParseDimen("none")
	require.NoError(t, err)
	assert.Equal(t, "none", d.String())
	_, err = css.ParseDimen("12furlongs")
	assert.Error(t, err)
	_, err = css.ParseDimen("")
	assert.Error(t, err)
}
