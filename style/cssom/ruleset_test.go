package cssom_test

import (
	"testing"

	"github.com/npillmayer/restyle/style"
	"github.com/npillmayer/restyle/style/cssom"
	"github.com/npillmayer/restyle/style/cssom/douceuradapter"
	"github.com/npillmayer/restyle/style/selector"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func compile(t *testing.T, text string) (*cssom.RuleSet, error) {
	t.Helper()
	sheet, err := douceuradapter.Parse(text)
	require.NoError(t, err)
	return cssom.Compile(sheet)
}

func TestCompileRuleSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.cssom")
	defer teardown()
	//
	rs, err := compile(t, `
		label { color: blue; font-size: 12px; color: red }
		vstack > label, .x { border-radius: 2px 4px }
		label:nth-child(odd) { background-color: gray }
	`)
	require.NoError(t, err)
	require.Equal(t, 3, rs.Len())
	r0, _ := rs.Rule(0)
	v, ok := r0.Value(style.PColor)
	assert.True(t, ok)
	assert.Equal(t, style.Property("red"), v, "later declaration wins")
	assert.Len(t, r0.Declarations(), 2)
	r1, _ := rs.Rule(1)
	v, _ = r1.Value(style.PBorderBottomLeftRadius)
	assert.Equal(t, style.Property("4px"), v)
	assert.True(t, rs.HasHierarchy())
	assert.True(t, rs.HasSiblingSelectors())
	require.Len(t, rs.Structural(), 1)
	assert.Equal(t, cssom.RuleID(2), rs.Structural()[0].ID)
	assert.True(t, rs.IsStructural(2))
	assert.False(t, rs.IsStructural(0))
}

func TestCompileReportsAllProblems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.cssom")
	defer teardown()
	//
	rs, err := compile(t, `
		label:lang(de) { color: blue }
		button { frobnication: 3; color: green }
		a[href] { color: red }
		span:dir(rtl) { color: black }
	`)
	require.Error(t, err)
	errs := multierr.Errors(err)
	assert.Len(t, errs, 4)
	assert.ErrorIs(t, err, selector.ErrUnsupportedSelector)
	assert.ErrorIs(t, err, cssom.ErrUnknownProperty)
	assert.ErrorIs(t, err, selector.ErrSyntax)
	assert.Equal(t, 3, rs.Len(), "rule with syntax error is dropped")
	assert.Error(t, rs.Validate())
	r1, _ := rs.Rule(1)
	assert.Len(t, r1.Declarations(), 1)
}

func TestDisabledIsNotDeclarable(t *testing.T) {
	_, err := compile(t, `button { disabled: true }`)
	assert.ErrorIs(t, err, cssom.ErrUnknownProperty)
}
