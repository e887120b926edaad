package styledtree

import (
	"testing"

	"github.com/npillmayer/restyle/engine"
	"github.com/npillmayer/restyle/style"
	"github.com/npillmayer/restyle/style/cssom"
	"github.com/npillmayer/restyle/style/cssom/douceuradapter"
	"github.com/npillmayer/restyle/style/selector"
	"github.com/npillmayer/restyle/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var myhtml = `
<html><head>
<style>
  .panel label { color: blue }
  button:disabled { color: gray }
  input:checked { background-color: green }
</style>
</head><body>
  <div class="panel main" id="p1" style="font-size: 20px; border-radius: 3px">
    <label>Name</label>
    <span data-layout="transparent"><label id="l2">Mail</label></span>
  </div>
  <form disabled><button id="ok">OK</button></form>
  <input id="opt" type="checkbox" checked required>
</body></html>
`

func buildDoc(t *testing.T) *Document {
	t.Helper()
	cx, err := engine.New(engine.DefaultConfig())
	require.NoError(t, err)
	doc, err := Parse(cx, myhtml)
	require.NoError(t, err)
	sheets, err := douceuradapter.ExtractStyleElements(doc.HTMLNode(tree.Root))
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	rs, err := cssom.Compile(sheets[0])
	require.NoError(t, err)
	require.NoError(t, cx.SetRuleSet(rs))
	_, err = cx.Restyle()
	require.NoError(t, err)
	return doc
}

func TestBuildStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.styledtree")
	defer teardown()
	//
	doc := buildDoc(t)
	cx := doc.Context()
	assert.Equal(t, "html", cx.Store().Kind(tree.Root))
	children := cx.Tree().Children(tree.Root)
	require.Len(t, children, 1, "head produces no entity")
	assert.Equal(t, "body", cx.Store().Kind(children[0]))
	//
	panel, ok := doc.Find("p1")
	require.True(t, ok)
	assert.Equal(t, "div", cx.Store().Kind(panel))
	assert.Equal(t, []string{"main", "panel"}, cx.Store().Classes(panel))
	h := doc.HTMLNode(panel)
	require.NotNil(t, h)
	e, ok := doc.Entity(h)
	assert.True(t, ok)
	assert.Equal(t, panel, e)
}

func TestBuildAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.styledtree")
	defer teardown()
	//
	doc := buildDoc(t)
	cx := doc.Context()
	panel, _ := doc.Find("p1")
	assert.Equal(t, style.Property("20px"), cx.Property(panel, style.PFontSize))
	assert.Equal(t, style.Property("3px"), cx.Property(panel, style.PBorderBottomLeftRadius))
	//
	l2, ok := doc.Find("l2")
	require.True(t, ok)
	wrapper, _ := cx.Tree().Parent(l2)
	assert.True(t, cx.Tree().IsTransparent(wrapper))
	assert.Equal(t, style.Property("blue"), cx.Property(l2, style.PColor))
	assert.Equal(t, style.Property("20px"), cx.Property(l2, style.PFontSize), "inherited inline value")
	//
	ok1, _ := doc.Find("ok")
	assert.True(t, cx.IsDisabled(ok1))
	assert.Equal(t, style.Property("gray"), cx.Property(ok1, style.PColor))
	//
	opt, _ := doc.Find("opt")
	assert.True(t, cx.Store().PseudoClasses(opt).Has(selector.Checked|selector.Required))
	assert.Equal(t, style.Property("green"), cx.Property(opt, style.PBackgroundColor))
}

func TestBuildReportsBadStyles(t *testing.T) {
	cx, err := engine.New(engine.DefaultConfig())
	require.NoError(t, err)
	doc, err := Parse(cx, `<div id="x" style="colour: red; color: blue"></div>`)
	assert.ErrorIs(t, err, cssom.ErrUnknownProperty)
	require.NotNil(t, doc)
	x, ok := doc.Find("x")
	require.True(t, ok)
	_, err = cx.Restyle()
	require.NoError(t, err)
	assert.Equal(t, style.Property("blue"), cx.Property(x, style.PColor))
}

func TestBuildUnterminatedStyleAttribute(t *testing.T) {
	cx, err := engine.New(engine.DefaultConfig())
	require.NoError(t, err)
	sheet, err := douceuradapter.Parse(`div { color: red; width: 10px }`)
	require.NoError(t, err)
	rs, err := cssom.Compile(sheet)
	require.NoError(t, err)
	require.NoError(t, cx.SetRuleSet(rs))
	doc, err := Parse(cx, `<div id="a" style="width: 20px"></div><div id="b" style="font-size: 12px"></div>`)
	require.NoError(t, err)
	_, err = cx.Restyle()
	require.NoError(t, err)
	//
	a, _ := doc.Find("a")
	assert.Equal(t, style.Property("20px"), cx.Property(a, style.PWidth))
	assert.Equal(t, style.Property("red"), cx.Property(a, style.PColor))
	b, _ := doc.Find("b")
	assert.Equal(t, style.Property("12px"), cx.Property(b, style.PFontSize))
	assert.Equal(t, style.Property("red"), cx.Property(b, style.PColor), "rule must not be overridden")
}
