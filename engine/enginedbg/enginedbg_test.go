package enginedbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/restyle/engine"
	"github.com/npillmayer/restyle/style"
	"github.com/npillmayer/restyle/style/cssom"
	"github.com/npillmayer/restyle/style/cssom/douceuradapter"
	"github.com/npillmayer/restyle/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func styledContext(t *testing.T) (*engine.Context, tree.Entity) {
	cx, err := engine.New(engine.DefaultConfig())
	require.NoError(t, err)
	sheet, err := douceuradapter.Parse(`.card { color: red }`)
	require.NoError(t, err)
	rs, err := cssom.Compile(sheet)
	require.NoError(t, err)
	require.NoError(t, cx.SetRuleSet(rs))
	card, err := cx.Add(tree.Root, "div")
	require.NoError(t, err)
	require.NoError(t, cx.AddClass(card, "card"))
	require.NoError(t, cx.SetID(card, "c1"))
	label, err := cx.Add(card, "label")
	require.NoError(t, err)
	require.NoError(t, cx.SetInline(label, style.PWidth, "10px"))
	_, err = cx.Restyle()
	require.NoError(t, err)
	return cx, label
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.engine")
	defer teardown()
	//
	cx, _ := styledContext(t)
	out := Dump(cx)
	t.Logf("\n%s", out)
	assert.Contains(t, out, "div#c1.card")
	assert.Contains(t, out, "color: red (shared)")
	assert.Contains(t, out, "color: red (inherited(shared))")
	assert.Contains(t, out, "width: 10px (inline)")
	//
	out = Dump(cx, style.PWidth)
	assert.NotContains(t, out, "color")
}

func TestToGraphViz(t *testing.T) {
	cx, label := styledContext(t)
	require.NoError(t, cx.SetTransparent(label, true))
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(cx, &buf))
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `"div#c1.card"`)
	assert.Contains(t, dot, "style=dashed", "transparent entity")
	assert.Contains(t, dot, "<td>red</td>")
}
