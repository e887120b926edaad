package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/restyle/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestParseStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.cssom")
	defer teardown()
	//
	sheet, err := Parse(`
		@media print { label { color: black } }
		label, .a { color: red !important; font-size: 12pt }
	`)
	require.NoError(t, err)
	rules := sheet.Rules()
	require.Len(t, rules, 1, "at-rules are skipped")
	r := rules[0]
	assert.Equal(t, "label, .a", r.Selector())
	assert.Equal(t, []string{"color", "font-size"}, r.Properties())
	assert.Equal(t, style.Property("12pt"), r.Value("font-size"))
	assert.True(t, r.IsImportant("color"))
	assert.False(t, r.IsImportant("font-size"))
	//
	other, err := Parse(`button { color: blue }`)
	require.NoError(t, err)
	sheet.AppendRules(other)
	assert.Len(t, sheet.Rules(), 2)
	assert.False(t, sheet.Empty())
}

func TestParseDeclarations(t *testing.T) {
	kvs, err := ParseDeclarations("Color: red; font-family: Noto Sans")
	require.NoError(t, err)
	assert.Equal(t, []style.KeyValue{{"color", "red"}, {"font-family", "Noto Sans"}}, kvs)
}

func TestParseDeclarationsTermination(t *testing.T) {
	for _, text := range []string{
		"color: blue",
		"color: blue;",
		"  color: blue ;  ",
	} {
		kvs, err := ParseDeclarations(text)
		require.NoError(t, err)
		assert.Equal(t, []style.KeyValue{{"color", "blue"}}, kvs, text)
	}
	kvs, err := ParseDeclarations("color: ; width: 3px")
	require.NoError(t, err)
	assert.Equal(t, []style.KeyValue{{"width", "3px"}}, kvs, "empty values are skipped")
	kvs, err = ParseDeclarations("")
	require.NoError(t, err)
	assert.Empty(t, kvs)
}

func TestExtractStyleElements(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><head><style>p { color: red }</style></head>
	<body><p>x</p><style>div { color: blue }</style></body></html>`))
	require.NoError(t, err)
	sheets, err := ExtractStyleElements(doc)
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	assert.Equal(t, "div", sheets[1].Rules()[0].Selector())
}
