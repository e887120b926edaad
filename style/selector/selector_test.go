package selector

import (
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEl is a minimal in-memory element tree for matching tests.
type fakeEl struct {
	kind     string
	id       string
	classes  []string
	pseudo   PseudoClassFlags
	disabled bool
	parent   *fakeEl
	children []*fakeEl
}

func el(kind string, children ...*fakeEl) *fakeEl {
	e := &fakeEl{kind: kind}
	for _, ch := range children {
		ch.parent = e
		e.children = append(e.children, ch)
	}
	return e
}

func (e *fakeEl) with(id string, classes ...string) *fakeEl {
	e.id, e.classes = id, classes
	return e
}

func (e *fakeEl) index() int {
	for i, s := range e.parent.children {
		if s == e {
			return i
		}
	}
	return -1
}

func (e *fakeEl) ElementKind() string { return e.kind }
func (e *fakeEl) ID() string { return e.id }
func (e *fakeEl) PseudoClasses() PseudoClassFlags { return e.pseudo }
func (e *fakeEl) IsDisabled() bool { return e.disabled }
func (e *fakeEl) IsRoot() bool { return e.parent == nil }
func (e *fakeEl) IsEmpty() bool { return len(e.children) == 0 }

func (e *fakeEl) HasClass(c string) bool {
	for _, cl := range e.classes {
		if cl == c {
			return true
		}
	}
	return false
}

func (e *fakeEl) Parent() (Element, bool) {
	if e.parent == nil {
		return nil, false
	}
	return e.parent, true
}

func (e *fakeEl) PrevSibling() (Element, bool) {
	if e.parent == nil || e.index() == 0 {
		return nil, false
	}
	return e.parent.children[e.index()-1], true
}

func (e *fakeEl) NextSibling() (Element, bool) {
	if e.parent == nil || e.index() == len(e.parent.children)-1 {
		return nil, false
	}
	return e.parent.children[e.index()+1], true
}

func TestParseSelectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.selector")
	defer teardown()
	//
	list, err := Parse("button#ok.primary.big:hover, vstack > label + label ~ *")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "button#ok.primary.big:hover", list[0].String())
	assert.Equal(t, cascadia.Specificity{1, 3, 1}, list[0].Specificity)
	assert.Equal(t, []Combinator{Child, NextSibling, SubsequentSibling}, list[1].Combinators)
	assert.Equal(t, cascadia.Specificity{0, 0, 3}, list[1].Specificity)
	assert.True(t, list[1].HasSiblingCombinator())
	assert.True(t, list[1].IsStructural())
	assert.False(t, list[0].IsStructural())
	//
	list, err = Parse("div  .a")
	require.NoError(t, err)
	assert.Equal(t, []Combinator{Descendant}, list[0].Combinators)
	assert.True(t, list[0].HasHierarchy())
	//
	list, err = Parse("li:nth-child(2n+1):lang(de)")
	require.NoError(t, err)
	assert.True(t, list[0].IsPositional())
	assert.ErrorIs(t, list[0].Unsupported(), ErrUnsupportedSelector)
	//
	for _, bad := range []string{"", "a >", "a,", "[type=text]", ".", "a:nth-child(x)", "a )"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrSyntax, "expected syntax error for '%s'", bad)
	}
}

func TestParseNth(t *testing.T) {
	for s, expected := range map[string]Nth{
		"odd": {2, 1}, "even": {2, 0}, "3": {0, 3}, "n": {1, 0},
		"-n+3": {-1, 3}, "2n - 1": {2, -1}, "+5n": {5, 0},
	} {
		nth, err := ParseNth(s)
		require.NoError(t, err, s)
		assert.Equal(t, expected, nth, s)
	}
	assert.True(t, Nth{-1, 3}.Matches(3))
	assert.False(t, Nth{-1, 3}.Matches(4))
	assert.True(t, Nth{2, 1}.Matches(5))
	assert.False(t, Nth{2, 1}.Matches(4))
}

func TestMatchCombinatorsAndPositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.selector")
	defer teardown()
	//
	l1 := el("label").with("first", "caption")
	l2 := el("label")
	b := el("button").with("", "primary")
	panel := el("vstack", l1, l2, b).with("panel")
	root := el("window", panel)
	//
	match := func(s string, e *fakeEl) bool {
		ok, err := Match(MustParse(s)[0], e)
		require.NoError(t, err)
		return ok
	}
	assert.True(t, match("window label", l2))
	assert.True(t, match("#panel > label.caption", l1))
	assert.False(t, match("window > label", l1))
	assert.True(t, match("label + label", l2))
	assert.False(t, match("label + label", l1))
	assert.True(t, match("#first ~ button", b))
	assert.True(t, match("label:first-child", l1))
	assert.True(t, match(":last-child", b))
	assert.True(t, match("vstack:only-child", panel))
	assert.True(t, match(":nth-child(2)", l2))
	assert.True(t, match(":nth-last-child(3)", l1))
	assert.True(t, match(":root", root))
	assert.True(t, match("label:empty", l1))
	assert.False(t, match(":empty", panel))
	assert.True(t, match("LABEL", l1), "element kinds compare case-insensitively")
	assert.False(t, match("#First", l1), "ids are case-sensitive")
}

func TestMatchStatePseudoClasses(t *testing.T) {
	b := el("button")
	el("window", b)
	sel := MustParse("button:hover:focus-visible")[0]
	ok, _ := Match(sel, b)
	assert.False(t, ok)
	b.pseudo = Hover | FocusVisible | Checked
	ok, _ = Match(sel, b)
	assert.True(t, ok)
	ok, _ = Match(MustParse(":enabled")[0], b)
	assert.True(t, ok)
	b.disabled = true
	ok, _ = Match(MustParse(":disabled")[0], b)
	assert.True(t, ok)
	assert.Equal(t, ":hover:focus-visible:checked", b.pseudo.String())
	//
	_, err := Match(MustParse("button:dir(ltr)")[0], b)
	assert.ErrorIs(t, err, ErrUnsupportedSelector)
	_, err = Match(MustParse("button:frobnicated")[0], b)
	assert.ErrorIs(t, err, ErrUnsupportedSelector)
}

func TestListSpecificity(t *testing.T) {
	l1 := el("label").with("x", "a")
	el("window", l1)
	list := MustParse("label, .a, #x, button#y")
	ok, spec, err := list.MatchWithSpecificity(l1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, cascadia.Specificity{1, 0, 0}, spec, "highest matching selector wins")
	assert.Less(t, SpecificityKey(cascadia.Specificity{0, 9, 9}), SpecificityKey(cascadia.Specificity{1, 0, 0}))
}

func TestSpecificityKeySaturates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.selector")
	defer teardown()
	//
	many := SpecificityKey(cascadia.Specificity{0, 300, 0})
	assert.Less(t, many, SpecificityKey(cascadia.Specificity{1, 0, 0}), "class count must not carry into the id lane")
	assert.Equal(t, SpecificityKey(cascadia.Specificity{0, 255, 0}), many)
	assert.Greater(t, many, SpecificityKey(cascadia.Specificity{0, 254, 9}))
	assert.Equal(t, uint32(0x0a0203), SpecificityKey(cascadia.Specificity{10, 2, 3}))
}
