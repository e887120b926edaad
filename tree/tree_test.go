package tree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTree creates
//
//	root
//	 ├── a
//	 │   ├── a1
//	 │   └── a2
//	 └── b
func buildTree(t *testing.T) (*Tree, map[string]Entity) {
	t.Helper()
	tr := New()
	m := map[string]Entity{"root": Root}
	add := func(name, parent string) {
		e, err := tr.Create(m[parent])
		require.NoError(t, err)
		m[name] = e
	}
	add("a", "root")
	add("b", "root")
	add("a1", "a")
	add("a2", "a")
	return tr, m
}

func TestEntityHandle(t *testing.T) {
	e := newEntity(7, 3)
	if e.Index() != 7 || e.Generation() != 3 {
		t.Errorf("expected index 7 / generation 3, have %d / %d", e.Index(), e.Generation())
	}
	if Root.String() != "root" || Null.String() != "null" {
		t.Errorf("unexpected names for root/null: %s/%s", Root, Null)
	}
	if !Null.IsNull() {
		t.Error("expected Null to be null")
	}
}

func TestCreateAndRelations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.tree")
	defer teardown()
	//
	tr, m := buildTree(t)
	assert.Equal(t, 5, tr.Len())
	assert.Equal(t, []Entity{m["a"], m["b"]}, tr.Children(Root))
	p, ok := tr.Parent(m["a2"])
	assert.True(t, ok)
	assert.Equal(t, m["a"], p)
	_, ok = tr.Parent(Root)
	assert.False(t, ok, "root has no parent")
	assert.Equal(t, 1, tr.IndexOfChild(m["a2"]))
	assert.Equal(t, 2, tr.ChildCount(m["a"]))
	assert.True(t, tr.IsAncestorOf(Root, m["a1"]))
	assert.False(t, tr.IsAncestorOf(m["b"], m["a1"]))
}

func TestDestroyRecyclesWithNewGeneration(t *testing.T) {
	tr, m := buildTree(t)
	err := tr.Destroy(m["a"])
	assert.ErrorIs(t, err, ErrHasChildren)
	require.NoError(t, tr.Destroy(m["b"]))
	assert.False(t, tr.IsAlive(m["b"]))
	e, err := tr.Create(Root)
	require.NoError(t, err)
	assert.Equal(t, m["b"].Index(), e.Index(), "index should be recycled")
	assert.NotEqual(t, m["b"], e, "generation should differ")
	assert.False(t, tr.IsAlive(m["b"]), "stale handle must stay dead")
	assert.ErrorIs(t, tr.Destroy(Root), ErrRootRemoval)
}

func TestReparent(t *testing.T) {
	tr, m := buildTree(t)
	require.NoError(t, tr.Reparent(m["a1"], m["b"]))
	assert.Equal(t, []Entity{m["a2"]}, tr.Children(m["a"]))
	assert.Equal(t, []Entity{m["a1"]}, tr.Children(m["b"]))
	assert.ErrorIs(t, tr.Reparent(m["a"], m["a2"]), ErrCycle)
	assert.ErrorIs(t, tr.Reparent(Root, m["a"]), ErrRootRemoval)
}

func TestBreadthFirstAndPreOrder(t *testing.T) {
	tr, m := buildTree(t)
	bfs := Collect(tr.BreadthFirst())
	assert.Equal(t, []Entity{Root, m["a"], m["b"], m["a1"], m["a2"]}, bfs)
	pre := Collect(tr.PreOrder())
	assert.Equal(t, []Entity{Root, m["a"], m["a1"], m["a2"], m["b"]}, pre)
	branch := Collect(tr.Branch(m["a"]))
	assert.Equal(t, []Entity{m["a"], m["a1"], m["a2"]}, branch)
}

func TestLayoutRelationsSkipTransparentWrappers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.tree")
	defer teardown()
	//
	// root ── x ── w(transparent) ── y, z ; x ── v
	tr := New()
	x, _ := tr.Create(Root)
	w, _ := tr.Create(x)
	y, _ := tr.Create(w)
	z, _ := tr.Create(w)
	v, _ := tr.Create(x)
	require.NoError(t, tr.SetTransparent(w, true))
	//
	lp, ok := tr.LayoutParent(y)
	assert.True(t, ok)
	assert.Equal(t, x, lp, "layout parent of y should skip wrapper w")
	next, ok := tr.NextLayoutSibling(z)
	assert.True(t, ok)
	assert.Equal(t, v, next, "z should be followed by v in layout order")
	prev, ok := tr.PrevLayoutSibling(v)
	assert.True(t, ok)
	assert.Equal(t, z, prev)
	assert.True(t, tr.IsFirstLayoutChild(y))
	assert.False(t, tr.IsLastLayoutChild(z))
	assert.True(t, tr.IsLastLayoutChild(v))
	assert.Equal(t, []Entity{y, z, v}, tr.LayoutSiblings(z))
	assert.Equal(t, []Entity{x, Root}, Collect(tr.LayoutAncestors(y)))
}
