package maybe_test

import (
	"strconv"
	"testing"

	. "github.com/npillmayer/restyle/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Errorf("expected Nothing, got Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if xx := Just(7).WithDefault(100); xx != 7 {
		t.Errorf("expected Just(7) to have value 7, is %d", xx)
	}
	if yy := Nothing[int]().WithDefault(100); yy != 100 {
		t.Errorf("expected Nothing to default to 100, is %d", yy)
	}
}

func TestMaybeMapAndThen(t *testing.T) {
	xx := Just(7).Map(func(n int) int { return n * 2 })
	if v, ok := xx.Get(); !ok || v != 14 {
		t.Errorf("expected Just(14), have %v/%v", v, ok)
	}
	s := AndThen(func(n int) Maybe[string] {
		return Just(strconv.Itoa(n))
	}, xx)
	if s.WithDefault("") != "14" {
		t.Errorf("expected AndThen to produce \"14\", have %q", s.WithDefault(""))
	}
	if !AndThen(func(n int) Maybe[string] { return Just("x") }, Nothing[int]()).IsNothing() {
		t.Error("expected AndThen on Nothing to stay Nothing")
	}
}

func TestFromOk(t *testing.T) {
	m := map[string]int{"a": 1}
	v, ok := m["a"]
	if FromOk(v, ok).IsNothing() {
		t.Error("expected FromOk(1, true) to be Just")
	}
	v, ok = m["b"]
	if !FromOk(v, ok).IsNothing() {
		t.Error("expected FromOk(0, false) to be Nothing")
	}
}
