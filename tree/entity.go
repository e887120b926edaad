package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"math"
)

// Entity is an opaque handle to a node of the tree. The upper 32 bits hold a
// generation counter, the lower 32 bits an index into the arena.
type Entity uint64

// Null is the invalid entity. It is never alive.
const Null Entity = math.MaxUint64

// Root is the handle of the root entity. The root is created together with
// the tree and cannot be destroyed.
const Root Entity = 0

func newEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the arena index of an entity.
func (e Entity) Index() uint32 {
	return uint32(e & 0xffffffff)
}

// Generation returns the generation counter of an entity.
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// IsNull is true for the invalid entity.
func (e Entity) IsNull() bool {
	return e == Null
}

func (e Entity) String() string {
	switch e {
	case Null:
		return "null"
	case Root:
		return "root"
	}
	if e.Generation() == 0 {
		return fmt.Sprintf("e%d", e.Index())
	}
	return fmt.Sprintf("e%dv%d", e.Index(), e.Generation())
}

// --- ID management ---------------------------------------------------------

// idManager hands out entity handles. Destroyed indices go to a free list
// and are re-issued with an incremented generation.
type idManager struct {
	generations []uint32
	free        []uint32
}

func (m *idManager) create() Entity {
	if n := len(m.free); n > 0 {
		index := m.free[n-1]
		m.free = m.free[:n-1]
		return newEntity(index, m.generations[index])
	}
	index := uint32(len(m.generations))
	m.generations = append(m.generations, 0)
	return newEntity(index, 0)
}

func (m *idManager) destroy(e Entity) {
	index := e.Index()
	m.generations[index]++
	m.free = append(m.free, index)
}

func (m *idManager) isCurrent(e Entity) bool {
	if e == Null {
		return false
	}
	index := e.Index()
	return int(index) < len(m.generations) && m.generations[index] == e.Generation()
}
