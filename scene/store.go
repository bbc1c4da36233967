// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"cmp"
	"iter"

	"github.com/benbjohnson/immutable"

	"github.com/gogpu/lipuma"
)

// Store is a persistent, draw-ordered collection of RenderObjects.
//
// The zero Store is empty and ready to use. All mutating methods return a
// new Store; the receiver keeps describing the scene as it was.
type Store struct {
	objects *immutable.SortedMap[drawKey, RenderObject]
	index   *immutable.Map[ObjectID, Order]
	lastID  ObjectID
	version uint64
}

// NewStore returns an empty store.
func NewStore() Store {
	return Store{
		objects: immutable.NewSortedMap[drawKey, RenderObject](drawKeyComparer{}),
		index:   immutable.NewMap[ObjectID, Order](idHasher{}),
	}
}

// init returns s with its maps allocated.
func (s Store) init() Store {
	if s.objects == nil {
		s.objects = immutable.NewSortedMap[drawKey, RenderObject](drawKeyComparer{})
	}
	if s.index == nil {
		s.index = immutable.NewMap[ObjectID, Order](idHasher{})
	}
	return s
}

// Len returns the number of objects.
func (s Store) Len() int {
	if s.objects == nil {
		return 0
	}
	return s.objects.Len()
}

// Version increases on every effective mutation. Two stores with the same
// lineage and version hold the same objects.
func (s Store) Version() uint64 {
	return s.version
}

// MaxOrder returns the highest draw order in the store, or NoOrder when
// the store is empty.
func (s Store) MaxOrder() Order {
	if s.Len() == 0 {
		return NoOrder
	}
	itr := s.objects.Iterator()
	itr.Last()
	k, _, ok := itr.Prev()
	if !ok {
		return NoOrder
	}
	return k.order
}

// Insert adds obj and returns the new store together with the object as
// stored. The object always receives an ObjectID not yet used in the
// lineage of s; snapshots forked from s allocate IDs independently. When
// obj.Order is NoOrder it is placed on top of every existing object. A
// zero Transform is replaced by the identity.
func (s Store) Insert(obj RenderObject) (Store, RenderObject) {
	s = s.init()
	s.lastID++
	obj.ID = s.lastID
	if obj.Order == NoOrder {
		obj.Order = s.MaxOrder() + 1
	}
	if obj.Transform == (lipuma.Matrix{}) {
		obj.Transform = lipuma.Identity()
	}
	s.objects = s.objects.Set(obj.key(), obj)
	s.index = s.index.Set(obj.ID, obj.Order)
	s.version++
	return s, obj
}

// Get returns the object with the given identity.
func (s Store) Get(id ObjectID) (RenderObject, bool) {
	if s.index == nil {
		return RenderObject{}, false
	}
	order, ok := s.index.Get(id)
	if !ok {
		return RenderObject{}, false
	}
	return s.objects.Get(drawKey{order: order, id: id})
}

// Contains reports whether an object with the given identity is stored.
func (s Store) Contains(id ObjectID) bool {
	if s.index == nil {
		return false
	}
	_, ok := s.index.Get(id)
	return ok
}

// Update replaces the stored object that has obj.ID. Changing obj.Order
// moves it in the draw order. Unknown identities and updates that change
// nothing return s unchanged.
func (s Store) Update(obj RenderObject) Store {
	old, ok := s.Get(obj.ID)
	if !ok || old == obj {
		return s
	}
	if obj.Order == NoOrder {
		obj.Order = old.Order
	}
	if old.Order != obj.Order {
		s.objects = s.objects.Delete(old.key())
		s.index = s.index.Set(obj.ID, obj.Order)
	}
	s.objects = s.objects.Set(obj.key(), obj)
	s.version++
	return s
}

// Remove deletes the object with the given identity.
func (s Store) Remove(id ObjectID) Store {
	old, ok := s.Get(id)
	if !ok {
		return s
	}
	s.objects = s.objects.Delete(old.key())
	s.index = s.index.Delete(id)
	s.version++
	return s
}

// Retain keeps only the objects for which keep returns true.
func (s Store) Retain(keep func(RenderObject) bool) Store {
	out := s
	for obj := range s.All() {
		if !keep(obj) {
			out = out.Remove(obj.ID)
		}
	}
	return out
}

// All iterates the objects in ascending draw order.
func (s Store) All() iter.Seq[RenderObject] {
	return func(yield func(RenderObject) bool) {
		if s.objects == nil {
			return
		}
		itr := s.objects.Iterator()
		for !itr.Done() {
			_, obj, ok := itr.Next()
			if !ok || !yield(obj) {
				return
			}
		}
	}
}

// Backward iterates the objects from the top of the draw order down.
func (s Store) Backward() iter.Seq[RenderObject] {
	return func(yield func(RenderObject) bool) {
		if s.objects == nil {
			return
		}
		itr := s.objects.Iterator()
		itr.Last()
		for !itr.Done() {
			_, obj, ok := itr.Prev()
			if !ok || !yield(obj) {
				return
			}
		}
	}
}

// Selected iterates the selected objects in draw order.
func (s Store) Selected() iter.Seq[RenderObject] {
	return func(yield func(RenderObject) bool) {
		for obj := range s.All() {
			if obj.Selected && !yield(obj) {
				return
			}
		}
	}
}

// Bounds returns the union of every object's bounding box.
func (s Store) Bounds() lipuma.Rect {
	b := lipuma.EmptyRect()
	for obj := range s.All() {
		b = b.Union(obj.AABB())
	}
	return b
}

// sameSnapshot reports whether a and b share the same persistent root.
func sameSnapshot(a, b Store) bool {
	return a.objects == b.objects
}

// drawKeyComparer orders draw keys by order, then identity.
type drawKeyComparer struct{}

func (drawKeyComparer) Compare(a, b drawKey) int {
	if c := cmp.Compare(a.order, b.order); c != 0 {
		return c
	}
	return cmp.Compare(a.id, b.id)
}

// idHasher hashes object identities for the index.
type idHasher struct{}

func (idHasher) Hash(id ObjectID) uint32 {
	return uint32(id ^ id>>32)
}

func (idHasher) Equal(a, b ObjectID) bool {
	return a == b
}
