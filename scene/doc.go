// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scene holds the retained model of a drawing: an ordered,
// persistent collection of RenderObjects plus the machinery to compare two
// snapshots and work out what must be repainted.
//
// # Snapshots
//
// A Store is an immutable value. Insert, Remove, Retain and Update return
// a new Store and leave the receiver untouched, sharing structure with it.
// Holding on to a Store therefore captures the scene at that instant:
//
//	before := s
//	s, _ = s.Insert(scene.NewObject(line))
//	changes := scene.Diff(before, s)
//
// # Identity and order
//
// Every stored object gets a unique ObjectID. Objects are drawn in
// ascending Order; ties are broken by ObjectID, so two structurally equal
// objects are still distinct members of the scene.
//
// # Diffing
//
// Diff matches objects by ObjectID rather than by position. Moving an object
// in the draw order is reported as an Update of that object alone; a
// positional comparison of the two ordered sequences would instead blame
// every object that shifted.
//
// # Hit testing
//
// HitTest runs a broad phase on bounding boxes followed by a fine phase on
// the object's polyline. SelectIn applies it to a whole store.
package scene
