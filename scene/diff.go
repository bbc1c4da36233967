// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import "github.com/gogpu/lipuma"

// Update pairs the two states of an object present in both snapshots.
type Update struct {
	Old, New RenderObject
}

// Changes is the difference between two snapshots.
//
// Every object whose presence or content differs appears in exactly one of
// Added, Updated or Removed. Rects lists the footprint of each touched
// object (both footprints for updates) and Bounds is their union.
type Changes struct {
	Added   []RenderObject
	Updated []Update
	Removed []RenderObject

	Rects  []lipuma.Rect
	Bounds lipuma.Rect
}

// IsEmpty reports whether the snapshots were identical.
func (c Changes) IsEmpty() bool {
	return len(c.Added) == 0 && len(c.Updated) == 0 && len(c.Removed) == 0
}

// Len returns the number of changed objects.
func (c Changes) Len() int {
	return len(c.Added) + len(c.Updated) + len(c.Removed)
}

// Diff compares two snapshots by object identity.
//
// An identity present only in prev is Removed, only in next is Added, and
// present in both with any observable difference (order, transform,
// selection or geometry) is Updated. Results within each set are in draw
// order of the snapshot they come from.
//
// Identities are only meaningful within one lineage: prev and next must be
// snapshots of the same history (next derived from prev or the other way
// round). Two snapshots forked from a common base assign ObjectIDs
// independently, so diffing sibling forks may pair unrelated objects.
//
// Diff is O(n log n) and is meant to run once per committed mutation, not
// once per paint.
func Diff(prev, next Store) Changes {
	c := Changes{Bounds: lipuma.EmptyRect()}
	if sameSnapshot(prev, next) {
		return c
	}

	for o := range prev.All() {
		n, ok := next.Get(o.ID)
		switch {
		case !ok:
			c.Removed = append(c.Removed, o)
			c.touch(o.AABB())
		case n != o:
			c.Updated = append(c.Updated, Update{Old: o, New: n})
			c.touch(o.AABB())
			c.touch(n.AABB())
		}
	}
	for n := range next.All() {
		if !prev.Contains(n.ID) {
			c.Added = append(c.Added, n)
			c.touch(n.AABB())
		}
	}
	return c
}

func (c *Changes) touch(r lipuma.Rect) {
	if r.IsEmpty() {
		return
	}
	c.Rects = append(c.Rects, r)
	c.Bounds = c.Bounds.Union(r)
}
