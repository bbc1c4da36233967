// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shape defines the drawable primitives of a scene.
//
// Drawable is a closed union: only the types in this package implement it
// (FractalLine and SelectionRect). Every variant is a plain comparable
// value, so two drawables are equal exactly when their geometry is equal,
// and copying one never shares mutable state.
//
// Each drawable offers three views of itself:
//
//   - AABB: a cheap, conservative bounding box for culling and damage
//   - FineShape: a precise path used for hit testing
//   - Paint: strokes itself onto a host lipuma.Canvas
package shape
