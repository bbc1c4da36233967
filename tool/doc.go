// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package tool implements the drawing tools and the editing Session that
// routes input events to them.
//
// A Session owns the current scene snapshot, the active tool, the viewport
// and the accumulated damage. Every event is handled synchronously: the
// session converts the pointer position into scene space, lets the active
// tool update its gesture and possibly the scene, diffs the scene once per
// committed mutation and reports the regions the host has to repaint.
//
// Two tools exist:
//
//   - FractalLineTool drags out a fractal line and commits it on release.
//   - SelectionTool drags out a selection rectangle and live-selects every
//     object it touches.
//
// A gesture that ends in a Leave or Cancel event, an Escape key press or a
// tool switch is aborted and never committed.
package tool
