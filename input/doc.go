// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package input defines the pointer and keyboard events a host feeds into
// an editing session.
//
// Hosts translate their windowing system's events into these types. Pointer
// positions carry both the scene-space location used by tools and the
// device-space location used for panning and zooming the view. Keys use the
// gpucontext key vocabulary shared with the gogpu windowing layer.
package input
