// SPDX-License-Identifier: MIT

// Package layers keeps track of named row layers and which of them are
// visible, and drives the "visible" half of the attribute table aggregates.
//
// Layers are bits of a 64-bit mask. Layer 0, "Everything", always exists and
// every row belongs to it. A row's layer membership is a Key (a mask of the
// layers it belongs to); the row is visible when its Key shares a bit with
// the manager's visible mask.
//
// Visibility rules:
//
//   - Making layer 0 visible hides every other layer.
//   - Making any other layer visible hides layer 0.
//   - Hiding the last visible layer falls back to layer 0.
//
// Errors:
//
//   - ErrDuplicateLayer: a layer with that name already exists.
//   - ErrOutOfLayers: all 64 layer slots are taken.
//   - ErrLayerNotFound: unknown layer name.
//   - ErrLayerIndex: layer index out of range.
package layers
