// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (boxes, menus, the layer compositor)
//
// Not allowed here:
// - input handling, animation state, or drawer policy
package widgets
