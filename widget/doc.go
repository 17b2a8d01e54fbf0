// Package widget provides a small set of behaviors for gadget nodes: panels,
// labels, buttons and movable windows.
//
// Widgets only paint and react to input. Geometry, z-order and damage stay
// with the gadget.App that owns the node, so a widget changes its own
// appearance by updating its fields and invalidating its node.
package widget
