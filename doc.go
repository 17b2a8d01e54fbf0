// Package gadget repaints a tree of overlapping rectangular nodes onto a
// single surface, touching only damaged pixels and painting each of them
// exactly once per flush.
//
// Nodes live in a Tree arena and are addressed by Handle. Sibling order is
// z-order: later siblings are drawn on top. Mutations made through App
// record the area a node leaves and the area it now covers in a damage.Set;
// Flush hands that damage to a Dispatcher, which routes every fragment to the
// topmost node covering it and calls that node's Behavior.Paint.
//
// The geometry lives in pkg/layout and the damage accumulator in pkg/damage.
package gadget
