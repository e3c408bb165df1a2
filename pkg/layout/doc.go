// Package layout computes 2-D diagram geometry for lineage graphs.
//
// A full pass runs five stages over a [lineage.Graph]:
//
//  1. Depth assignment: each member's generation, the longest chain of
//     bigs above them (depth.go).
//  2. Family ordering: family blocks are sequenced left to right so that
//     heavily cross-linked families sit next to each other (family.go).
//  3. Subtree positioning: within each family, leaves are laid out in
//     depth-first order and parents are centered over their littles
//     (subtree.go).
//  4. Leaf spacing: leaf order becomes pixel offsets using estimated
//     label widths and a minimum gap (subtree.go).
//  5. Composition: family blocks are placed side by side and centered on
//     the canvas; depth becomes the vertical coordinate (compose.go).
//
// The pass is a pure function of the graph, the [Config], and the width
// estimator: no state survives between invocations, and identical inputs
// produce identical geometry. Relationship cycles never abort a pass;
// they are broken deterministically and reported as diagnostics on the
// [Result].
package layout
