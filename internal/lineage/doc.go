// Package lineage reconstructs the tree of branches created from a start
// branch and linearizes it into a rebase order.
//
// The computation runs in two phases. The builder assigns every branch a
// creation parent, preferring the authoritative reflog record and falling
// back to an ancestor-interval search over version-control history. The
// walker then follows the derived children map from the start branch,
// emitting one deterministic chain plus a diagnostic for every fork.
//
// The whole computation is a pure function of the branch metadata at
// invocation time; nothing is persisted between calls.
package lineage
