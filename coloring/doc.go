// Package coloring builds the vertex sequence and partition that the rest of
// OTClique's precomputation pipeline depends on.
//
// Both ColorWeighted and ColorUnweighted run the same greedy scheme: sort
// vertices by a comparison key, then repeatedly carve an independent set
// ("colour") out of whichever vertices remain uncoloured, scanning in
// descending sorted-index order and bounding each colour's size by a cap.
// Colours are then packed — greedily, from the last colour built back to the
// first — into partitions of at most limit vertices each; a partition may
// bundle several small colours but never splits one, since every colour is
// already an independent set and packing only needs to preserve that
// property at the partition level.
//
// The weighted variant additionally derives its colour-size cap from edge
// density (the full limit above density 0.5 and below 0.2, smaller caps in
// between; see colorCapForDensity) and sorts by weight ascending (tie:
// degree descending). The unweighted variant sorts by degree ascending and,
// after packing, reverses both the emitted sequence and the partition sizes
// — this exposes the highest-degree vertices near the start of the eventual
// search order, which empirically strengthens pruning (see spec.md §4.2).
package coloring
