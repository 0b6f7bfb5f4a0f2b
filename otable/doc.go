// Package otable builds the optimal tables that give OTClique its name: for
// each partition of the reordered graph, an exact maximum-weight-clique
// table over every subset of that partition.
//
// For a partition of size s, Build computes T[0..2^s) where T[M] is the
// maximum-weight clique weight of the subgraph induced by the partition
// vertices selected by mask M. The recurrence is a single pass of
// subset-sum dynamic programming over bit-indexed vertices: for each new
// vertex j in turn, every mask that could include it either omits it
// (T[M] carries over from the mask without bit j) or includes it (vertex j
// plus the best clique among j's neighbours within the mask, since adding a
// non-neighbour would break the clique property). T is monotone under
// bitwise-or — the property the branch-and-bound search relies on to treat
// T[M] as a valid upper bound for any superset of the clique it describes.
package otable
