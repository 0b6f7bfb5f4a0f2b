// Package graphview provides the immutable, vertex-weighted undirected graph
// representation consumed by the OTClique solver.
//
// A Graph holds a dense adjacency matrix and a vertex weight vector. It is
// built once — by the DIMACS reader, by tests, or by a caller assembling a
// graph programmatically — and treated as read-only from that point on: the
// colouring phase reads it directly, and the optimal-table and
// branch-and-bound phases operate on induced subgraphs and bit-adjacency
// views derived from it.
//
// Three derived views matter to the rest of the module:
//
//   - InducedSubgraph reindexes a vertex subset into a fresh 0..size-1 Graph,
//     used both to build the reordered graph G' after colouring and to carve
//     out each partition's small subgraph before its optimal table is built.
//   - BitAdjacency packs the strict lower triangle of the adjacency matrix
//     into words of a configurable bit width, the representation the solver
//     and the optimal-table DP both operate on directly.
//   - Complement flips every off-diagonal entry, the basis of the MWVC
//     reduction (MWVC(G) is derived from the MWC of Complement(G)).
package graphview
