// Package otclique ties graphview, coloring, otable, msbtable, and solver
// together into the two operations the rest of this module exists to
// provide: Solve (maximum weight clique) and SolveMWVC (minimum weight
// vertex cover, derived from the clique of the complement graph).
//
// Precomputation pipeline, in order:
//  1. Decide weighted vs unweighted from the input graph's vertex weights.
//  2. Colour (coloring.ColorWeighted / ColorUnweighted) to get a vertex
//     permutation and partitioning into groups of at most Options.Limit.
//  3. Pad the permutation to a multiple of Limit per partition (unused
//     slots map to old vertex 0 — see graphview.InducedSubgraph's doc) and
//     build the reindexed graph G'.
//  4. Build the bit adjacency of G' (word size Limit) and one optimal table
//     per partition (otable.Build), plus the shared most-significant-bit
//     table (msbtable.Build).
//  5. Hand all of the above to solver.NewEngine and run the search.
//  6. Map the resulting new-id clique back to original vertex ids.
package otclique
