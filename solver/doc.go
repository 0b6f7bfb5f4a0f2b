// Package solver implements OTClique's branch-and-bound search: the rooted
// sweep that fills a per-vertex lower-bound cache, and the recursive
// candidate expansion that actually finds the maximum weight clique.
//
// All search state — the best-so-far record, the current path, the c[]
// cache, branch counter, and deadline — lives in a single Engine value built
// once per search (see spec.md §9 "Global mutable state": the reference C
// implementation keeps this as file-scope globals; Engine turns it into an
// explicit, non-reentrancy-hazardous receiver, the same shape as
// lvlath/tsp's bbEngine).
//
// Engine never allocates the graph or the optimal tables itself — those are
// built once by graphview/coloring/otable and handed in read-only. Engine
// owns only the mutable search state.
package solver
