// Package dimacs reads the DIMACS second-generation clique/vertex-cover
// benchmark format into a graphview.Graph.
//
// Recognised line kinds (first whitespace-separated token):
//
//	c ...          comment, ignored
//	p edge N M     problem header: N vertices, M edges (M is informational
//	               and not cross-checked against the edges actually read)
//	e U V          an edge between 1-based vertices U and V
//	n V W          vertex V (1-based) has weight W, overriding the default
//	               of 1 assigned by the p line
//	d ...          density annotation, ignored
//	v ...          vertex coordinate/label annotation, ignored
//	x ...          solver hint annotation, ignored
//
// The p line must appear exactly once, before any e or n line.
package dimacs
