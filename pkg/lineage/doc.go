// Package lineage provides the core data model for big/little mentorship
// graphs: members, their sponsorship relations, and shortest-path search.
//
// A lineage is a directed graph, not a tree. A member may have multiple
// bigs, multiple littles, and relationship cycles can occur in real data
// (merged chapters, re-pinning). The package never rejects such input;
// consumers that need acyclic structure handle cycles explicitly.
//
// Build a graph from roster records and query it:
//
//	g := lineage.NewGraph(roster.Members)
//	res, err := lineage.ShortestPath(g, "Alice", "Carol")
//	if err != nil {
//	    // unknown member name
//	}
//	if !res.Found {
//	    // valid names, but no connecting chain
//	}
package lineage
