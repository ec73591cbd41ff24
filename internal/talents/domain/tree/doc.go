// Package tree defines the immutable talent-graph catalog: nodes, their
// undirected connections, and the entry points binding archetypes to start
// nodes.
//
// A catalog is constructed once from static definitions and shared read-only
// by every player's progression state. Construction validates the content —
// duplicate ids, dangling connection references, and mistyped entry bindings
// all fail the build — so command processing never has to defend against a
// malformed graph. Authored edges are mirrored at build time; reachability
// checks still consult both directions.
package tree
