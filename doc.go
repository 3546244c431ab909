// Package gbwt implements the core of a Graph Burrows-Wheeler Transform
// index: a succinct data structure storing a large collection of paths
// through a bidirected sequence graph, answering substring-matching and
// path-extraction queries over that collection.
/*

# Motivation for the per-node record layout

A path is a sequence of oriented graph nodes. Concatenating the BWT columns
of every path and grouping the rows by the node they originate from gives,
for each oriented node v, a "record": the rows of the transform whose
preceding column character is v. Searching for a pattern one symbol at a
time is then a sequence of LF-mapping steps, each of which stays within one
record until it crosses into the record of the next pattern symbol.

This package keeps that per-record structure in two parallel forms:

  - DynamicRecord, a mutable, fully expanded form used while a record is
    still being built or merged.
  - CompressedRecord, a read-only byte-encoded view pulled out of a shared
    RecordArray, used once the index is frozen for queries.

Both satisfy the same LF-family of operations, so the search algorithms in
search.go are written once, against the Index capability interface, and
work unmodified over either representation.

Nothing here attempts to be a general string index: the alphabet is a
finite set of oriented node ids plus a reserved end-marker, and the only
questions asked of it are "which paths contain this node-sequence" and
"what does path i look like".
*/
package gbwt
