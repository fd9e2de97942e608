// Package dimacs reads and writes graphs in plain-text edge-list formats.
//
// Formats:
//
//   - Topology: a "<node count> <edge count>" header, then one "<from> <to>"
//     line per edge, zero-based. ReadTopology assigns every edge weight 1, so
//     distances are hop counts.
//   - Weighted: the same with a third "<weight>" column.
//   - SP: the 9th DIMACS implementation challenge ".gr" format. Lines start
//     with a type letter: "c" comment, "p sp <n> <m>" problem line (exactly
//     one, before any arc), "a <u> <v> <w>" arc. Node ids are 1-based.
//
// Writers emit edges grouped by source node in CSR order, so a Static graph
// written and read back has identical adjacency.
//
// Compression: Open and Create pick a codec from the file extension:
// ".gz" (gzip), ".zst" (zstandard) and ".lz4" (LZ4 frame). Other paths are
// plain files. NewReader and NewWriter apply a codec to any stream.
//
// Errors: malformed input is reported with the 1-based line number wrapped
// around ErrMalformedHeader, ErrMalformedLine or ErrCountMismatch. Graph
// validation failures (ids out of range, negative weights) wrap the graph
// package sentinels.
package dimacs
