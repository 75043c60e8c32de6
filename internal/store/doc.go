// Package store provides a SQLite-backed log of parse results.
//
// Every `pratt parse --db` run appends one record: the grammar name, the
// input, and either the tree (s-expression, canonical JSON and content hash)
// or the error code and message.
//
// # Ordering
//
// Records carry a seq INTEGER from a logical clock, never a timestamp. All
// listing queries use ORDER BY seq ASC, id ASC COLLATE BINARY, so the same
// log always lists the same way.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Tree hashes are computed by tree.Node.Hash using RFC 8785 canonical JSON
// and SHA-256 with domain separation.
package store
