// ════════════════════════════════════════════════════════════════════════════════════════════════
// Transposition Table — Lock-Free Position Cache
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Game-Tree Search Engine Support Library
// Component: Hot-Path Position Memoization
//
// Description:
//   Fixed-capacity, cache-line-aligned cache that memoizes game-tree search results keyed by a
//   64-bit Zobrist-style position fingerprint. Search workers call Probe and Save concurrently
//   without holding any shared lock; the table tolerates benign torn writes by design rather than
//   paying for per-entry synchronization.
//
// Architecture overview:
//   - Entry: 10-byte packed record (signature, move, value, eval, generation/bound, depth)
//   - Cluster: ClusterSize entries padded to one cache line (32 bytes, 3 entries)
//   - Table: a contiguous, optionally huge-page-backed array of clusters
//   - Replacement: depth-and-age scored eviction, entirely within one cluster
//
// Safety model:
//   - Probe/Save are lock-free and non-atomic by design — concurrent writers to the same
//     cluster race, and torn entries are expected. The key16 signature check is what makes
//     this safe: a torn write either matches the new key (though some fields may briefly
//     still hold an older save's values until a later save rewrites them) or fails to
//     match (and is ignored).
//   - Resize, Clear, and NewSearch require the caller to have quiesced all workers first;
//     see the quiesce subpackage for a ready-made coordinator.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

// Package transtable implements a fixed-capacity, lock-free transposition table for
// game-tree search engines.
package transtable
