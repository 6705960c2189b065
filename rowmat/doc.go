// Package rowmat implements an append-only, row-major sparse matrix with
// stable row identifiers and tombstoned removal.
//
// Rows are stored as contiguous runs of (column-index, coefficient) pairs
// inside two flat backing slices; a row's identity is its position in an
// index table that is never reordered and never recycled. Removing a row
// tombstones its span instead of compacting the backing storage, so
// existing RowIDs and their Entries views remain valid to read (as an
// empty range) for the lifetime of the Matrix. This matches the churn
// pattern of a cut pool: rows are added and evicted constantly, but
// callers (support-map buckets, selected-cut lists) hold onto RowIDs
// across those events.
package rowmat
