// Package registry holds the in-memory activity catalog. It is the single
// owner of all Activity records: snapshots are deep copies and the only
// mutating paths are Enroll and Withdraw, which enforce the capacity and
// no-duplicate invariants under a registry-wide lock.
package registry
