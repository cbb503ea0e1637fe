// Package storage defines the persistence interfaces for generation
// records.
//
// Generation is pure; persistence exists for reproducibility auditing.
// Each completed (or failed) run can be recorded with enough context to
// replay it: the seed, the option snapshot, and the produced mapping.
// Implementations live in subpackages (sqlite).
//
// # Error Types
//
//   - ErrNotFound: Indicates a requested record is missing.
//   - ErrAlreadyExists: Indicates a duplicate record id.
package storage
