// Package types defines the shared vocabulary for reading Windows
// application-compatibility databases ("sdbf" files): tag codes, tag types,
// tag identifiers, decoded values, the read-only Database provider contract,
// and typed errors.
//
// Design goals:
//   - Small, copyable handles (TagID) instead of materialised object graphs.
//   - Paranoid bounds checking; never panic on malformed input.
//   - Typed errors with stable categories (format/corrupt/type/...).
//
// This package has no dependencies beyond the standard library.
package types
