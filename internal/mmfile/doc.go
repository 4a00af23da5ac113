// Package mmfile provides platform-specific helpers for mapping sdb files
// into memory read-only.
package mmfile
