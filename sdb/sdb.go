// Package sdb opens Windows shim databases (sdbf files) for reading.
//
// The returned types.Database walks the tag tree lazily over a read-only
// memory mapping of the file:
//
//	db, err := sdb.Open("sysmain.sdb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	top, _ := db.Children(types.TagIDRoot)
//
// Conversion to XML lives in sdb/sdb2xml, database summaries in sdb/info.
package sdb

import (
	"github.com/joshuapare/sdbkit/internal/reader"
	"github.com/joshuapare/sdbkit/pkg/types"
)

// Open opens the database at path with default limits. A missing file
// fails with types.ErrNotFound, a file without an sdbf header with
// types.ErrInvalidFormat.
func Open(path string) (types.Database, error) {
	return reader.Open(path, types.OpenOptions{})
}

// OpenWithOptions is Open with explicit safety limits.
func OpenWithOptions(path string, opts types.OpenOptions) (types.Database, error) {
	return reader.Open(path, opts)
}

// OpenBytes reads a database held in memory. b must not be modified while
// the database is in use.
func OpenBytes(b []byte) (types.Database, error) {
	return reader.OpenBytes(b, types.OpenOptions{})
}
