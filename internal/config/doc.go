// Package config loads the optional sdbtool YAML profile.
//
// A profile holds per-command defaults so a long exclusion list does not
// have to be repeated on every invocation:
//
//	sdb2xml:
//	  exclude: [auto, PATCH]
//	  annotations: comment
//	  with_tagid: true
//
// Flags given on the command line override profile values.
package config
