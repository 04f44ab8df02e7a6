// Package domain holds the types quickfind reasons about: the record
// graph a search returns (RecordMap, BlockNode, CollectionNode), the
// Record view over it, the display items built from it, and Settings.
//
// It imports only the standard library. Every other package depends on
// domain and never the other way round.
package domain
