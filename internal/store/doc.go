// Package store provides the file-backed implementation of the domain
// storage interfaces.
//
// FileStore keeps one JSON file per record under a directory derived from
// the store and element type names, e.g. data/FileStore/Employee/Karen.json.
// There is no locking, no indexing and no deletion; the contract is plain
// synchronous file I/O with last-write-wins per key.
package store
