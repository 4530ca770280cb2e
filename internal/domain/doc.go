// Package domain defines the data model and storage contracts shared across
// the app. It contains plain record types and interfaces only; the file-backed
// implementation lives in internal/store.
package domain
