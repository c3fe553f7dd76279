// Package store provides file-based persistence for spot-drill projects.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. Writes go through a temp file and an
// atomic rename so a failed save never damages the previous file.
//
// The package includes stores for:
//   - Project documents (ProjectStore)
//   - The startup defaults record (DefaultsStore)
package store
