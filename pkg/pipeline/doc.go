// Package pipeline composes per-tick triangle transforms. Each tick the
// caller hands in a snapshot of the active input, Select turns it into a
// list of atomic transforms, and Tick applies their composition to every
// triangle, returning a new collection.
package pipeline
