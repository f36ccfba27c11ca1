// Package services contains the conversion core: the reader registry,
// the per-directory file selector, the sequential conversion pipeline
// with per-file error isolation, and the directory watcher.
package services
