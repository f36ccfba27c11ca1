package services

import (
	"sort"

	"github.com/otzar-labs/ketav-cli/internal/core/ports/driven"
)

// Ensure ReaderRegistry implements the interface.
var _ driven.ReaderRegistry = (*ReaderRegistry)(nil)

// ReaderRegistry dispatches files to readers by priority. Adding a new
// format means registering another reader; the selection algorithm
// never changes.
type ReaderRegistry struct {
	readers []driven.Reader
}

// NewReaderRegistry creates an empty registry.
func NewReaderRegistry() *ReaderRegistry {
	return &ReaderRegistry{}
}

// Register adds a reader, keeping the set ordered by descending
// priority. Registration order breaks ties, so results stay stable.
func (r *ReaderRegistry) Register(reader driven.Reader) {
	r.readers = append(r.readers, reader)
	sort.SliceStable(r.readers, func(i, j int) bool {
		return r.readers[i].Priority() > r.readers[j].Priority()
	})
}

// ReaderFor returns the highest-priority reader claiming the file, or
// nil when no reader supports it.
func (r *ReaderRegistry) ReaderFor(path string) driven.Reader {
	for _, reader := range r.readers {
		if reader.Supports(path) {
			return reader
		}
	}
	return nil
}

// Readers returns all registered readers, highest priority first.
func (r *ReaderRegistry) Readers() []driven.Reader {
	out := make([]driven.Reader, len(r.readers))
	copy(out, r.readers)
	return out
}
