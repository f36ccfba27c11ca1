package mcp

import (
	"github.com/otzar-labs/ketav-cli/internal/core/ports/driven"
	"github.com/otzar-labs/ketav-cli/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Converter runs the conversion pipeline.
	Converter driving.Converter

	// Registry lists the available format readers.
	Registry driven.ReaderRegistry

	// Store exposes the document catalog. Optional; catalog resources
	// return empty results when it is nil.
	Store driven.DocumentStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Converter == nil {
		return ErrMissingConverter
	}
	return nil
}
