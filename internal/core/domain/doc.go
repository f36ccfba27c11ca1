// Package domain contains the core types of the conversion pipeline:
// the canonical Document representation, heading metadata, source
// formats, and the domain error taxonomy. It has no dependencies on
// adapters or infrastructure.
package domain
