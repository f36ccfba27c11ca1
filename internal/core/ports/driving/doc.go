// Package driving defines the primary ports of the conversion core:
// the interfaces through which the CLI and MCP adapters drive the
// pipeline.
package driving
