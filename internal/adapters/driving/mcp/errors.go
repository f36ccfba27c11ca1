// Package mcp provides an MCP (Model Context Protocol) server adapter for ketav.
// It enables AI assistants to drive the document conversion pipeline.
package mcp

import "errors"

// ErrMissingConverter is returned when the converter service is not provided.
var ErrMissingConverter = errors.New("mcp: converter is required")
