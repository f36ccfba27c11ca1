// Package driven defines the secondary ports of the conversion core:
// interfaces the core calls out to (readers, writers, the legacy
// converter, configuration and catalog storage). Adapters implement
// these interfaces.
package driven
