// Package file provides file-based implementations of driven port
// interfaces.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage, including the
//     DOS probe thresholds and the external converter command.
package file
