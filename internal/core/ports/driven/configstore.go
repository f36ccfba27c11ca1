package driven

// Well-known configuration keys. They live with the port so callers
// on either side of it agree on names without importing a store
// implementation.
const (
	// KeyProbePrefixBytes, KeyProbeHebrewRatio and KeyProbeMinHebrew
	// tune the DOS text detection probe. The defaults were calibrated
	// against one corpus, so they are configuration, not constants.
	KeyProbePrefixBytes = "probe.prefix_bytes"
	KeyProbeHebrewRatio = "probe.hebrew_ratio"
	KeyProbeMinHebrew   = "probe.min_hebrew_runes"

	// KeyConverterCommand is the external word-processor command used
	// for legacy .doc conversion.
	KeyConverterCommand = "converter.command"

	// KeyCatalogEnabled toggles the SQLite document catalog.
	KeyCatalogEnabled = "catalog.enabled"

	// KeyHeading1 and KeyHeading2 are the default collection/section
	// headings applied when the command line does not override them.
	KeyHeading1 = "headings.h1"
	KeyHeading2 = "headings.h2"
)

// ConfigStore provides persistent key-value configuration.
type ConfigStore interface {
	// Get retrieves a raw value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, empty when unset.
	GetString(key string) string

	// GetInt retrieves an integer value, zero when unset.
	GetInt(key string) int

	// GetFloat retrieves a float value, zero when unset.
	GetFloat(key string) float64

	// GetBool retrieves a boolean value, false when unset.
	GetBool(key string) bool

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Keys returns all configured keys.
	Keys() []string
}
