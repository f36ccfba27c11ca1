package domain

// Format identifies the source representation of a candidate file.
type Format int

const (
	// FormatUnknown is any file no reader claims.
	FormatUnknown Format = iota

	// FormatDOSText is an extensionless CP862-encoded Hebrew text file.
	FormatDOSText

	// FormatIDML is an InDesign Markup Language archive export.
	FormatIDML

	// FormatDoc is a legacy binary word-processor document.
	FormatDoc

	// FormatDocx is a modern word-processor document.
	FormatDocx
)

// String returns the format identifier used in logs and metadata.
func (f Format) String() string {
	switch f {
	case FormatDocx:
		return "docx"
	case FormatDoc:
		return "doc"
	case FormatIDML:
		return "idml"
	case FormatDOSText:
		return "dostext"
	default:
		return "unknown"
	}
}

// Priority returns the selection rank for directory scanning.
// When one logical document was exported in several formats, only the
// highest-ranked export is converted.
func (f Format) Priority() int {
	switch f {
	case FormatDocx:
		return 100
	case FormatDoc:
		return 90
	case FormatIDML:
		return 80
	case FormatDOSText:
		return 50
	default:
		return 0
	}
}
