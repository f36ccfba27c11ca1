package driven

import "context"

// LegacyConverter converts a legacy .doc file into a temporary .docx
// artifact via an external word-processing application. The call is
// opaque to the core: failures surface as domain.ErrLegacyConversion
// and are never retried, since the external automation call is not
// idempotent.
type LegacyConverter interface {
	// Convert returns the path of a temporary .docx file. The caller
	// owns the artifact and must remove it on every exit path.
	Convert(ctx context.Context, docPath string) (string, error)
}
