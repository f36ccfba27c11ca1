package driven

import (
	"context"

	"github.com/otzar-labs/ketav-cli/internal/core/domain"
)

// DocumentWriter consumes a converted document. This is the
// paragraph-record contract: implementations receive the heading
// quadruple and the ordered paragraph sequence with style hints and
// must not mutate either.
type DocumentWriter interface {
	// Write renders the document to the destination path.
	Write(ctx context.Context, doc *domain.Document, outPath string) error

	// Extension returns the output file extension, with leading dot.
	Extension() string
}
