package ports

import (
	project "github.com/snapctx/snapctx/internal/contracts/v1/project"
	"github.com/snapctx/snapctx/internal/domains/repo/domain"
)

// Reader loads the content of scanned files. Failures are reported in the
// returned status so one bad file never aborts a snapshot.
type Reader interface {
	Load(ref project.FileRefV1, maxBytes int64) domain.FileContent
}
