package ports

import (
	project "github.com/snapctx/snapctx/internal/contracts/v1/project"
	"github.com/snapctx/snapctx/internal/domains/repo/domain"
)

type Classifier interface {
	Classify(root domain.ProjectRoot) domain.ProjectType
	Profile(root domain.ProjectRoot) project.ProjectProfileV1
}
