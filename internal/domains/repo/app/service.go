package app

import (
	project "github.com/snapctx/snapctx/internal/contracts/v1/project"
	"github.com/snapctx/snapctx/internal/domains/repo/domain"
	"github.com/snapctx/snapctx/internal/domains/repo/ports"
)

type Service struct {
	cls        ports.Classifier
	newScanner ports.ScannerFactory
	rdr        ports.Reader
}

func NewService(cls ports.Classifier, newScanner ports.ScannerFactory, rdr ports.Reader) *Service {
	return &Service{
		cls:        cls,
		newScanner: newScanner,
		rdr:        rdr,
	}
}

func (s *Service) ResolveRoot(path string) (domain.ProjectRoot, error) {
	return domain.ResolveRoot(path)
}

func (s *Service) Classify(root domain.ProjectRoot) domain.ProjectType {
	return s.cls.Classify(root)
}

func (s *Service) Profile(root domain.ProjectRoot) project.ProjectProfileV1 {
	return s.cls.Profile(root)
}

func (s *Service) Scan(root domain.ProjectRoot, opts domain.ScanOptions) (domain.ScanResult, error) {
	return s.newScanner(opts).Scan(root)
}

// LoadContents reads every scanned file in order; failures stay per file.
func (s *Service) LoadContents(files []project.FileRefV1, maxBytes int64) []domain.FileContent {
	out := make([]domain.FileContent, 0, len(files))
	for _, f := range files {
		out = append(out, s.rdr.Load(f, maxBytes))
	}
	return out
}
