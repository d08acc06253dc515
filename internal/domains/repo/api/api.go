package api

import (
	project "github.com/snapctx/snapctx/internal/contracts/v1/project"
	"github.com/snapctx/snapctx/internal/domains/repo/app"
	"github.com/snapctx/snapctx/internal/domains/repo/domain"
	"github.com/snapctx/snapctx/internal/domains/repo/ports"
)

// API is the stable boundary for root resolution, classification, scanning and reading.
type API interface {
	ResolveRoot(path string) (domain.ProjectRoot, error)
	Classify(root domain.ProjectRoot) domain.ProjectType
	Profile(root domain.ProjectRoot) project.ProjectProfileV1
	Scan(root domain.ProjectRoot, opts domain.ScanOptions) (domain.ScanResult, error)
	LoadContents(files []project.FileRefV1, maxBytes int64) []domain.FileContent
}

// Dependencies are the OS adapters (or fakes) injected by the composition root.
type Dependencies struct {
	Classifier ports.Classifier
	NewScanner ports.ScannerFactory
	Reader     ports.Reader
}

func New(deps Dependencies) API {
	svc := app.NewService(deps.Classifier, deps.NewScanner, deps.Reader)
	return &repoAPI{
		svc: svc,
	}
}

type repoAPI struct {
	svc *app.Service
}

func (r *repoAPI) ResolveRoot(path string) (domain.ProjectRoot, error) {
	return r.svc.ResolveRoot(path)
}

func (r *repoAPI) Classify(root domain.ProjectRoot) domain.ProjectType {
	return r.svc.Classify(root)
}

func (r *repoAPI) Profile(root domain.ProjectRoot) project.ProjectProfileV1 {
	return r.svc.Profile(root)
}

func (r *repoAPI) Scan(root domain.ProjectRoot, opts domain.ScanOptions) (domain.ScanResult, error) {
	return r.svc.Scan(root, opts)
}

func (r *repoAPI) LoadContents(files []project.FileRefV1, maxBytes int64) []domain.FileContent {
	return r.svc.LoadContents(files, maxBytes)
}
