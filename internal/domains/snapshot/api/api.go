package api

import (
	repoapi "github.com/snapctx/snapctx/internal/domains/repo/api"
	snapapp "github.com/snapctx/snapctx/internal/domains/snapshot/app"
	snapports "github.com/snapctx/snapctx/internal/domains/snapshot/ports"
	"github.com/snapctx/snapctx/internal/platform/clock"
	"github.com/snapctx/snapctx/internal/platform/console"
)

type API interface {
	Generate(req snapapp.GenerateRequest) (snapapp.GenerateResult, error)
}

type Dependencies struct {
	Clock          clock.Clock
	Repo           repoapi.API
	SnapshotWriter snapports.SnapshotWriter
	Clipboard      snapports.Clipboard
	Prompter       snapports.Prompter
	Log            console.Logger
}

func New(deps Dependencies) API {
	return &snapshotAPI{
		svc: &snapapp.Service{
			Clock:          deps.Clock,
			Repo:           deps.Repo,
			SnapshotWriter: deps.SnapshotWriter,
			Clipboard:      deps.Clipboard,
			Prompter:       deps.Prompter,
			Log:            deps.Log,
		},
	}
}

type snapshotAPI struct {
	svc *snapapp.Service
}

func (s *snapshotAPI) Generate(req snapapp.GenerateRequest) (snapapp.GenerateResult, error) {
	return s.svc.Generate(req)
}
