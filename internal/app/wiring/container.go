package wiring

import (
	"io"

	repoadapters "github.com/snapctx/snapctx/internal/domains/repo/adapters"
	repoapi "github.com/snapctx/snapctx/internal/domains/repo/api"

	snapadapters "github.com/snapctx/snapctx/internal/domains/snapshot/adapters"
	snapapi "github.com/snapctx/snapctx/internal/domains/snapshot/api"

	artifactwriter "github.com/snapctx/snapctx/internal/platform/artifact"
	"github.com/snapctx/snapctx/internal/platform/clock"
	"github.com/snapctx/snapctx/internal/platform/console"
)

// Options carry the process streams into the adapters that need them.
type Options struct {
	Log    console.Logger
	Stdin  io.Reader
	Stdout io.Writer

	// Clock defaults to clock.SystemLocal.
	Clock clock.Clock
}

// Container is the in-process DI container.
type Container struct {
	Clock          clock.Clock
	ArtifactWriter artifactwriter.Writer

	Repo     repoapi.API
	Snapshot snapapi.API
}

func New(opts Options) Container {
	clk := opts.Clock
	if clk == nil {
		clk = clock.SystemLocal{}
	}

	// Repo domain adapters (OS-backed)
	repo := repoapi.New(repoapi.Dependencies{
		Classifier: repoadapters.NewOSClassifier(nil),
		NewScanner: repoadapters.NewOSScannerFactory(opts.Log),
		Reader:     repoadapters.NewOSReader(),
	})

	// Shared platform artifact writer
	aw := artifactwriter.Writer{Clock: clk}

	var prompter *snapadapters.LinePrompter
	if opts.Stdin != nil && opts.Stdout != nil {
		prompter = snapadapters.NewLinePrompter(opts.Stdin, opts.Stdout)
	}

	deps := snapapi.Dependencies{
		Clock:          clk,
		Repo:           repo,
		SnapshotWriter: snapadapters.NewPlatformSnapshotWriter(aw),
		Clipboard:      snapadapters.NewOSClipboard(),
		Log:            opts.Log,
	}
	if prompter != nil {
		deps.Prompter = prompter
	}

	return Container{
		Clock:          clk,
		ArtifactWriter: aw,
		Repo:           repo,
		Snapshot:       snapapi.New(deps),
	}
}
