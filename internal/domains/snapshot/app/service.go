package app

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	project "github.com/snapctx/snapctx/internal/contracts/v1/project"
	contractsnapshot "github.com/snapctx/snapctx/internal/contracts/v1/snapshot"
	repoapi "github.com/snapctx/snapctx/internal/domains/repo/api"
	repodomain "github.com/snapctx/snapctx/internal/domains/repo/domain"
	snapdomain "github.com/snapctx/snapctx/internal/domains/snapshot/domain"
	"github.com/snapctx/snapctx/internal/domains/snapshot/ports"
	"github.com/snapctx/snapctx/internal/platform/artifact"
	"github.com/snapctx/snapctx/internal/platform/clock"
	"github.com/snapctx/snapctx/internal/platform/config"
	"github.com/snapctx/snapctx/internal/platform/console"
	"github.com/snapctx/snapctx/internal/platform/errors"
	"github.com/snapctx/snapctx/internal/platform/glob"
	"github.com/snapctx/snapctx/internal/platform/paths"
)

// PromptQuestion is shown before reading an interactive prompt.
const PromptQuestion = "Enter your question/prompt for the LLM (or press Enter to skip):"

type Service struct {
	Clock          clock.Clock
	Repo           repoapi.API
	SnapshotWriter ports.SnapshotWriter
	Clipboard      ports.Clipboard
	Prompter       ports.Prompter
	Log            console.Logger
}

type GenerateRequest struct {
	RootPath string

	// OutputDir defaults to the resolved project root.
	OutputDir string

	MaxFileBytes int64

	// IgnoreNames extend the default component rule set; IgnoreGlobs are
	// matched against root-relative paths.
	IgnoreNames []string
	IgnoreGlobs []string

	FollowSymlinks bool
	UseIgnoreFiles bool

	// BatchMode disables the interactive prompt. Prompt, when set, is appended
	// without asking.
	BatchMode bool
	Prompt    string

	// CopyToClipboard is best-effort and never fails the run.
	CopyToClipboard bool

	// OnWritten is called with the snapshot path once the document is on
	// disk, before any prompt is asked. An error aborts the run.
	OnWritten func(outputPath string) error
}

type GenerateResult struct {
	Document   string
	Report     contractsnapshot.SnapshotReportV1
	ReportJSON string

	Root       repodomain.ProjectRoot
	Type       repodomain.ProjectType
	OutputPath string
	Copied     bool
}

func (s *Service) Generate(req GenerateRequest) (GenerateResult, error) {
	if s.Clock == nil {
		return GenerateResult{}, errors.NewInternal("Clock is nil", nil)
	}
	if s.Repo == nil {
		return GenerateResult{}, errors.NewInternal("Repo is nil", nil)
	}
	if s.SnapshotWriter == nil {
		return GenerateResult{}, errors.NewInternal("SnapshotWriter is nil", nil)
	}
	if strings.TrimSpace(req.RootPath) == "" {
		req.RootPath = "."
	}
	if req.MaxFileBytes <= 0 {
		req.MaxFileBytes = config.DefaultMaxFileBytes
	}

	now := s.Clock.Now()

	root, err := s.Repo.ResolveRoot(req.RootPath)
	if err != nil {
		return GenerateResult{}, err
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		outputDir = root.Path
	}

	profile := s.Repo.Profile(root)
	ptype := s.Repo.Classify(root)
	s.Log.Debug("project " + root.Name + " classified as " + ptype.String())

	excludes := make([]string, 0, len(req.IgnoreGlobs)+1)
	excludes = append(excludes, req.IgnoreGlobs...)
	if g, ok := snapshotExcludeGlob(root, outputDir); ok {
		excludes = append(excludes, g)
	}

	scan, err := s.Repo.Scan(root, repodomain.ScanOptions{
		Ignore:         repodomain.DefaultIgnoreRuleSet().With(req.IgnoreNames...),
		FollowSymlinks: req.FollowSymlinks,
		UseIgnoreFiles: req.UseIgnoreFiles,
		ExcludeGlobs:   excludes,
	})
	if err != nil {
		return GenerateResult{}, err
	}

	var warnings []string
	for _, w := range scan.Warnings {
		warnings = append(warnings, w.String())
	}

	relPaths := make([]string, 0, len(scan.Files))
	var totalBytes int64
	for _, f := range scan.Files {
		relPaths = append(relPaths, f.RelPath)
		totalBytes += f.SizeBytes
	}

	inputs := make([]snapdomain.FileInput, 0, len(scan.Files))
	for _, c := range s.Repo.LoadContents(scan.Files, req.MaxFileBytes) {
		if !c.OK() {
			warnings = append(warnings, c.Omission())
			continue
		}
		inputs = append(inputs, snapdomain.FileInput{RelPath: c.RelPath, Content: c.Data})
	}

	doc, renderWarnings := snapdomain.Render(snapdomain.Document{
		ProjectName: root.Name,
		GeneratedAt: now,
		ProjectType: ptype.String(),
		Tree:        snapdomain.BuildDirectoryTree(root.Name, relPaths, 0),
		Files:       inputs,
	})
	warnings = append(warnings, renderWarnings...)

	outPath, err := s.SnapshotWriter.WriteSnapshot(ports.WriteSnapshotRequest{
		Dir:         outputDir,
		ProjectName: root.Name,
		Content:     doc,
		GeneratedAt: timePtr(now),
	})
	if err != nil {
		return GenerateResult{}, err
	}
	if req.OnWritten != nil {
		if err := req.OnWritten(outPath); err != nil {
			return GenerateResult{}, errors.New(errors.KindIO, "failed to report output path", err)
		}
	}

	prompt, err := s.resolvePrompt(req)
	if err != nil {
		warnings = append(warnings, "prompt skipped: "+err.Error())
	}
	if prompt != "" {
		section := snapdomain.PromptSection(prompt)
		if err := s.SnapshotWriter.Append(outPath, section); err != nil {
			return GenerateResult{}, err
		}
		doc += section
	}

	for _, w := range warnings {
		s.Log.Debug(w)
	}

	report := contractsnapshot.SnapshotReportV1{
		GeneratedAt:    contractsnapshot.FormatRFC3339Nano(now),
		OutputPath:     outPath,
		Profile:        profile,
		FilesScanned:   len(scan.Files),
		FilesIncluded:  includedCount(inputs, renderWarnings),
		TotalBytes:     totalBytes,
		Files:          nonNilFiles(scan.Files),
		PromptAppended: prompt != "",
		Warnings:       warnings,
	}
	reportJSONBytes, _ := json.MarshalIndent(report, "", "  ")

	copied := false
	if req.CopyToClipboard && s.Clipboard != nil {
		ok, err := s.Clipboard.Copy(doc)
		if err != nil {
			s.Log.Warn("clipboard copy failed: " + err.Error())
		}
		copied = ok
	}

	return GenerateResult{
		Document:   doc,
		Report:     report,
		ReportJSON: string(reportJSONBytes),
		Root:       root,
		Type:       ptype,
		OutputPath: outPath,
		Copied:     copied,
	}, nil
}

func (s *Service) resolvePrompt(req GenerateRequest) (string, error) {
	if p := strings.TrimSpace(req.Prompt); p != "" {
		return p, nil
	}
	if req.BatchMode || s.Prompter == nil {
		return "", nil
	}
	answer, err := s.Prompter.Ask(PromptQuestion)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// snapshotExcludeGlob matches earlier snapshots of root when they land inside it.
func snapshotExcludeGlob(root repodomain.ProjectRoot, outputDir string) (string, bool) {
	if !filepath.IsAbs(outputDir) || !paths.IsWithin(outputDir, root.Path) {
		return "", false
	}
	rel, err := paths.ToPosixRel(root.Path, outputDir)
	if err != nil {
		return "", false
	}
	g := artifact.SnapshotGlob(root.Name)
	if rel != "." {
		g = glob.Escape(rel) + "/" + g
	}
	return g, true
}

// includedCount is the number of files whose content block was rendered.
func includedCount(inputs []snapdomain.FileInput, renderWarnings []string) int {
	n := len(inputs) - len(renderWarnings)
	if n < 0 {
		return 0
	}
	return n
}

func nonNilFiles(files []project.FileRefV1) []project.FileRefV1 {
	if files == nil {
		return []project.FileRefV1{}
	}
	return files
}

func timePtr(t time.Time) *time.Time {
	return &t
}
