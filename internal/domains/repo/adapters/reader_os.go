package adapters

import (
	"io"
	"os"

	project "github.com/snapctx/snapctx/internal/contracts/v1/project"
	"github.com/snapctx/snapctx/internal/domains/repo/domain"
	"github.com/snapctx/snapctx/internal/platform/errors"
)

type OSReader struct{}

func NewOSReader() OSReader {
	return OSReader{}
}

// Load reads ref.AbsPath. Files over maxBytes are rejected from their stat
// size before any byte is read; maxBytes <= 0 disables the limit.
func (r OSReader) Load(ref project.FileRefV1, maxBytes int64) domain.FileContent {
	out := domain.FileContent{RelPath: ref.RelPath, Size: -1, Limit: maxBytes}
	if maxBytes < 0 {
		out.Limit = 0
	}

	f, err := os.Open(ref.AbsPath)
	if err != nil {
		return unreadable(out, "failed to open file", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return unreadable(out, "failed to stat file", err)
	}
	out.Size = info.Size()
	if out.Limit > 0 && out.Size > out.Limit {
		out.Status = domain.ContentTooLarge
		return out
	}

	var reader io.Reader = f
	if out.Limit > 0 {
		// The file may grow between stat and read.
		reader = io.LimitReader(f, out.Limit+1)
	}
	b, err := io.ReadAll(reader)
	if err != nil {
		return unreadable(out, "failed to read file", err)
	}
	if out.Limit > 0 && int64(len(b)) > out.Limit {
		out.Size = -1
		out.Status = domain.ContentTooLarge
		return out
	}
	out.Data = b
	out.Status = domain.ContentOK
	return out
}

func unreadable(c domain.FileContent, msg string, err error) domain.FileContent {
	c.Status = domain.ContentUnreadable
	c.Err = errors.New(errors.KindIO, msg, err)
	return c
}
