package domain

import "strconv"

// ContentStatus is the outcome of loading one scanned file.
type ContentStatus int

const (
	ContentOK         ContentStatus = iota
	ContentTooLarge                 // larger than the byte limit; not read
	ContentUnreadable               // open, stat or read failed
)

func (s ContentStatus) String() string {
	switch s {
	case ContentOK:
		return "ok"
	case ContentTooLarge:
		return "too-large"
	case ContentUnreadable:
		return "unreadable"
	default:
		return "unknown"
	}
}

// FileContent is a scanned file's bytes, or why they could not be loaded.
type FileContent struct {
	RelPath string
	Data    []byte
	Size    int64 // on-disk size when known, else -1
	Limit   int64 // byte limit in force; 0 means none
	Status  ContentStatus
	Err     error // cause for ContentUnreadable
}

func (c FileContent) OK() bool {
	return c.Status == ContentOK
}

// Omission explains why the file has no content block; "" when it loaded.
func (c FileContent) Omission() string {
	switch c.Status {
	case ContentOK:
		return ""
	case ContentTooLarge:
		size := "more than " + strconv.FormatInt(c.Limit, 10)
		if c.Size >= 0 {
			size = strconv.FormatInt(c.Size, 10)
		}
		return "omitting large file: " + c.RelPath + " (" + size + " bytes, limit " + strconv.FormatInt(c.Limit, 10) + ")"
	default:
		msg := "omitting unreadable file: " + c.RelPath
		if c.Err != nil {
			msg += ": " + c.Err.Error()
		}
		return msg
	}
}
