package project

// FileRefV1 is one discovered regular file.
type FileRefV1 struct {
	AbsPath   string `json:"absPath"`
	RelPath   string `json:"relPath"`   // POSIX style (e.g., "src/main.rs"), display only
	SizeBytes int64  `json:"sizeBytes"` // best-effort size from filesystem
}
