package ports

// Clipboard copies text to the system clipboard. copied is false when no
// clipboard tool is available; callers treat that as non-fatal.
type Clipboard interface {
	Copy(text string) (copied bool, err error)
}
