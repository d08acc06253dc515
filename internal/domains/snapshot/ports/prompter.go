package ports

// Prompter asks the user one question and returns the answer line.
// An empty answer means "skip".
type Prompter interface {
	Ask(question string) (string, error)
}
