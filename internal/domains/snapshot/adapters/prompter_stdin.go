package adapters

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LinePrompter writes the question to Out and reads one line from In.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Ask returns the trimmed answer. EOF without input counts as an empty answer.
func (p *LinePrompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "\n%s\n", question); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
