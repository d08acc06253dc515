package adapters

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompterReadsOneLine(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("  what does this do?  \nsecond line\n"), &out)

	answer, err := p.Ask("Question?")
	require.NoError(t, err)
	assert.Equal(t, "what does this do?", answer)
	assert.Equal(t, "\nQuestion?\n", out.String())
}

func TestLinePrompterEOF(t *testing.T) {
	p := NewLinePrompter(strings.NewReader(""), &bytes.Buffer{})
	answer, err := p.Ask("Q")
	require.NoError(t, err)
	assert.Empty(t, answer)

	p = NewLinePrompter(strings.NewReader("no newline"), &bytes.Buffer{})
	answer, err = p.Ask("Q")
	require.NoError(t, err)
	assert.Equal(t, "no newline", answer)
}
