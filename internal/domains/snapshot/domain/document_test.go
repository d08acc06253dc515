package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generated = time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)

func TestRenderDocumentShape(t *testing.T) {
	doc, warnings := Render(Document{
		ProjectName: "proj",
		GeneratedAt: generated,
		ProjectType: "Rust",
		Tree:        "proj\n└── main.rs",
		Files:       []FileInput{{RelPath: "main.rs", Content: []byte("fn main() {}\n")}},
	})
	require.Empty(t, warnings)

	want := "# Project Summary: proj\n" +
		"Generated: 2024-03-09 14:05:07\n" +
		"Type: Rust\n" +
		"\n" +
		"## Project Structure\n" +
		"```\n" +
		"proj\n└── main.rs\n" +
		"```\n" +
		"\n" +
		"## File Contents\n" +
		"\n### main.rs\n" +
		"```\n" +
		"fn main() {}\n" +
		"```\n"
	assert.Equal(t, want, doc)
}

func TestRenderOmitsNonTextContent(t *testing.T) {
	doc, warnings := Render(Document{
		ProjectName: "p",
		GeneratedAt: generated,
		ProjectType: "Unknown",
		Files: []FileInput{
			{RelPath: "logo.png", Content: []byte{0x89, 'P', 'N', 'G', 0x00, 0x01}},
			{RelPath: "latin1.txt", Content: []byte{'c', 'a', 'f', 0xe9}},
			{RelPath: "ok.txt", Content: []byte("fine")},
		},
	})

	assert.NotContains(t, doc, "### logo.png")
	assert.NotContains(t, doc, "### latin1.txt")
	assert.Contains(t, doc, "### ok.txt\n```\nfine\n```\n")
	assert.Equal(t, []string{"omitting binary file: logo.png", "omitting non-UTF8 file: latin1.txt"}, warnings)
}

func TestRenderEmptyFileKeepsBlock(t *testing.T) {
	doc, warnings := Render(Document{ProjectName: "p", GeneratedAt: generated, ProjectType: "Unknown",
		Files: []FileInput{{RelPath: "empty.txt", Content: nil}}})
	assert.Empty(t, warnings)
	assert.Contains(t, doc, "### empty.txt\n```\n\n```\n")
}

func TestRenderWidensFenceAroundEmbeddedFences(t *testing.T) {
	doc, _ := Render(Document{ProjectName: "p", GeneratedAt: generated, ProjectType: "Unknown",
		Files: []FileInput{{RelPath: "README.md", Content: []byte("```go\nx\n```\n")}}})
	assert.Contains(t, doc, "### README.md\n````\n```go\nx\n```\n````\n")
}

func TestPromptSection(t *testing.T) {
	assert.Equal(t, "\n## LLM Prompt\nexplain this\n", PromptSection("  explain this \n"))
}

func TestFenceFor(t *testing.T) {
	assert.Equal(t, "```", fenceFor("no ticks"))
	assert.Equal(t, "```", fenceFor("`inline` and ``two``"))
	assert.Equal(t, "`````", fenceFor("````"))
}
