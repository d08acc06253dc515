package domain

import (
	"bytes"
	"strings"
	"time"
	"unicode/utf8"
)

// HeaderTimeLayout is the layout of the "Generated:" line.
const HeaderTimeLayout = "2006-01-02 15:04:05"

// FileInput is a single file to include in the File Contents section.
type FileInput struct {
	RelPath string // POSIX-style relative path
	Content []byte
}

type Document struct {
	ProjectName string
	GeneratedAt time.Time
	ProjectType string
	Tree        string
	Files       []FileInput
}

// Render builds the Markdown snapshot:
//
//	# Project Summary: <name>
//	Generated: <YYYY-MM-DD HH:MM:SS>
//	Type: <type>
//
//	## Project Structure
//	```
//	<tree>
//	```
//
//	## File Contents
//
//	### <rel/path>
//	```
//	<content>
//	```
//
// Files whose content is not text are left out of File Contents and reported in warnings.
func Render(d Document) (doc string, warnings []string) {
	var b strings.Builder
	b.Grow(1024 * 32)

	b.WriteString("# Project Summary: ")
	b.WriteString(d.ProjectName)
	b.WriteString("\nGenerated: ")
	b.WriteString(d.GeneratedAt.Format(HeaderTimeLayout))
	b.WriteString("\nType: ")
	b.WriteString(d.ProjectType)
	b.WriteString("\n\n")

	b.WriteString("## Project Structure\n```\n")
	b.WriteString(d.Tree)
	if !strings.HasSuffix(d.Tree, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n\n")

	b.WriteString("## File Contents\n")
	for _, f := range d.Files {
		if strings.TrimSpace(f.RelPath) == "" {
			warnings = append(warnings, "skipping file with empty relpath")
			continue
		}
		if reason := nonTextReason(f.Content); reason != "" {
			warnings = append(warnings, "omitting "+reason+" file: "+f.RelPath)
			continue
		}

		content := string(f.Content)
		fence := fenceFor(content)

		b.WriteString("\n### ")
		b.WriteString(f.RelPath)
		b.WriteString("\n")
		b.WriteString(fence)
		b.WriteString("\n")
		b.WriteString(content)
		if !strings.HasSuffix(content, "\n") {
			b.WriteString("\n")
		}
		b.WriteString(fence)
		b.WriteString("\n")
	}
	return b.String(), warnings
}

// PromptSection is the block appended after the document when a prompt is given.
func PromptSection(prompt string) string {
	return "\n## LLM Prompt\n" + strings.TrimSpace(prompt) + "\n"
}

func nonTextReason(b []byte) string {
	if bytes.IndexByte(b, 0) >= 0 {
		return "binary"
	}
	if !utf8.Valid(b) {
		return "non-UTF8"
	}
	return ""
}

// fenceFor returns a backtick fence longer than any backtick run in content,
// so embedded Markdown fences cannot close the block early.
func fenceFor(content string) string {
	longest, run := 0, 0
	for i := 0; i < len(content); i++ {
		if content[i] == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	n := 3
	if longest >= n {
		n = longest + 1
	}
	return strings.Repeat("`", n)
}
