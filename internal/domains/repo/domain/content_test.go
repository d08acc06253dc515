package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileContentOmission(t *testing.T) {
	cases := []struct {
		name string
		c    FileContent
		want string
	}{
		{"ok", FileContent{RelPath: "a.go", Status: ContentOK}, ""},
		{"large", FileContent{RelPath: "a.bin", Size: 12, Limit: 10, Status: ContentTooLarge}, "omitting large file: a.bin (12 bytes, limit 10)"},
		{"grew", FileContent{RelPath: "a.log", Size: -1, Limit: 10, Status: ContentTooLarge}, "omitting large file: a.log (more than 10 bytes, limit 10)"},
		{"unreadable", FileContent{RelPath: "a.txt", Status: ContentUnreadable, Err: errors.New("denied")}, "omitting unreadable file: a.txt: denied"},
		{"unreadable no cause", FileContent{RelPath: "a.txt", Status: ContentUnreadable}, "omitting unreadable file: a.txt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.c.Omission())
			assert.Equal(t, tc.want == "", tc.c.OK())
		})
	}
}

func TestContentStatusString(t *testing.T) {
	assert.Equal(t, "ok", ContentOK.String())
	assert.Equal(t, "too-large", ContentTooLarge.String())
	assert.Equal(t, "unreadable", ContentUnreadable.String())
	assert.Equal(t, "unknown", ContentStatus(9).String())
}
