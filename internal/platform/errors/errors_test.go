package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorMessageAndUnwrap(t *testing.T) {
	err := NewPathResolution("/nope", fs.ErrNotExist)

	assert.Equal(t, "path resolution: cannot resolve project root /nope: file does not exist", err.Error())
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.True(t, IsPathResolution(err))
	assert.False(t, IsTraversal(err))
}

func TestKindOfSeesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewUsage("bad flag"))
	assert.Equal(t, KindUsage, KindOf(wrapped))
	assert.True(t, IsUsage(wrapped))

	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestTraversalAndConfigKinds(t *testing.T) {
	assert.True(t, IsTraversal(NewTraversal("/root", fs.ErrPermission)))
	assert.Equal(t, KindConfig, KindOf(NewConfig("bad", nil)))
	assert.Equal(t, KindInternal, KindOf(NewInternal("nil dep", nil)))
}
