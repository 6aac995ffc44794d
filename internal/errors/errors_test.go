package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	err = Newf("formatted %s", "error")
	assert.Equal(t, "formatted error", err.Error())

	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())
	assert.Equal(t, origErr, Unwrap(wrappedErr))

	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	// Wrapping nil returns nil
	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())
	assert.True(t, Is(deepWrapped, origErr))
}

func TestFileError(t *testing.T) {
	fileErr := NewFileError("cannot delete", "/path/to/file", DeleteFailed, nil)
	assert.Equal(t, "cannot delete: /path/to/file", fileErr.Error())
	assert.Equal(t, "/path/to/file", fileErr.Path())
	assert.Equal(t, DeleteFailed, fileErr.Kind())

	cause := fmt.Errorf("permission denied")
	fileErr = NewFileError("cannot delete", "/path/to/file", DeleteFailed, cause)
	assert.Equal(t, "cannot delete: /path/to/file: permission denied", fileErr.Error())
	assert.Equal(t, cause, Unwrap(fileErr))

	assert.True(t, IsDeleteFailed(fileErr))
	assert.False(t, IsFileNotFound(fileErr))
	assert.True(t, IsDeleteFailed(Wrap(fileErr, "commit")))

	noPath := NewFileError("cannot delete", "", DeleteFailed, cause)
	assert.Equal(t, "cannot delete: permission denied", noPath.Error())
}

func TestFileErrorKeepsCause(t *testing.T) {
	fileErr := NewFileError("cannot delete", "a.txt", DeleteFailed, fs.ErrPermission)
	assert.True(t, errors.Is(fileErr, fs.ErrPermission))
}

func TestPatternError(t *testing.T) {
	cause := errors.New("unexpected end of input")
	err := NewPatternError("invalid pattern", "[", cause)
	assert.Equal(t, `invalid pattern "[": unexpected end of input`, err.Error())
	assert.Equal(t, "[", err.Pattern())
	assert.Equal(t, InvalidPattern, err.Kind())
	assert.True(t, IsInvalidPattern(err))
	assert.True(t, IsInvalidPattern(Wrap(err, "search")))
	assert.False(t, IsInvalidPattern(cause))

	bare := NewPatternError("empty pattern", "", nil)
	assert.Equal(t, `empty pattern ""`, bare.Error())
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("invalid configuration", "ui.theme", InvalidConfig, nil)
	assert.Equal(t, "invalid configuration: ui.theme", err.Error())
	assert.Equal(t, "ui.theme", err.Param())
	assert.True(t, IsInvalidConfig(err))

	notFound := NewConfigError("config not found", "x.yaml", ConfigNotFound, nil)
	assert.False(t, IsInvalidConfig(notFound))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"plain", errors.New("x"), Unknown},
		{"application", New("x"), Unknown},
		{"file", NewFileError("x", "p", DeleteFailed, nil), DeleteFailed},
		{"config", NewConfigError("x", "p", ConfigNotFound, nil), ConfigNotFound},
		{"pattern", NewPatternError("x", "[", nil), InvalidPattern},
		{"wrapped pattern", Wrap(NewPatternError("x", "[", nil), "outer"), InvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "invalid pattern", InvalidPattern.String())
	assert.Equal(t, "delete failed", DeleteFailed.String())
	assert.Equal(t, "unknown", ErrorKind(99).String())
}
