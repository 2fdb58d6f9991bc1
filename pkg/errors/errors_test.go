// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookup

package errors_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/arthur-debert/ccsync/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "manifest not found",
			wantStr: "[NOT_FOUND] manifest not found",
		},
		{
			name:    "invalid_config",
			code:    errors.ErrConfigInvalid,
			message: "target_dir is empty",
			wantStr: "[CONFIG_INVALID] target_dir is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrStage, "command %q exited with %d", "git", 128)
	assert.Equal(t, `[STAGE] command "git" exited with 128`, err.Error())
}

func TestWrap(t *testing.T) {
	base := &fs.PathError{Op: "open", Path: "api.py", Err: fs.ErrPermission}

	err := errors.Wrap(base, errors.ErrFileRead, "failed to read source file")
	require.NotNil(t, err)

	assert.Equal(t, "[FILE_READ] failed to read source file: open api.py: permission denied", err.Error())
	assert.True(t, stderrors.Is(err, fs.ErrPermission), "wrapped cause should be reachable")
	assert.Same(t, base, stderrors.Unwrap(err))
}

func TestWrap_NilError(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrFileRead, "unused"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrFileRead, "unused %s", "arg"))
}

func TestIs_MatchesByCode(t *testing.T) {
	err := errors.Wrapf(stderrors.New("unexpected EOF"), errors.ErrManifestParse, "invalid JSON in %s", "manifest.json")

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrManifestParse, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrManifestRead, "")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrFileWrite, "write failed").
		WithDetail("path", "custom_components/x/api.py").
		WithDetail("bytes", 12)

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "custom_components/x/api.py", details["path"])
	assert.Equal(t, 12, details["bytes"])
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.ErrorCode
	}{
		{"sync error", errors.New(errors.ErrGlob, "bad pattern"), errors.ErrGlob},
		{"wrapped sync error", errors.Wrap(errors.New(errors.ErrDirCreate, "mkdir"), errors.ErrInternal, "outer"), errors.ErrInternal},
		{"plain error", stderrors.New("plain"), errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.GetErrorCode(tt.err))
		})
	}

	assert.True(t, errors.IsErrorCode(errors.New(errors.ErrStage, "x"), errors.ErrStage))
	assert.False(t, errors.IsErrorCode(stderrors.New("x"), errors.ErrStage))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("x")))
}

func TestAsSyncError(t *testing.T) {
	inner := errors.New(errors.ErrManifestParse, "bad json")
	wrapped := fmt.Errorf("sync: %w", inner)

	got, ok := errors.AsSyncError(wrapped)
	require.True(t, ok)
	assert.Same(t, inner, got)

	_, ok = errors.AsSyncError(stderrors.New("plain"))
	assert.False(t, ok)
}
