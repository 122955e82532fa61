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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivienm/nominal/pkg/errors"
)

type codedError struct{ code errors.ErrorCode }

func (e codedError) Error() string          { return string(e.code) }
func (e codedError) Code() errors.ErrorCode { return e.code }

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
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "odd number of paths",
			wantStr: "[INVALID_INPUT] odd number of paths",
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
	err := errors.Newf(errors.ErrManifestParse, "line %d: missing target", 3)
	assert.Equal(t, "line 3: missing target", err.Message)
	assert.Equal(t, "[MANIFEST_PARSE] line 3: missing target", err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrConfigLoad, "ignored"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrConfigLoad, "ignored %s", "too"))
	})

	t.Run("keeps wrapped error reachable", func(t *testing.T) {
		err := errors.Wrapf(fs.ErrNotExist, errors.ErrManifestRead, "cannot read %s", "pairs.yaml")
		require.NotNil(t, err)
		assert.True(t, stderrors.Is(err, fs.ErrNotExist))
		assert.Equal(t, "[MANIFEST_READ] cannot read pairs.yaml: file does not exist", err.Error())
	})
}

func TestIs(t *testing.T) {
	err := errors.New(errors.ErrPlanConsumed, "plan already applied")
	assert.True(t, stderrors.Is(err, errors.New(errors.ErrPlanConsumed, "other message")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrRenamerConsumed, "plan already applied")))

	wrapped := fmt.Errorf("apply: %w", err)
	assert.True(t, stderrors.Is(wrapped, errors.New(errors.ErrPlanConsumed, "")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrManifestParse, "bad entry").
		WithDetail("line", 4).
		WithDetail("path", "pairs.txt")

	details := errors.GetErrorDetails(fmt.Errorf("outer: %w", err))
	assert.Equal(t, 4, details["line"])
	assert.Equal(t, "pairs.txt", details["path"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.ErrorCode
	}{
		{"nil", nil, errors.ErrUnknown},
		{"plain error", stderrors.New("boom"), errors.ErrUnknown},
		{"coded error", errors.New(errors.ErrCollator, "x"), errors.ErrCollator},
		{"wrapped coded error", fmt.Errorf("ctx: %w", errors.New(errors.ErrConfigParse, "x")), errors.ErrConfigParse},
		{"coder implementation", codedError{errors.ErrTargetExists}, errors.ErrTargetExists},
		{"wrapped coder", fmt.Errorf("ctx: %w", codedError{errors.ErrRenameIO}), errors.ErrRenameIO},
		{"outermost wins", errors.Wrap(codedError{errors.ErrRenameIO}, errors.ErrInternal, "x"), errors.ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.GetErrorCode(tt.err))
			assert.True(t, errors.IsErrorCode(tt.err, tt.want))
		})
	}
}
