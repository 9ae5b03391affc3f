package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrStore,
		ErrQuery,
		ErrCheck,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in .upmon.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "store error",
			code:       ErrStore,
			message:    "Cannot reach Redis at localhost:6379",
			suggestion: "Start Redis or point store.redis.addr somewhere else",
		},
		{
			name:       "query error",
			code:       ErrQuery,
			message:    "Invalid pagination cursor",
			suggestion: "",
		},
		{
			name:       "check error",
			code:       ErrCheck,
			message:    "No endpoints to check",
			suggestion: "Add one with 'upmon endpoint add <url>'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
	}{
		{
			name:          "basic error formatting",
			err:           New(ErrConfig, "Invalid configuration", "Check .upmon.yaml syntax"),
			expectedParts: []string{"✗", "Invalid configuration", "Check .upmon.yaml syntax"},
		},
		{
			name:          "error with cause",
			err:           WrapWithCode(errors.New("dial tcp: refused"), ErrStore, "Redis unavailable", ""),
			expectedParts: []string{"Redis unavailable", "dial tcp: refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()
			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part)
			}
		})
	}
}

func TestErrorMessageStructure(t *testing.T) {
	err := WrapWithCode(
		errors.New("connection timed out after 5s"),
		ErrStore,
		"Cannot load monitor states",
		"Check that Redis is running",
	)

	lines := strings.Split(err.Error(), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "✗"))
	assert.Contains(t, lines[0], "Cannot load monitor states")
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying network error")
	wrapped := Wrap(cause, "Redis command failed")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrStore, wrapped.Code, "Wrap should default to ErrStore code")
	assert.Equal(t, cause, wrapped.Cause)
	assert.True(t, errors.Is(wrapped, cause))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Bad cursor", New(ErrQuery, "Bad cursor", "ignored").Summary())

	nested := WrapWithCode(New(ErrStore, "Redis down", "start it"), ErrQuery, "Query failed", "")
	assert.Equal(t, "Query failed: Redis down", nested.Summary())
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "Config error", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrStore))
	assert.False(t, IsCode(errors.New("standard error"), ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))
}
