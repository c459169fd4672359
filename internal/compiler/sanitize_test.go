package compiler_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/najia/internal/compiler"
)

func TestSanitizeInput_SizeLimit(t *testing.T) {
	limit := compiler.DefaultMaxInputSize

	_, err := compiler.SanitizeInput(strings.Repeat("1", limit))
	assert.NoError(t, err)

	_, err = compiler.SanitizeInput(strings.Repeat("1", limit+1))
	assert.ErrorIs(t, err, compiler.ErrInputTooLarge)

	t.Run("Env Override", func(t *testing.T) {
		t.Setenv(compiler.EnvMaxInputSize, "8")
		_, err := compiler.SanitizeInput("221242|2024")
		assert.ErrorIs(t, err, compiler.ErrInputTooLarge)

		t.Setenv(compiler.EnvMaxInputSize, "bogus")
		_, err = compiler.SanitizeInput("221242|2024")
		assert.NoError(t, err)
	})
}

func TestSanitizeInput_ControlChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Normal Text", "221242|2024-03-15", "221242|2024-03-15"},
		{"Tab Kept", "2\t2\t1\t2\t4\t2", "2\t2\t1\t2\t4\t2"},
		{"ANSI Code", "\x1b[31m221242", "[31m221242"},
		{"Null Byte", "2212\x0042", "221242"},
		{"Carriage Return", "221242\r", "221242"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := compiler.SanitizeInput(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := compiler.SanitizeInput("22\xff1242")
	assert.ErrorIs(t, err, compiler.ErrInvalidUTF8)
}

func TestParseRequest_Sanitized(t *testing.T) {
	req, err := compiler.ParseRequest("221242\x07|2024-03-15\r")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1, 2, 4, 2}, req.Lines)
	assert.Equal(t, "2024-03-15", req.Date)

	_, err = compiler.ParseRequest(strings.Repeat("1", compiler.DefaultMaxInputSize+1))
	assert.ErrorIs(t, err, compiler.ErrInputTooLarge)
}
