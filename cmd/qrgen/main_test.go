package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

func TestRunSVGToStdout(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run([]string{"-size", "64", "hello", "world"}, &stdout, &stderr, true)

	require.Equal(t, 0, code, stderr.String())
	assert.True(t, strings.HasPrefix(stdout.String(), "<svg"))
	assert.Contains(t, stdout.String(), `width="64"`)
}

func TestRunRasterToFile(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "code.png")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-content", "hello", "-format", "png", "-size", "80", "-out", out}, &stdout, &stderr, true)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.Width)
	assert.Empty(t, stdout.String())
}

func TestRunRasterToPipe(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run([]string{"-svg=false", "hello"}, &stdout, &stderr, false)
	require.Equal(t, 0, code, stderr.String())

	_, err := png.DecodeConfig(bytes.NewReader(stdout.Bytes()))
	assert.NoError(t, err)
}

func TestRunRasterToTerminalPrintsPreview(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run([]string{"-format", "png", "hello"}, &stdout, &stderr, true)
	require.Equal(t, 0, code, stderr.String())

	assert.Contains(t, stdout.String(), "█")
	assert.NotContains(t, stdout.String(), "\x89PNG")
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "unknown_flag", args: []string{"-nope"}, code: 2},
		{name: "bad_level", args: []string{"-level", "X"}, code: 2},
		{name: "bad_format", args: []string{"-format", "webp"}, code: 2},
		{name: "empty_content", args: []string{"-content", ""}, code: 1},
		{name: "too_long", args: []string{"-content", strings.Repeat("a", 3000)}, code: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			assert.Equal(t, tt.code, run(tt.args, &stdout, &stderr, false))
			assert.NotEmpty(t, stderr.String())
		})
	}
}

func TestPreview(t *testing.T) {
	t.Parallel()

	m := qrcode.Matrix{
		{true, false},
		{false, true},
	}

	var buf bytes.Buffer
	require.NoError(t, preview(&buf, m))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	// 2 modules + 2*2 quiet zone = 6 rows, two per line.
	require.Len(t, lines, 3)
	assert.Equal(t, "██████", lines[0])
	assert.Equal(t, "██▄▀██", lines[1])
	assert.Equal(t, "██████", lines[2])

	assert.ErrorIs(t, preview(&buf, nil), errEmptyPreview)
}
