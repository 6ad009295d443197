package component_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/component"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

func render(t *testing.T, c templ.Component) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := c.Render(context.Background(), &buf)
	return buf.String(), err
}

func TestQRCodeSVG(t *testing.T) {
	t.Parallel()

	html, err := render(t, component.QRCode(qrcode.Props{Content: "hello", Size: 120, SVG: true, Padding: true}))
	require.NoError(t, err)

	m, err := qrcode.Encode("hello", qrcode.LevelHigh)
	require.NoError(t, err)
	want, err := qrcode.SVG(m, qrcode.WithSize(120), qrcode.WithPadding(true))
	require.NoError(t, err)

	assert.Equal(t, want, html)
}

func TestQRCodeCanvas(t *testing.T) {
	t.Parallel()

	html, err := render(t, component.QRCode(qrcode.Props{Content: "hello", Size: -64}))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, `<img width="64" height="64" style="width: 64px; height: 64px;"`))
	assert.Contains(t, html, `src="data:image/png;base64,`)
	assert.NotContains(t, html, "<svg")
}

func TestQRCodeDefaults(t *testing.T) {
	t.Parallel()

	html, err := render(t, component.QRCode(qrcode.DefaultProps()))
	require.NoError(t, err)
	assert.Contains(t, html, `width="100" height="100"`)
	assert.Contains(t, html, "<svg")
}

func TestQRCodeErrors(t *testing.T) {
	t.Parallel()

	_, err := render(t, component.QRCode(qrcode.Props{SVG: true}))
	assert.ErrorIs(t, err, qrcode.ErrEmptyContent)

	boom := errors.New("boom")
	enc := qrcode.EncoderFunc(func(string, qrcode.Level) (qrcode.Matrix, error) {
		return nil, boom
	})
	_, err = render(t, component.QRCodeWithEncoder(enc, qrcode.DefaultProps()))
	assert.ErrorIs(t, err, boom)
}

func TestPage(t *testing.T) {
	t.Parallel()

	p := qrcode.Props{Content: `<script>"x"</script>`, Size: 150, Level: qrcode.LevelQuartile, SVG: true}
	html, err := render(t, component.Page(p, component.QRCode(p), ""))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.NotContains(t, html, "<script>", "content must be escaped")
	assert.Contains(t, html, `value="150"`)
	assert.Contains(t, html, `<option value="Q" selected>`)
	assert.Contains(t, html, `name="svg" value="true" checked`)
	assert.Contains(t, html, "<svg")
}

func TestPageError(t *testing.T) {
	t.Parallel()

	html, err := render(t, component.Page(qrcode.DefaultProps(), nil, "content too long"))
	require.NoError(t, err)
	assert.Contains(t, html, `<p role="alert">content too long</p>`)
	assert.NotContains(t, html, "<svg")
}
