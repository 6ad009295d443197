package component

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

var levelOptions = []struct {
	level qrcode.Level
	label string
}{
	{qrcode.LevelLow, "L (7%)"},
	{qrcode.LevelMedium, "M (15%)"},
	{qrcode.LevelQuartile, "Q (25%)"},
	{qrcode.LevelHigh, "H (30%)"},
}

// Page is a standalone HTML page with a props form and the rendered code.
// Submitting the form reloads the page with the new props. A non-empty
// errMsg is shown in place of the code.
func Page(p qrcode.Props, code templ.Component, errMsg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p = p.Normalize()

		out := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<title>QR code</title></head><body>` +
			`<form method="get" action="/">` +
			`<label>Content <input type="text" name="content" value="` + templ.EscapeString(p.Content) + `"></label> ` +
			`<label>Size <input type="number" name="size" min="1" value="` + strconv.Itoa(p.Size) + `"></label> ` +
			`<label>Level <select name="level">`
		for _, opt := range levelOptions {
			out += `<option value="` + opt.level.String() + `"`
			if opt.level == p.Level {
				out += ` selected`
			}
			out += `>` + opt.label + `</option>`
		}
		out += `</select></label> ` +
			`<input type="hidden" name="svg" value="false">` +
			`<label><input type="checkbox" name="svg" value="true"` + checked(p.SVG) + `> SVG</label> ` +
			`<label><input type="checkbox" name="padding" value="true"` + checked(p.Padding) + `> Padding</label> ` +
			`<button type="submit">Render</button></form><div id="qrcode">`
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}

		if errMsg != "" {
			if _, err := io.WriteString(w, `<p role="alert">`+templ.EscapeString(errMsg)+`</p>`); err != nil {
				return err
			}
		} else if code != nil {
			if err := code.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</div></body></html>`)
		return err
	})
}

func checked(b bool) string {
	if b {
		return " checked"
	}
	return ""
}
