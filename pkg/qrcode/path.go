package qrcode

import "strconv"

// SVGPath compresses the dark modules of m into an SVG path "d" string.
//
// Consecutive dark modules in a row are merged into one closed rectangle
// segment, so the output grows with the number of runs rather than the number
// of modules. Every coordinate is shifted by margin modules. Segments are
// concatenated without separators; each starts with an absolute moveto.
func SVGPath(m Matrix, margin int) string {
	buf := make([]byte, 0, 16*len(m)*4)
	for y, row := range m {
		start := -1
		last := len(row) - 1
		for x, dark := range row {
			if !dark && start >= 0 {
				// "M0 0h7v1H0z": the space after the x coordinate replaces a comma.
				buf = appendRun(buf, start+margin, y+margin, x-start, ' ')
				start = -1
				continue
			}

			if x == last {
				if !dark {
					// Any open run was closed above, so the tail is light.
					continue
				}
				if start < 0 {
					buf = appendRun(buf, x+margin, y+margin, 1, ',')
				} else {
					buf = appendRun(buf, start+margin, y+margin, x+1-start, ',')
				}
				continue
			}

			if dark && start < 0 {
				start = x
			}
		}
	}
	return string(buf)
}

// appendRun appends one rectangle of width w and height 1 at (x, y).
// The comma form is "Mx,y hWv1Hxz"; the space form is "Mx yhWv1Hxz".
func appendRun(buf []byte, x, y, w int, sep byte) []byte {
	buf = append(buf, 'M')
	buf = strconv.AppendInt(buf, int64(x), 10)
	buf = append(buf, sep)
	buf = strconv.AppendInt(buf, int64(y), 10)
	if sep == ',' {
		buf = append(buf, ' ')
	}
	buf = append(buf, 'h')
	buf = strconv.AppendInt(buf, int64(w), 10)
	buf = append(buf, "v1H"...)
	buf = strconv.AppendInt(buf, int64(x), 10)
	return append(buf, 'z')
}
