package qrcode_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

// parseMatrix builds a matrix from rows of '#' (dark) and '.' (light).
func parseMatrix(rows ...string) qrcode.Matrix {
	m := make(qrcode.Matrix, len(rows))
	for y, row := range rows {
		m[y] = make([]bool, len(row))
		for x, c := range row {
			m[y][x] = c == '#'
		}
	}
	return m
}

func TestSVGPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		matrix qrcode.Matrix
		margin int
		want   string
	}{
		{
			name:   "empty_matrix",
			matrix: nil,
			want:   "",
		},
		{
			name:   "all_light",
			matrix: parseMatrix("...", "...", "..."),
			want:   "",
		},
		{
			name:   "single_dark_module",
			matrix: parseMatrix("#"),
			want:   "M0,0 h1v1H0z",
		},
		{
			name:   "run_closed_by_light_module",
			matrix: parseMatrix("##."),
			want:   "M0 0h2v1H0z",
		},
		{
			name:   "run_reaching_row_end",
			matrix: parseMatrix(".##"),
			want:   "M1,0 h2v1H1z",
		},
		{
			name:   "lone_dark_module_at_row_end",
			matrix: parseMatrix("..#"),
			want:   "M2,0 h1v1H2z",
		},
		{
			name:   "full_row",
			matrix: parseMatrix("####"),
			want:   "M0,0 h4v1H0z",
		},
		{
			name:   "mixed_rows",
			matrix: parseMatrix("##.", "..#", "#.#"),
			want:   "M0 0h2v1H0z" + "M2,1 h1v1H2z" + "M0 2h1v1H0z" + "M2,2 h1v1H2z",
		},
		{
			name:   "margin_shifts_coordinates",
			matrix: parseMatrix("##.", "..#", "#.#"),
			margin: 1,
			want:   "M1 1h2v1H1z" + "M3,2 h1v1H3z" + "M1 3h1v1H1z" + "M3,3 h1v1H3z",
		},
		{
			name:   "several_runs_in_one_row",
			matrix: parseMatrix("#.##.###"),
			want:   "M0 0h1v1H0z" + "M2 0h2v1H2z" + "M5,0 h3v1H5z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, qrcode.SVGPath(tt.matrix, tt.margin))
		})
	}
}

func TestSVGPathOneSegmentPerRun(t *testing.T) {
	t.Parallel()

	m, err := qrcode.Encode("https://example.com/path-compression", qrcode.LevelMedium)
	if !assert.NoError(t, err) {
		return
	}

	runs := 0
	for _, row := range m {
		prev := false
		for _, dark := range row {
			if dark && !prev {
				runs++
			}
			prev = dark
		}
	}

	d := qrcode.SVGPath(m, 0)
	assert.Equal(t, runs, strings.Count(d, "M"))
	assert.Equal(t, runs, strings.Count(d, "z"))
}
