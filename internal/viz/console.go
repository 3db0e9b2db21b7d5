package viz

import (
	"fmt"
	"io"
	"strings"
)

// WriteLog writes the initial, orthogonal and orthonormal vectors as text
// tables, one vector per row.
func WriteLog(w io.Writer, fig *Figure, decimals int) error {
	if fig == nil {
		return fmt.Errorf("figure cannot be nil")
	}

	sections := []struct {
		header string
		title  string
		m      Matrix
	}{
		{"> Initialize", "Vectors:", fig.Initial},
		{"> Results", "Orthogonal vectors:", fig.Orthogonal},
		{"", "Orthonormal vectors:", fig.Orthonormal},
	}

	var sb strings.Builder
	for i, s := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		if s.header != "" {
			sb.WriteString(s.header + "\n")
		}
		sb.WriteString(s.title + "\n")
		sb.WriteString(FormatMatrix(s.m, decimals) + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatMatrix formats m as bracketed rows with right-aligned columns:
//
//	[[ 1.000 -2.000  0.500]
//	 [ 0.000  1.000  3.250]
//	 [-4.000  0.000  1.000]]
func FormatMatrix(m Matrix, decimals int) string {
	var cells [3][3]string
	width := 0
	for i := range m {
		for j := range m[i] {
			cells[i][j] = formatNumber(m[i][j], decimals)
			width = max(width, len(cells[i][j]))
		}
	}
	// Leave room for a sign so positive and negative columns line up.
	if width > 0 && !hasNegative(cells) {
		width++
	}

	var sb strings.Builder
	sb.WriteString("[")
	for i := range cells {
		if i > 0 {
			sb.WriteString("\n ")
		}
		sb.WriteString("[")
		for j, c := range cells[i] {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%*s", width, c))
		}
		sb.WriteString("]")
	}
	sb.WriteString("]")
	return sb.String()
}

func hasNegative(cells [3][3]string) bool {
	for _, row := range cells {
		for _, c := range row {
			if strings.HasPrefix(c, "-") {
				return true
			}
		}
	}
	return false
}
