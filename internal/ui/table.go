package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cell is a single styled table value
type cell struct {
	text  string
	style lipgloss.Style
}

// table is a box-drawn table with fixed column widths
type table struct {
	headers []string
	widths  []int
	rows    [][]cell
}

func newTable(widths []int, headers ...string) *table {
	return &table{headers: headers, widths: widths}
}

func (t *table) add(cells ...cell) {
	t.rows = append(t.rows, cells)
}

// rule draws a horizontal border using the given corner and junction runes
func (t *table) rule(sb *strings.Builder, left, mid, right string) {
	sb.WriteString(BorderStyle.Render(left))
	for i, w := range t.widths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(t.widths)-1 {
			sb.WriteString(BorderStyle.Render(mid))
		}
	}
	sb.WriteString(BorderStyle.Render(right))
	sb.WriteString("\n")
}

func (t *table) render() string {
	var sb strings.Builder

	t.rule(&sb, TopLeft, TopT, TopRight)

	// Header row
	sb.WriteString(BorderStyle.Render(Vertical))
	for i, h := range t.headers {
		sb.WriteString(HeaderStyle.Render(" " + padRight(h, t.widths[i]) + " "))
		sb.WriteString(BorderStyle.Render(Vertical))
	}
	sb.WriteString("\n")

	t.rule(&sb, LeftT, Cross, RightT)

	// Data rows
	for _, row := range t.rows {
		sb.WriteString(BorderStyle.Render(Vertical))
		for i, c := range row {
			sb.WriteString(c.style.Render(" " + padRight(c.text, t.widths[i]) + " "))
			sb.WriteString(BorderStyle.Render(Vertical))
		}
		sb.WriteString("\n")
	}

	t.rule(&sb, BottomLeft, BottomT, BottomRight)

	return sb.String()
}
