package model

import (
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	textAlive = '◼'
	textDead  = '◻'

	ansiClear = "\033[H\033[2J"
)

// TerminalRenderer draws a universe as blocks of text
type TerminalRenderer struct {
	out   io.Writer
	au    aurora.Aurora
	alive string
}

// NewTerminalRenderer writes to out, coloring live cells when colors is set
func NewTerminalRenderer(out io.Writer, colors bool) *TerminalRenderer {
	au := aurora.NewAurora(colors)
	return &TerminalRenderer{
		out:   out,
		au:    au,
		alive: au.Green(gridPosBlock).String(),
	}
}

// Aurora returns the colorizer used by the renderer
func (r *TerminalRenderer) Aurora() aurora.Aurora {
	return r.au
}

// Display renders the universe, one line per row
func (r *TerminalRenderer) Display(u *Universe) error {
	var sb strings.Builder
	for row := range u.height {
		for column := range u.width {
			if u.Get(row, column) == Alive {
				sb.WriteString(r.alive)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(r.out, sb.String())
	return err
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.out, ansiClear)
	return err
}

// String renders the universe with one glyph per cell
func (u *Universe) String() string {
	var sb strings.Builder
	for row := range u.height {
		for column := range u.width {
			if u.Get(row, column) == Alive {
				sb.WriteRune(textAlive)
			} else {
				sb.WriteRune(textDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
