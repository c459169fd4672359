package presentation

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/aretw0/najia/pkg/domain"
)

// NewStyler returns a function that renders markdown for the terminal using glamour.
func NewStyler() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r.Render, nil
}

// Terminal renders hexagrams for a TTY: styled markdown under a colored header.
type Terminal struct {
	style   func(string) (string, error)
	verbose int
}

// NewTerminal creates a terminal renderer at the given glyph verbosity.
func NewTerminal(verbose int) (*Terminal, error) {
	style, err := NewStyler()
	if err != nil {
		return nil, err
	}
	return &Terminal{style: style, verbose: verbose}, nil
}

// Render returns the styled document of h.
func (t *Terminal) Render(h domain.Hexagram) (string, error) {
	md, err := Markdown(h, t.verbose)
	if err != nil {
		return "", err
	}
	out, err := t.style(md)
	if err != nil {
		return "", fmt.Errorf("failed to style output: %w", err)
	}
	return Header(h) + out, nil
}

// Header is a one-line colored summary of h.
func Header(h domain.Hexagram) string {
	p := termenv.ColorProfile()
	name := termenv.String(h.Name).Bold().Foreground(p.Color("#fbbf24"))
	palace := termenv.String(string(h.Palace) + "宫").Foreground(p.Color("#818cf8"))
	line := fmt.Sprintf("%s  %s  世%d 应%d", name, palace, h.World.World, h.World.Response)
	if tr, ok := h.Transformed.Get(); ok {
		line += "  →  " + termenv.String(tr.Name).Foreground(p.Color("#f472b6")).String()
	}
	return line + "\n"
}

// PrintBanner writes the program banner.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	fmt.Fprintln(w)
	fmt.Fprintln(w, termenv.String("  ☰ ☱ ☲ ☳ ☴ ☵ ☶ ☷").Foreground(p.Color("#a78bfa")))
	fmt.Fprintln(w, termenv.String("  najia "+version).Foreground(p.Color("#c084fc")))
	fmt.Fprintln(w)
}
