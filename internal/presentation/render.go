package presentation

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/aretw0/najia/pkg/domain"
)

//go:embed templates/*.tmpl
var templates embed.FS

var standard = template.Must(template.ParseFS(templates, "templates/standard.md.tmpl"))

// Glyphs is the character set lines are drawn with.
type Glyphs struct {
	Yin     string
	Yang    string
	OldYang string
	OldYin  string
}

// glyphSets are indexed by verbosity.
var glyphSets = [3]Glyphs{
	{Yin: "▅▅  ▅▅", Yang: "▅▅▅▅▅▅", OldYang: "○→", OldYin: "×→"},
	{Yin: "━━ ━━", Yang: "━━━━━", OldYang: "○", OldYin: "×"},
	{Yin: "⚋", Yang: "⚊", OldYang: "O", OldYin: "X"},
}

// GlyphsFor returns the glyph set of a verbosity level, clamped to 0..2.
func GlyphsFor(verbose int) Glyphs {
	return glyphSets[max(0, min(verbose, len(glyphSets)-1))]
}

type row struct {
	Spirit          string
	Hidden          string
	Relative        string
	Label           string
	Glyph           string
	Marker          string
	Moving          string
	ChangedRelative string
	ChangedLabel    string
	ChangedGlyph    string
	Strength        string
	Clash           string
	Empty           string
}

type view struct {
	Heading     string
	Solar       string
	YearPillar  string
	MonthBranch string
	DayPillar   string
	HourPillar  string
	Void        string
	Gender      string
	Name        string
	Palace      string
	Kind        string
	Changed     string
	ChangedKind string
	Annotated   bool
	Rows        []row
	Commentary  *domain.Text
}

// Markdown renders h as a markdown document, top line first.
func Markdown(h domain.Hexagram, verbose int) (string, error) {
	var buf bytes.Buffer
	if err := standard.Execute(&buf, newView(h, GlyphsFor(verbose))); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", h.Name, err)
	}
	return buf.String(), nil
}

func newView(h domain.Hexagram, g Glyphs) view {
	v := view{
		Heading:     h.Name,
		Solar:       h.Solar,
		YearPillar:  h.YearPillar,
		MonthBranch: h.MonthBranch,
		DayPillar:   h.DayPillar,
		HourPillar:  h.HourPillar,
		Gender:      h.Gender,
		Name:        h.Name,
		Palace:      string(h.Palace),
		Kind:        string(h.Kind),
	}
	if h.Title != "" {
		v.Heading = h.Title
	}
	if text, ok := h.Commentary.Get(); ok {
		v.Commentary = &text
	}

	tr, changed := h.Transformed.Get()
	if changed {
		v.Changed = tr.Name
		v.ChangedKind = string(tr.Kind)
	}
	hidden, hasHidden := h.Hidden.Get()

	ta, annotated := h.Time.Get()
	month, hasMonth := ta.Month.Get()
	day, hasDay := ta.Day.Get()
	v.Annotated = annotated
	if hasDay {
		names := make([]string, 0, len(day.VoidBranches))
		for _, b := range day.VoidBranches {
			names = append(names, b.String())
		}
		v.Void = strings.Join(names, "")
	}

	moving := map[int]bool{}
	for _, i := range h.Moving {
		moving[i] = true
	}

	for i := 5; i >= 0; i-- {
		r := row{
			Spirit:   string(h.Spirits[i]),
			Relative: string(h.Relatives[i]),
			Label:    h.Labels[i],
			Glyph:    glyph(g, h.Pattern.Yang(i)),
			Marker:   marker(h.World, i),
		}
		if moving[i] {
			r.Moving = g.OldYin
			if h.Pattern.Yang(i) {
				r.Moving = g.OldYang
			}
		}
		if hasHidden {
			for _, s := range hidden.Seat {
				if s == i {
					r.Hidden = string(hidden.Relatives[i]) + hidden.Labels[i]
				}
			}
		}
		if changed {
			r.ChangedRelative = string(tr.Relatives[i])
			r.ChangedLabel = tr.Labels[i]
			r.ChangedGlyph = glyph(g, tr.Pattern.Yang(i))
		}
		if hasMonth {
			r.Strength = string(month.Strength[i])
			if month.Clash[i] {
				r.Clash = "破"
			}
		}
		if hasDay && day.Void[i] {
			r.Empty = "空"
		}
		v.Rows = append(v.Rows, r)
	}
	return v
}

func glyph(g Glyphs, yang bool) string {
	if yang {
		return g.Yang
	}
	return g.Yin
}

func marker(wr domain.WorldResponse, i int) string {
	switch i + 1 {
	case wr.World:
		return "世"
	case wr.Response:
		return "应"
	}
	return ""
}
