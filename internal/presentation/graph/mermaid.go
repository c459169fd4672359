package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/najia/pkg/domain"
	"github.com/aretw0/najia/pkg/hexagram"
)

// Overlay marks hexagrams of a cast on the chart.
type Overlay struct {
	Current domain.Pattern
	Changed domain.Pattern
}

// GenerateMermaid produces a Mermaid flowchart of the palace generations.
// Each palace becomes a subgraph walking from its pure hexagram through the
// five changes to the wandering and returning souls. Shapes:
// - Pure: ((Circle))
// - Wandering: [/Parallelogram/]
// - Returning: [[Subroutine]]
// - Default: [Rectangle]
func GenerateMermaid(entries []hexagram.Entry, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	var palace domain.Palace
	var prev string
	for _, e := range entries {
		if e.Palace != palace {
			if palace != "" {
				sb.WriteString("    end\n")
			}
			palace = e.Palace
			prev = ""
			sb.WriteString(fmt.Sprintf("    subgraph %s[\"%s宫\"]\n", palaceID(palace), palace))
		}

		id := nodeID(e.Pattern)
		opener, closer := "[", "]"
		switch {
		case e.Pattern == e.Palace.Pure():
			opener, closer = "((", "))"
		case hexagram.SoulOf(e.Pattern) == domain.SoulWandering:
			opener, closer = "[/", "/]"
		case hexagram.SoulOf(e.Pattern) == domain.SoulReturning:
			opener, closer = "[[", "]]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s <br/> 世%d\"%s\n", id, opener, e.Name, e.World.World, closer))

		if prev != "" {
			arrow := "-->"
			switch hexagram.SoulOf(e.Pattern) {
			case domain.SoulWandering:
				arrow = "-. 游魂 .->"
			case domain.SoulReturning:
				arrow = "-. 归魂 .->"
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", prev, arrow, id))
		}
		prev = id
	}
	if palace != "" {
		sb.WriteString("    end\n")
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef changed fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		if overlay.Changed.Valid() && overlay.Changed != overlay.Current {
			sb.WriteString(fmt.Sprintf("    class %s changed;\n", nodeID(overlay.Changed)))
			if overlay.Current.Valid() {
				sb.WriteString(fmt.Sprintf("    %s ==> %s\n", nodeID(overlay.Current), nodeID(overlay.Changed)))
			}
		}
		if overlay.Current.Valid() {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", nodeID(overlay.Current)))
		}
	}

	return sb.String()
}

func nodeID(p domain.Pattern) string {
	return "h" + string(p)
}

func palaceID(p domain.Palace) string {
	return "p" + string(p.Trigram())
}
