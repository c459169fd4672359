package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aretw0/najia/internal/presentation/graph"
	"github.com/aretw0/najia/pkg/domain"
	"github.com/aretw0/najia/pkg/hexagram"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the 64 hexagram table",
	Long: `Prints the static table in palace order. With --mermaid it outputs a
Mermaid chart of the palace generations; --cast highlights a cast on it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		entries := eng.Table()
		if p, _ := cmd.Flags().GetString("palace"); p != "" {
			palace := domain.Palace(p)
			if !palace.Valid() {
				return fmt.Errorf("unknown palace %q", p)
			}
			filtered := entries[:0:0]
			for _, e := range entries {
				if e.Palace == palace {
					filtered = append(filtered, e)
				}
			}
			entries = filtered
		}

		out := cmd.OutOrStdout()
		if mermaid, _ := cmd.Flags().GetBool("mermaid"); mermaid {
			var overlay *graph.Overlay
			if cast, _ := cmd.Flags().GetString("cast"); cast != "" {
				values, err := domain.ParseLines(cast)
				if err != nil {
					return err
				}
				lines, err := domain.NewLines(values)
				if err != nil {
					return err
				}
				overlay = &graph.Overlay{Current: lines.Pattern()}
				if len(lines.Moving()) > 0 {
					overlay.Changed = lines.Changed()
				}
			}
			fmt.Fprint(out, graph.GenerateMermaid(entries, overlay))
			return nil
		}

		if format, _ := cmd.Flags().GetString("format"); format == "json" {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}
		return writeTable(out, entries)
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.Flags().Bool("mermaid", false, "Output a Mermaid chart")
	tablesCmd.Flags().String("cast", "", "Line values to highlight on the chart")
	tablesCmd.Flags().String("palace", "", "Only the hexagrams of this palace")
	tablesCmd.Flags().StringP("format", "f", "text", "Output format: text, json")
}

func writeTable(w io.Writer, entries []hexagram.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATTERN\tNAME\tPALACE\tWORLD\tRESPONSE\tKIND\tNAJIA")
	for _, e := range entries {
		najia := make([]string, 0, 6)
		for _, sb := range e.Najia {
			najia = append(najia, sb.String())
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			e.Pattern, e.Name, e.Palace, e.World.World, e.World.Response, e.Kind, strings.Join(najia, " "))
	}
	return tw.Flush()
}
