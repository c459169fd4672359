package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/najia/pkg/domain"
)

var castCmd = &cobra.Command{
	Use:   "cast <lines>",
	Short: "Compile one cast",
	Long: `Compiles six line values, bottom line first. Values 1/7 and 2/8 are static
yang and yin; 3/9 (old yang) and 4/6 (old yin) are moving.

  najia cast 221242 --date 2024-03-15
  najia cast 2 2 1 2 4 2 --month 寅 --day 甲子`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := domain.ParseLines(strings.Join(args, " "))
		if err != nil {
			return err
		}

		req := domain.Request{Lines: lines}
		req.Date, _ = cmd.Flags().GetString("date")
		req.Month, _ = cmd.Flags().GetString("month")
		req.Day, _ = cmd.Flags().GetString("day")
		req.Commentary, _ = cmd.Flags().GetBool("commentary")
		req.Title, _ = cmd.Flags().GetString("title")
		req.Gender, _ = cmd.Flags().GetString("gender")

		format := cfg.Output
		if cmd.Flags().Changed("format") {
			format, _ = cmd.Flags().GetString("format")
		}
		verbose := cfg.Verbose
		if cmd.Flags().Changed("verbose") {
			verbose, _ = cmd.Flags().GetCount("verbose")
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}
		render, err := newRenderer(format, verbose)
		if err != nil {
			return err
		}

		h, err := eng.Compile(cmd.Context(), req)
		if err != nil {
			return err
		}
		out, err := render(h)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(castCmd)
	castCmd.Flags().StringP("date", "d", "", "Solar date (2006-01-02 or \"2006-01-02 15:04\")")
	castCmd.Flags().String("month", "", "Month branch or lunar month, used without --date")
	castCmd.Flags().String("day", "", "Day pillar such as 甲子, used without --date")
	castCmd.Flags().BoolP("commentary", "c", false, "Attach commentary text")
	castCmd.Flags().String("title", "", "Title shown above the result")
	castCmd.Flags().String("gender", "", "Gender shown in the result")
	castCmd.Flags().StringP("format", "f", "", "Output format: text, json, markdown")
	castCmd.Flags().CountP("verbose", "v", "Glyph verbosity (-v, -vv)")
}
