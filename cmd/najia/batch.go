package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/najia/internal/compiler"
	"github.com/aretw0/najia/pkg/batch"
	"github.com/aretw0/najia/pkg/domain"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file|->",
	Short: "Compile many casts concurrently",
	Long: `Reads one cast per line, optionally followed by |date, and compiles them
with a bounded worker pool. Blank lines and lines starting with # are skipped.

  221242|2024-03-15
  111113`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open batch file: %w", err)
			}
			defer f.Close()
			in = f
		}
		reqs, err := readRequests(in)
		if err != nil {
			return err
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}
		proc := batch.NewProcessor(eng,
			batch.WithMaxWorkers(cfg.Workers),
			batch.WithTimeout(cfg.Timeout),
			batch.WithLogger(logger),
		)

		process := proc.Process
		if seq, _ := cmd.Flags().GetBool("sequential"); seq {
			process = proc.ProcessSequential
		}
		res, err := process(cmd.Context(), reqs)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		for _, it := range res.Items {
			if it.Result == nil {
				fmt.Fprintf(out, "%d\terror: %s\n", it.Index+1, it.Error)
				continue
			}
			line := fmt.Sprintf("%d\t%s\t%s宫", it.Index+1, it.Result.Name, it.Result.Palace)
			if tr, ok := it.Result.Transformed.Get(); ok {
				line += "\t之 " + tr.Name
			}
			fmt.Fprintln(out, line)
		}
		fmt.Fprintf(out, "%d ok, %d failed in %.3fs (batch %s)\n", res.SuccessCount, res.ErrorCount, res.ProcessingTime, res.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().Bool("sequential", false, "Compile one cast at a time, in order")
	batchCmd.Flags().Bool("json", false, "Print the full batch result as JSON")
}

func readRequests(r io.Reader) ([]domain.Request, error) {
	var reqs []domain.Request
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		req, err := compiler.ParseRequest(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		reqs = append(reqs, req)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch: %w", err)
	}
	return reqs, nil
}
