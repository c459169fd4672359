package najia

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/najia/internal/compiler"
	"github.com/aretw0/najia/pkg/domain"
)

// Runner reads casts line by line and writes each compiled hexagram.
// This allows for easy testing and integration with different frontends (CLI, pipes).
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Headless bool
	Renderer ResultRenderer
	// Base is merged into every request (commentary flag, title, explicit pillars).
	Base domain.Request
}

// ResultRenderer turns a compiled hexagram into display text.
// This allows for terminal rendering without coupling the core package.
type ResultRenderer func(domain.Hexagram) (string, error)

// NewRunner creates a Runner. Input and Output must be set before Run.
func NewRunner() *Runner {
	return &Runner{}
}

// Run compiles every non-empty input line until EOF or "exit".
// Invalid casts are reported and skipped; only I/O errors stop the loop.
func (r *Runner) Run(ctx context.Context, engine *Engine) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	lineReader := bufio.NewReader(r.Input)

	if !r.Headless {
		fmt.Fprintln(r.Output, "--- Najia (enter six line values, e.g. 221242 or 221242|2024-03-15) ---")
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !r.Headless {
			fmt.Fprint(r.Output, "> ")
		}

		text, err := lineReader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("input error: %w", err)
		}
		eof := errors.Is(err, io.EOF)

		input := strings.TrimSpace(text)
		if input == "exit" || input == "quit" {
			if !r.Headless {
				fmt.Fprintln(r.Output, "Bye!")
			}
			return nil
		}
		if input != "" {
			r.handle(ctx, engine, input)
		}
		if eof {
			return nil
		}
	}
}

func (r *Runner) handle(ctx context.Context, engine *Engine, input string) {
	req, err := compiler.ParseRequest(input)
	if err != nil {
		fmt.Fprintf(r.Output, "error: %v\n", err)
		return
	}
	req.Commentary = r.Base.Commentary
	req.Title = r.Base.Title
	req.Gender = r.Base.Gender
	if req.Date == "" {
		req.Date = r.Base.Date
		req.Month = r.Base.Month
		req.Day = r.Base.Day
	}

	h, err := engine.Compile(ctx, req)
	if err != nil {
		fmt.Fprintf(r.Output, "error: %v\n", err)
		return
	}

	output := h.Name
	if r.Renderer != nil {
		rendered, err := r.Renderer(h)
		if err != nil {
			engine.Logger().WarnContext(ctx, "render failed", "name", h.Name, "error", err)
			fmt.Fprintf(r.Output, "error: render %s: %v\n", h.Name, err)
			return
		}
		output = rendered
	}
	fmt.Fprintln(r.Output, strings.TrimSpace(output))
}
