package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/najia"
	"github.com/aretw0/najia/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Model Context Protocol server",
	Long: `Exposes the cast_hexagram and lookup_hexagram tools and the
najia://hexagrams resource. Uses stdio unless --sse is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		srv := mcp.NewServer(eng, najia.Version)

		if sse, _ := cmd.Flags().GetBool("sse"); sse {
			port, _ := cmd.Flags().GetInt("port")
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return srv.ServeSSE(ctx, port)
		}
		return srv.ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().Bool("sse", false, "Serve over SSE instead of stdio")
	mcpCmd.Flags().Int("port", 8081, "Port for --sse")
}
