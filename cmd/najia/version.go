package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/najia"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of najia",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "najia version %s\n", strings.TrimSpace(najia.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
