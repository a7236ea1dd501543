package cmd

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sams",
	Short: "Sales activity management system CLI",
	Run: func(cmd *cobra.Command, args []string) {
		figure.NewFigure("SAMS", "", true).Print()
		fmt.Println()
		_ = cmd.Help()
	},
}

// Execute runs the root command. Called from the CLI entry point.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
