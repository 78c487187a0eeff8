package main

import (
	"os"

	"github.com/spf13/cobra"
)

var serverAddr string

func main() {
	rootCmd := &cobra.Command{
		Use:   "solvectl",
		Short: "solvectl talks to a running solver server over HTTP",
		Long:  `A CLI for submitting shift-schedule solves and checking their status against a solver server.`,
	}

	rootCmd.PersistentFlags().StringVarP(&serverAddr, "server", "s", "http://localhost:8080", "solver server base URL")

	rootCmd.AddCommand(solveCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(healthCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
