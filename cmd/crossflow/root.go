package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "crossflow",
	Short: "Crossflow simulates batch cross-flow membrane filtration " +
		"processes.",
	Long: `Crossflow simulates the concentration of a hold-up tank through a ` +
		`cross-flow membrane. It can run single simulations, parameter ` +
		`sweeps from YAML scenarios, and report on recorded databases.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// A .env file can preset CROSSFLOW_* defaults. Missing files are fine.
	_ = godotenv.Load()
}

// envOr reads an environment variable with a fallback.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
