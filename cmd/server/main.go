// Package main is the entry point for the Vagabond gRPC server and its test client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/vagabond-api/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "vagabond-api",
	Short: "Vagabond rules API gRPC server",
	Long:  `Vagabond API serves character and NPC derivation, check resolution and spell casting over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
