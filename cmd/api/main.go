package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/productivityhub/stride/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stride",
		Short: "Productivity Hub server",
		Long:  `Productivity Hub serves the Stride habit tracker: a task API, authentication and the server-rendered frontend pages.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewUserCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
