package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jsxc",
	Short: "Compile JSX views into fine-grained reactive DOM code",
	Long: `jsxc compiles JSX view files into JavaScript modules that build DOM
nodes from cloned templates and register reactive bindings, event
delegation and dynamic inserts.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
