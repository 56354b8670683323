package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "restyle",
		Short: "Restyle - managed dynamic stylesheets for Go web apps",
		Long: `Restyle maintains a dynamically created stylesheet in the browser and
reconciles style rules into it at runtime: a rule with the same selector and
the same set of declared properties replaces its predecessor, anything else
appends. The dev server watches your stylesheets and streams changed rules
to connected clients.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	}

	rootCmd.AddCommand(newDevCommand())
	rootCmd.AddCommand(newInitCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
