// Package main is the entry point for hs.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"hubspot-cli/internal/cli"
)

func main() {
	// A local .env is optional.
	_ = godotenv.Load()

	cli.Init()

	if err := cli.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
