package main

import (
	"fmt"
	"os"

	"notecli/internal/cli"
	"notecli/internal/config"
	"notecli/internal/logs"
)

func main() {
	if err := logs.Initialize(config.LogDir()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}

	code := cli.Execute(os.Args[1:], os.Stdout, os.Stderr)
	logs.Close()
	os.Exit(code)
}
