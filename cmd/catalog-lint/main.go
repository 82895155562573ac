package main

import (
	"context"
	"flag"
	"os"

	"github.com/awerner/promptquest/internal/config"
	"github.com/awerner/promptquest/internal/tools/catalogcheck"
)

func main() {
	cfg, err := catalogcheck.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := catalogcheck.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
