package main

import (
	"context"
	"flag"
	"os"

	"github.com/Slatyo/Valheim-Viking/internal/cmd/treevalidate"
	"github.com/Slatyo/Valheim-Viking/internal/platform/config"
)

func main() {
	cfg, err := treevalidate.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := treevalidate.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
