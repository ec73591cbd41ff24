package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	talentscmd "github.com/Slatyo/Valheim-Viking/internal/cmd/talents"
)

func main() {
	cfg, err := talentscmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[TALENTS] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := talentscmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to run: %v", err)
	}
}
