package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"termbar/pkg/cli"
	"termbar/pkg/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Freeze()

	if err := cli.NewRootCommand(cli.NewApp(cfg)).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
