package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/tychoish/chain/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cli.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		cancel()
		os.Exit(1)
	}
}
