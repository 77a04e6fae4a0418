package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/bioinformatics-ua/dicoogle-client-go/cmd/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
