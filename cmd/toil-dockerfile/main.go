package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/moby/buildkit/util/bklog"
)

func main() {
	bklog.L.Logger.SetOutput(os.Stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		cancel()
		os.Exit(1)
	}
}
