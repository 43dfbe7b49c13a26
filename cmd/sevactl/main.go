package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"seva-console/cmd/bootstrap"
	"seva-console/internal/cli"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func main() {
	streams := cli.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}

	var root *cobra.Command
	app := fx.New(
		fx.NopLogger,
		fx.Supply(streams),
		bootstrap.ConsoleModule,
		fx.Populate(&root),
	)
	if err := app.Err(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, root, streams.Err)
	stop()
	os.Exit(code)
}
