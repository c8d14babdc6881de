package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/latoulicious/roster/internal/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Execute(ctx, commands.NewRootCommand(commands.OpenRuntime), os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
