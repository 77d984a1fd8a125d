package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/yarn-completions/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := cli.New(os.Stderr, cli.LogWarn)
	root := c.RootCommand()
	root.SetOut(os.Stdout)

	// Exit status is always 0; every failure degrades to empty output.
	_ = root.ExecuteContext(ctx)
}
