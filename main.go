/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sony-level/projspace/cmd"
)

func main() {
	// Ctrl-C cancels an in-flight clone instead of leaving it hanging.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Execute(ctx)
}
