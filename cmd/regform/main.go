// Command regform validates registration form records.
//
//	regform [serve]          run the HTTP API (default)
//	regform validate [file]  validate one JSON record from file or stdin
//
// Configuration is read from the environment and an optional .env file.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
