// SPDX-License-Identifier: MIT

// Command linefem solves rod and spring models stored in the text model
// format.
//
//	linefem solve model.txt            solve and print the report
//	linefem check model.txt            parse and re-emit the model
//	linefem watch model.txt            re-solve whenever the file changes
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "linefem:", err)
		os.Exit(1)
	}
}
