//go:build !sdl
// +build !sdl

package main

import (
	"fmt"
	"os"
)

func main() {
	if cfg, status := setup(os.Args[1:], os.Stderr); cfg == nil {
		os.Exit(status)
	}
	_, _ = fmt.Fprintln(os.Stderr, "paxdemo was built without SDL; rebuild with -tags sdl")
	os.Exit(exitFatal)
}
