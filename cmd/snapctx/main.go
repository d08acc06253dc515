package main

import (
	"os"

	"github.com/snapctx/snapctx/internal/app/cli"
)

func main() {
	os.Exit(cli.Run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
