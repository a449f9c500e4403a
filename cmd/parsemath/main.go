// Command parsemath evaluates arithmetic expressions given as arguments, in a
// file, or on standard input.
package main

import (
	"os"

	"github.com/jcgregorio/logger"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		logger.NewFromOptions(&logger.Options{SyncWriter: os.Stderr}).Error(err)
		os.Exit(1)
	}
}
