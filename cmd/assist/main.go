// Package main implements assist, a command-line front end for one-shot
// text generation with the same retry policy as the API server.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(newAssistant).Execute(); err != nil {
		os.Exit(1)
	}
}
