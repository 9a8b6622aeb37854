// Package main provides the entry point for the scaffold CLI.
package main

import (
	"os"

	"github.com/jamesainslie/scaffold/pkg/scaffold/logging"
)

func main() {
	err := Execute()
	_ = logging.Close()
	if err != nil {
		os.Exit(1)
	}
}
