// Package main is the entry point for the lactance CLI binary.
package main

import (
	"os"

	cli "github.com/CodigoDemente/lactance-tracker-back/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
