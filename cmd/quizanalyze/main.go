package main

import (
	"os"

	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
