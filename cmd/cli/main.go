package main

import (
	"fmt"
	"os"

	"github.com/limaJavier/interview-scheduling/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}
