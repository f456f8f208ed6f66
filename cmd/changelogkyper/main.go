package main

import (
	"os"

	"github.com/floranpagliai/changelogkyper/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCodeOf(err))
	}
}
