package main

import (
	"os"

	"github.com/claimkit/nexusgrade/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
