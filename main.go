package main

import (
	"os"

	"github.com/yclin/fabtrainer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
