package main

import (
	"os"

	"github.com/cubeai/bubix/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
