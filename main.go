package main

import (
	"os"

	"github.com/amdwebio/amdweb/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
