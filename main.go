package main

import (
	"os"

	"github.com/studychamp/studychamp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
