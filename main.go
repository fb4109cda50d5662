package main

import (
	"os"

	"github.com/abhisek/urbanfarm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
