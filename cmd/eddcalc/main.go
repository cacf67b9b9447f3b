package main

import (
	"fmt"
	"os"

	"edd-calculator/cmd/eddcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
