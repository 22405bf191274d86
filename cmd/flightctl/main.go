package main

import (
	"fmt"
	"os"

	"github.com/Domenick1991/skybooking/cmd/flightctl/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
