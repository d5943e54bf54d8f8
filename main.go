package main

import (
	"coinledger/cmd"
	"fmt"
	"os"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "coinledger: %s\n", err)
		os.Exit(1)
	}
}
