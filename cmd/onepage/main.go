package main

import (
	"os"
)

func main() {
	// Cobra prints the error and usage itself
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
