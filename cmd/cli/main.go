package main

import (
	"fmt"
	"os"

	"github.com/kartiknayak1216/lenso-backend-service/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
