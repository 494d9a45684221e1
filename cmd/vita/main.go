// Command vita renders resume profiles to PDF or HTML and scores how well
// an automated screener can read them.
//
//	vita render jane.yaml -o jane.pdf
//	vita score team/*.yaml --json
//	vita transcript jane.yaml
//
// A .env file in the working directory is loaded at startup; VITA_CONFIG
// names the default layout configuration file.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
