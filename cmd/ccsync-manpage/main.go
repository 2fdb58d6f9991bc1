package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/ccsync/cmd/ccsync"
	"github.com/spf13/cobra/doc"
)

func main() {
	rootCmd := ccsync.NewRootCmd()

	if err := doc.GenMan(rootCmd, ccsync.ManHeader(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
