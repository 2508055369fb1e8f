package main

import (
	"fmt"
	"os"

	"github.com/saikrishna1355/ai-comments/cmd"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic recovered in main: %v\n", r)
			os.Exit(1)
		}
	}()

	cmd.Execute()
}
