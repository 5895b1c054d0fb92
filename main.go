package main

import (
	"context"
	"os"

	"pageant-scoring-system/cmd/commands"

	"github.com/fatih/color"
)

func main() {
	if err := commands.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
