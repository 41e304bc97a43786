// Command plx is a terminal client for the Perplexity chat-completions API.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"plx/cmd"
)

var version = "dev"

func main() {
	if err := fang.Execute(
		context.Background(),
		cmd.GetRootCommand(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
