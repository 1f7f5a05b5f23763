package main

import (
	"os"

	"github.com/ronelsolomon/filesummarize/internal/filesumcli"
)

func main() {
	if err := filesumcli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
