package main

import (
	"os"

	"github.com/jsvensson/themeswap/internal/lsp"
)

var version = "dev"

func main() {
	s := lsp.NewServer(version, 1)
	if err := s.Run(); err != nil {
		os.Exit(1)
	}
}
