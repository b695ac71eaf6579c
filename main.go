package main

import (
	"os"

	"github.com/gyorgy-s/our-blog-webapp/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
