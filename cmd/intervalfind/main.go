package main

import (
	"os"

	"intervalparser/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
