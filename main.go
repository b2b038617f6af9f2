package main

import (
	"os"

	"github.com/thenoetrevino/dublaj/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
