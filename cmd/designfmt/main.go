package main

import (
	"os"

	"github.com/designml/designfmt/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
