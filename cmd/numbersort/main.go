package main

import (
	"os"

	"github.com/freshhuk/numbersort/pkg/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.New("numbersort", version).Execute(os.Args[1:]))
}
