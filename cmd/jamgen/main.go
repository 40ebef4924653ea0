package main

import (
	"github.com/tacogips/jamgen/internal/cli"
)

func main() {
	cli.Execute()
}
