package main

import (
	"github.com/thanhnguyen2187/tinfo/cli"
)

func main() {
	cli.Start()
}
