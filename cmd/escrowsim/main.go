package main

import (
	"github.com/LeJamon/xrpl-wasm-stdlib/internal/cli"
)

func main() {
	cli.Execute()
}
