package main

import (
	"github.com/egeuysall/summit-token/internal/cli"
)

func main() {
	cli.Execute()
}
