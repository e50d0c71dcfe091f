package main

import (
	"github.com/lxyang1115/guess-game/internal/cli"
)

func main() {
	cli.Execute(cli.NewEchoCommand())
}
