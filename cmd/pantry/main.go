package main

import (
	"github.com/pantrykit/pantry/pkg/cli"
)

func main() {
	cli.Execute()
}
