package main

import (
	"github.com/mehmattski/moss-popgen-scripts/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
