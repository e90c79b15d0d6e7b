package main

import (
	"github.com/hangar7/flightlog/internal/cli"
)

func main() {
	cli.Execute()
}
