package main

import "github.com/tsandberg/gt-scorecards/internal/cli"

func main() {
	cli.Execute()
}
