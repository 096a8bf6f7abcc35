package main

import "github.com/clipperhouse/hifi/internal/cli"

func main() {
	cli.Execute()
}
