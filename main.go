package main

import "github.com/agentic-research/mosaic/cmd"

func main() {
	cmd.Execute()
}
