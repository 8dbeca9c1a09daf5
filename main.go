package main

import "github.com/brogergvhs/mfrgen/cmd"

func main() {
	cmd.Execute()
}
