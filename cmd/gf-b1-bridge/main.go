package main

import "github.com/gf-b1-bridge/go/internal/cmd"

func main() {
	cmd.Execute()
}
