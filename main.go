package main

import "github.com/runlevel0/cross-section/cmd"

func main() {
	cmd.Execute()
}
