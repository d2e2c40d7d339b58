package main

import "github.com/notargets/loadmap/cmd"

func main() {
	cmd.Execute()
}
