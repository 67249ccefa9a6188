package main

import "github.com/notargets/lsmesh/cmd"

func main() {
	cmd.Execute()
}
