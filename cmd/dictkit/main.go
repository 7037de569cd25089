package main

import "github.com/dictkit-project/dictkit/cmd"

func main() {
	cmd.Execute()
}
