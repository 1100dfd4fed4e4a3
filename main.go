package main

import "github.com/lgorenstein/sinteractive/cmd"

func main() {
	cmd.Execute()
}
